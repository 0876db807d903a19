// Package catalog holds the aesthetic procedure presets: name, simulation
// prompt, reference price, and category. The data is static; the prompts
// go to the model verbatim.
package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind groups procedures by panel.
type Kind string

const (
	KindProcedure Kind = "procedure"
	KindSkincare  Kind = "skincare"
	KindDental    Kind = "dental"
)

// Procedure is one simulatable preset. Price is the reference value in
// whole reais.
type Procedure struct {
	Name   string
	Prompt string
	Price  int
	Kind   Kind
}

var procedures = []Procedure{
	// Procedimentos cirúrgicos e injetáveis.
	{
		Name:   "Rinoplastia",
		Prompt: "Simule uma rinoplastia sutil. Refine a forma do nariz, tornando a ponte ligeiramente mais estreita e a ponta mais definida, mantendo um resultado natural e fotorrealista.",
		Price:  18000,
		Kind:   KindProcedure,
	},
	{
		Name:   "Preenchimento Labial",
		Prompt: "Simule um preenchimento labial. Adicione volume e definição de aparência natural aos lábios, tornando-os mais cheios, simétricos e hidratados.",
		Price:  1500,
		Kind:   KindProcedure,
	},
	{
		Name:   "Contorno Mandibular",
		Prompt: "Simule um contorno mandibular com preenchedores. Crie uma linha da mandíbula mais definida e esculpida, acentuando sutilmente o ângulo para um perfil mais forte.",
		Price:  2500,
		Kind:   KindProcedure,
	},
	{
		Name:   "Preenchimento de Malar",
		Prompt: "Simule um preenchimento nas maçãs do rosto (malar). Adicione volume à região das bochechas para um efeito de lifting, criando contornos suaves e uma aparência mais jovem.",
		Price:  2200,
		Kind:   KindProcedure,
	},
	{
		Name:   "Toxina Botulínica (Testa)",
		Prompt: "Simule o efeito da toxina botulínica na testa. Suavize as linhas de expressão e rugas horizontais na testa, resultando em uma pele mais lisa e relaxada.",
		Price:  800,
		Kind:   KindProcedure,
	},
	{
		Name:   "Blefaroplastia (Pálpebras)",
		Prompt: "Simule uma blefaroplastia. Remova o excesso de pele e as bolsas de gordura das pálpebras superiores e/ou inferiores para um olhar mais rejuvenescido e descansado.",
		Price:  9500,
		Kind:   KindProcedure,
	},

	// Tratamentos de pele.
	{
		Name:   `Efeito "Pele de Vidro"`,
		Prompt: "Simule um efeito de 'pele de vidro' (glass skin). Deixe a pele excepcionalmente lisa, com tom uniforme e um brilho lustroso, como se estivesse úmida e perfeitamente hidratada.",
		Price:  450,
		Kind:   KindSkincare,
	},
	{
		Name:   "Remoção de Acne e Manchas",
		Prompt: "Simule um tratamento para acne. Remova todas as manchas, espinhas, cravos e vermelhidão, deixando a pele com uma aparência limpa, clara e de textura suave.",
		Price:  300,
		Kind:   KindSkincare,
	},
	{
		Name:   "Suavização de Rugas Finas",
		Prompt: "Simule um tratamento de rejuvenescimento. Suavize a aparência de linhas finas e rugas, especialmente ao redor dos olhos e da boca, para um visual geral mais jovem e fresco.",
		Price:  500,
		Kind:   KindSkincare,
	},
	{
		Name:   "Clareamento de Melasma",
		Prompt: "Simule um tratamento para melasma. Clareie e uniformize as manchas escuras na pele, especialmente na testa, bochechas e buço, resultando em um tom de pele mais homogêneo.",
		Price:  600,
		Kind:   KindSkincare,
	},
	{
		Name:   "Peeling Químico",
		Prompt: "Simule os resultados de um peeling químico médio. Melhore a textura geral da pele, reduza a aparência de poros, clareie manchas superficiais e dê um brilho renovado ao rosto.",
		Price:  750,
		Kind:   KindSkincare,
	},
	{
		Name:   "Microagulhamento",
		Prompt: "Simule o efeito de uma sessão de microagulhamento. Melhore a firmeza da pele, suavize cicatrizes de acne e reduza a aparência de poros dilatados, conferindo um viço geral.",
		Price:  650,
		Kind:   KindSkincare,
	},

	// Procedimentos odontológicos.
	{
		Name:   "Lentes de Porcelana",
		Prompt: "Simule a aplicação de lentes de contato dentais de porcelana com aparência natural. Corrija o alinhamento, formato e cor dos dentes visíveis no sorriso. O resultado deve ser um sorriso perfeitamente branco, alinhado e harmonioso, com aparência fotorrealista.",
		Price:  25000,
		Kind:   KindDental,
	},
	{
		Name:   "Sorriso Hollywood",
		Prompt: "Simule um 'Sorriso Hollywood' com lentes de porcelana. Crie dentes perfeitamente alinhados, com formato impecável e uma cor branco-opaca super clara, característica de celebridades. O resultado deve ser impactante, glamoroso e fotorrealista.",
		Price:  35000,
		Kind:   KindDental,
	},
	{
		Name:   "Clareamento a Laser",
		Prompt: "Simule um clareamento dental a laser profissional. Torne os dentes visivelmente mais brancos e brilhantes, removendo manchas e amarelado, mantendo a translucidez e a aparência natural do esmalte dental. O resultado deve ser um sorriso limpo e rejuvenescido.",
		Price:  2000,
		Kind:   KindDental,
	},
}

// Procedures returns the full preset list in catalog order.
func Procedures() []Procedure {
	out := make([]Procedure, len(procedures))
	copy(out, procedures)
	return out
}

// ByKind returns the presets of one category, keeping catalog order.
func ByKind(k Kind) []Procedure {
	var out []Procedure
	for _, p := range procedures {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// ByName looks a preset up by its exact display name.
func ByName(name string) (Procedure, bool) {
	for _, p := range procedures {
		if p.Name == name {
			return p, true
		}
	}
	return Procedure{}, false
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders a reference price as Brazilian currency, e.g.
// "R$ 18.000,00".
func FormatPrice(price int) string {
	return ptBR.Sprintf("R$ %.2f", float64(price))
}
