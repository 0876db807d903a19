package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mbarros/glowup-cli/internal/cli"
	"github.com/mbarros/glowup-cli/internal/filehandler"
	"github.com/mbarros/glowup-cli/internal/journey"
	"github.com/mbarros/glowup-cli/internal/lineage"
	"github.com/mbarros/glowup-cli/internal/prompt"
	"github.com/mbarros/glowup-cli/internal/session"
)

// preset is one ready-made choice inside a journey step.
type preset struct {
	name   string
	detail string
}

// stepScreen is the terminal rendition of one journey step.
type stepScreen struct {
	title    string
	subtitle string
	action   string
	skip     string
	mod      prompt.Modification
	presets  []preset
}

var screens = map[journey.Step]stepScreen{
	journey.StepSmile: {
		title:    "Passo 1: O Sorriso que dá Match",
		subtitle: "Um sorriso feio espanta o crush. Vamos dar um jeito nisso.",
		action:   "Simular Sorriso de Influencer",
		skip:     "Pular (e continuar com o sorriso que Deus te deu)",
		mod:      prompt.ModSmile,
	},
	journey.StepAura: {
		title:    "Passo 2: A 'Vibe' Perfeita",
		subtitle: "Qual energia você quer transmitir? Escolha sua aura.",
		skip:     "Pular (minha aura já é impecável)",
		mod:      prompt.ModAura,
		presets: []preset{
			{"Mais Jovem e Energético(a)", "Rejuvenesça sutilmente a pessoa na foto para parecer cerca de 5 anos mais jovem. Suavize linhas finas, melhore o brilho da pele e ilumine levemente os olhos, mantendo um resultado extremamente fotorrealista e indetectável."},
			{"Mais Confiante e Misterioso(a)", `Ajuste a iluminação e as sombras no rosto da pessoa para criar um visual mais dramático, confiante e misterioso, no estilo "CEO". Adicione um toque de um sorriso confiante, se possível, de forma fotorrealista.`},
		},
	},
	journey.StepFashion: {
		title:    "Passo 3: O 'Look' da Riqueza",
		subtitle: "Ninguém quer sair com gente mal vestida. Escolha um look que parece caro.",
		skip:     "Pular (o meu estilo é único)",
		mod:      prompt.ModFashion,
		presets: []preset{
			{"Casual Chic", "calça jeans moderna, camiseta branca básica e um blazer elegante"},
			{"Executivo Moderno", "terno de corte moderno em tom neutro com uma camisa social"},
			{"Esportivo de Luxo", "conjunto de moletom de alta qualidade de uma marca de grife"},
		},
	},
	journey.StepPet: {
		title:    "Passo 4: Wingman Animal",
		subtitle: "Uma foto com um pet aumenta os matches em 300% (fonte: nossa IA).",
		skip:     "Pular (sou alérgico a sucesso)",
		mod:      prompt.ModPet,
		presets: []preset{
			{"Golden Retriever Fofo", "um adorável e feliz filhote de Golden Retriever"},
			{"Gato Misterioso", "um elegante gato preto com olhos verdes penetrantes"},
			{"Capivara Exótica", "uma capivara calma e amigável, em pose relaxada"},
		},
	},
	journey.StepBackground: {
		title:    "Passo 5: Ostentação",
		subtitle: "Mostre que você tem uma vida interessante (mesmo que seja mentira).",
		skip:     "Pular (prefiro o fundo da minha casa mesmo)",
		mod:      prompt.ModBackground,
		presets: []preset{
			{"Viagem a Paris", "uma rua charmosa em Paris com a Torre Eiffel ao fundo"},
			{"Jato Particular", "dentro de um jato particular luxuoso, olhando pela janela"},
			{"Praia nas Maldivas", "em uma praia de areia branca nas Maldivas, com água azul-turquesa"},
		},
	},
}

// wizard drives the interactive journey in the terminal.
type wizard struct {
	ctx       context.Context
	orch      *session.Orchestrator
	outputDir string
	newImage  func() *lineage.Asset
}

func (w *wizard) run() {
	w.printWelcome()

	for {
		s := w.orch.Snapshot()
		if s.Err != "" {
			fmt.Printf("\n⚠  %s\n", s.Err)
			w.orch.DismissError()
		}

		fmt.Printf("\nSua foto: %s\n", w.orch.DisplayPath())

		if s.Step == journey.StepFinal {
			if !w.finalScreen() {
				return
			}
			continue
		}

		w.stepScreen(s.Step)
	}
}

func (w *wizard) printWelcome() {
	if w.orch.Snapshot().WelcomeActive {
		fmt.Println()
		fmt.Println("PRONTO PARA VIRAR DESTAQUE NO TINDER? DEIXE A IA TRABALHAR.")
	}
}

// restart ends the current session and begins a new one with a freshly
// chosen photo.
func (w *wizard) restart() {
	if err := w.orch.ResetSession(); err != nil {
		return
	}
	img := w.newImage()
	if err := w.orch.UploadImage(img); err != nil {
		log.Fatal().Err(err).Msg("failed to restart session")
	}
	w.printWelcome()
}

// stepScreen shows one journey step and applies the chosen action.
func (w *wizard) stepScreen(step journey.Step) {
	screen, ok := screens[step]
	if !ok {
		log.Error().Str("step", step.String()).Msg("No screen for step, skipping")
		_ = w.orch.SkipStep()
		return
	}

	fmt.Printf("\n== %s ==\n%s\n\n", screen.title, screen.subtitle)

	if len(screen.presets) == 0 {
		if cli.Confirm(screen.action+"?", true) {
			w.runStep(screen.mod, "")
		} else {
			fmt.Println(screen.skip)
			_ = w.orch.SkipStep()
		}
		return
	}

	for i, p := range screen.presets {
		fmt.Printf("  %d) %s\n", i+1, p.name)
	}
	fmt.Printf("  0) %s\n", screen.skip)

	choice := cli.ReadLine("Escolha", "0")
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 0 || idx > len(screen.presets) {
		fmt.Println("Opção inválida, pulando este passo.")
		_ = w.orch.SkipStep()
		return
	}
	if idx == 0 {
		_ = w.orch.SkipStep()
		return
	}

	w.runStep(screen.mod, screen.presets[idx-1].detail)
}

func (w *wizard) runStep(mod prompt.Modification, detail string) {
	fmt.Println("\nDeixando você mais bonito(a)... aguarde.")
	if err := w.orch.RunStep(w.ctx, mod, detail); err != nil {
		// The session error panel carries the user-facing message; the
		// loop prints it on the next pass.
		return
	}
	if desc := w.orch.Snapshot().LastDescription; desc != "" {
		fmt.Printf("✨ %s\n", desc)
	}
}

// finalScreen shows the post-journey dashboard. Returns false when the
// user wants to leave.
func (w *wizard) finalScreen() bool {
	s := w.orch.Snapshot()

	fmt.Println("\n== Perfil Atualizado com Sucesso! ==")
	fmt.Println("Agora sim! Prepare-se para os matches.")

	if s.Bonus.Bio != "" {
		fmt.Printf("\nSua bio:\n%s\n", s.Bonus.Bio)
	}
	if s.Bonus.Vibe != nil {
		fmt.Printf("\nVibe Check: %d/10 — %s\n", s.Bonus.Vibe.Score, s.Bonus.Vibe.Vibe)
	}
	if len(s.Bonus.Icebreakers) > 0 {
		fmt.Println("\nIcebreakers:")
		for _, line := range s.Bonus.Icebreakers {
			fmt.Printf("  - %s\n", line)
		}
	}

	fmt.Println("\n  1) Baixar para o Perfil")
	fmt.Println("  2) Bônus: Gerar Bio")
	fmt.Println("  3) Bônus: Vibe Check")
	fmt.Println("  4) Bônus: Icebreakers")
	fmt.Println("  5) Reverter ao original")
	fmt.Println("  6) Recomeçar com outra foto")
	fmt.Println("  0) Sair")

	switch cli.ReadLine("Escolha", "0") {
	case "1":
		w.saveResult()
	case "2":
		fmt.Println("Gerando bio...")
		_ = w.orch.GenerateBio(w.ctx)
	case "3":
		if err := w.orch.GenerateVibe(w.ctx); errors.Is(err, session.ErrBioRequired) {
			fmt.Println("Gere a bio primeiro (opção 2).")
		}
	case "4":
		if err := w.orch.GenerateIcebreakers(w.ctx); errors.Is(err, session.ErrBioRequired) {
			fmt.Println("Gere a bio primeiro (opção 2).")
		}
	case "5":
		_ = w.orch.RevertToOriginal()
	case "6":
		w.restart()
	case "0":
		return false
	default:
		fmt.Println("Opção inválida.")
	}
	return true
}

func (w *wizard) saveResult() {
	img := w.orch.CurrentImage()
	if img == nil {
		return
	}
	named := *img
	named.Filename = fmt.Sprintf("perfil-de-sucesso-%d%s", time.Now().UnixMilli(), img.Ext())

	path, err := filehandler.SaveImage(&named, w.outputDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to save result")
		fmt.Println("Não foi possível salvar a foto.")
		return
	}
	fmt.Printf("Foto salva em %s\n", path)
}
