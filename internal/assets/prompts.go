// Package assets provides the embedded prompt templates for the glow-up
// wizard. Every instruction sent to the model lives as a text file under
// prompts/ and is embedded at compile time, keeping prompt copy out of the
// Go sources and reviewable on its own.
package assets

import (
	"bytes"
	_ "embed"
	"text/template"
)

// --- Static prompts (no dynamic data) ---

// BaseInstruction is the shared directive that prefixes every image
// transformation: the edit must be photorealistic, plausible, and leave
// everything outside the targeted region untouched.
//
//go:embed prompts/base-instruction.txt
var BaseInstruction string

// SmilePrompt is the fixed smile-enhancement instruction. The smile step
// takes no user detail; only the teeth region may change.
//
//go:embed prompts/smile.txt
var SmilePrompt string

// BioPrompt asks for a short dating-profile bio as a strict JSON object.
//
//go:embed prompts/bio.txt
var BioPrompt string

// --- Dynamic prompt templates ---

//go:embed prompts/fashion.txt
var fashionTemplate string

//go:embed prompts/pet.txt
var petTemplate string

//go:embed prompts/background.txt
var backgroundTemplate string

//go:embed prompts/vibe.txt
var vibeTemplate string

//go:embed prompts/icebreakers.txt
var icebreakersTemplate string

// Pre-parsed templates. template.Must panics on malformed templates,
// surfacing errors at program startup rather than at call time.
var (
	fashionTmpl     = template.Must(template.New("fashion").Parse(fashionTemplate))
	petTmpl         = template.Must(template.New("pet").Parse(petTemplate))
	backgroundTmpl  = template.Must(template.New("background").Parse(backgroundTemplate))
	vibeTmpl        = template.Must(template.New("vibe").Parse(vibeTemplate))
	icebreakersTmpl = template.Must(template.New("icebreakers").Parse(icebreakersTemplate))
)

// detailData carries the user-chosen detail into a transformation template.
type detailData struct {
	Detail string
}

// bioData carries the previously generated bio into a text-mode template.
type bioData struct {
	Bio string
}

// RenderFashionPrompt renders the clothing-restyle instruction for the
// given style description.
func RenderFashionPrompt(detail string) string {
	return render(fashionTmpl, detailData{Detail: detail})
}

// RenderPetPrompt renders the pet-companion instruction for the given
// creature description.
func RenderPetPrompt(detail string) string {
	return render(petTmpl, detailData{Detail: detail})
}

// RenderBackgroundPrompt renders the background-replacement instruction
// for the given scene description.
func RenderBackgroundPrompt(detail string) string {
	return render(backgroundTmpl, detailData{Detail: detail})
}

// RenderVibePrompt renders the match-potential analysis prompt against the
// given bio text.
func RenderVibePrompt(bio string) string {
	return render(vibeTmpl, bioData{Bio: bio})
}

// RenderIcebreakersPrompt renders the icebreaker-generation prompt against
// the given bio text.
func RenderIcebreakersPrompt(bio string) string {
	return render(icebreakersTmpl, bioData{Bio: bio})
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	// Execution cannot fail for these templates; return whatever rendered.
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}
