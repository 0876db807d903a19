package prompt

import (
	"github.com/mbarros/glowup-cli/internal/assets"
)

// BuildInstruction renders the full model instruction for a validated
// request: the shared base directive followed by the per-type instruction.
func BuildInstruction(r Request) string {
	var body string
	switch r.Modification() {
	case ModSmile:
		body = assets.SmilePrompt
	case ModAura:
		// The aura step passes the caller's text through verbatim.
		body = r.Detail()
	case ModFashion:
		body = assets.RenderFashionPrompt(r.Detail())
	case ModPet:
		body = assets.RenderPetPrompt(r.Detail())
	case ModBackground:
		body = assets.RenderBackgroundPrompt(r.Detail())
	}
	return joinInstruction(assets.BaseInstruction, body)
}

// BuildRawInstruction renders an instruction for a caller-supplied
// simulation prompt, such as a catalog procedure. The same base directive
// applies: only the targeted region may change.
func BuildRawInstruction(simulation string) string {
	return joinInstruction(assets.BaseInstruction, simulation)
}

// TextMode selects one of the three bonus text generations.
type TextMode int

const (
	// TextBio generates a short dating-profile bio.
	TextBio TextMode = iota
	// TextVibe scores the profile's match potential against the bio.
	TextVibe
	// TextIcebreakers generates three conversation openers from the bio.
	TextIcebreakers
)

var textModeNames = map[TextMode]string{
	TextBio:         "bio",
	TextVibe:        "vibe",
	TextIcebreakers: "icebreakers",
}

// String returns the lower-case mode name used in logs.
func (m TextMode) String() string {
	if name, ok := textModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// BuildTextPrompt renders the instruction for a bonus text generation.
// The vibe and icebreaker modes interpolate the previously generated bio.
func BuildTextPrompt(mode TextMode, bio string) string {
	switch mode {
	case TextBio:
		return assets.BioPrompt
	case TextVibe:
		return assets.RenderVibePrompt(bio)
	case TextIcebreakers:
		return assets.RenderIcebreakersPrompt(bio)
	}
	return ""
}

func joinInstruction(base, body string) string {
	if body == "" {
		return base
	}
	return base + " " + body
}
