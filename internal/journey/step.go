// Package journey implements the fixed transformation sequence that drives
// the glow-up wizard: smile, aura, fashion, pet, background, then a terminal
// final stage. The sequence is strictly linear — a step only moves forward,
// and the only way back is a full reset.
package journey

import "fmt"

// Step is one stage of the transformation journey.
type Step int

const (
	// StepSmile is the initial stage: dental whitening and alignment.
	StepSmile Step = iota
	// StepAura applies a free-form "aura" edit supplied by the user.
	StepAura
	// StepFashion restyles the subject's clothing.
	StepFashion
	// StepPet adds a pet companion next to the subject.
	StepPet
	// StepBackground re-composites the subject onto a new scene.
	StepBackground
	// StepFinal is the terminal stage. No transformation runs here; the
	// bonus text features become available.
	StepFinal
)

// successor maps each step to the next one in the journey. StepFinal maps
// to itself, which makes Advance a no-op at the end of the sequence.
var successor = map[Step]Step{
	StepSmile:      StepAura,
	StepAura:       StepFashion,
	StepFashion:    StepPet,
	StepPet:        StepBackground,
	StepBackground: StepFinal,
	StepFinal:      StepFinal,
}

var stepNames = map[Step]string{
	StepSmile:      "SMILE",
	StepAura:       "AURA",
	StepFashion:    "FASHION",
	StepPet:        "PET",
	StepBackground: "BACKGROUND",
	StepFinal:      "FINAL",
}

// String returns the canonical upper-case name of the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// IsValid reports whether s is one of the six known steps.
func (s Step) IsValid() bool {
	_, ok := stepNames[s]
	return ok
}

// IsFinal reports whether s is the terminal stage.
func (s Step) IsFinal() bool {
	return s == StepFinal
}

// Advance returns the successor of s. Advancing from StepFinal returns
// StepFinal — the terminal stage absorbs further advances.
func Advance(s Step) Step {
	next, ok := successor[s]
	if !ok {
		// Unknown values collapse to the start of the journey rather
		// than propagating an unrepresentable state.
		return StepSmile
	}
	return next
}

// Reset returns the initial step of the journey.
func Reset() Step {
	return StepSmile
}

// Steps returns the full journey order, terminal stage included.
func Steps() []Step {
	return []Step{StepSmile, StepAura, StepFashion, StepPet, StepBackground, StepFinal}
}
