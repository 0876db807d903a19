package main

import (
	"testing"

	"github.com/mbarros/glowup-cli/internal/journey"
	"github.com/mbarros/glowup-cli/internal/prompt"
)

func TestStepModsCoverEveryEditableStep(t *testing.T) {
	for step := journey.StepSmile; !step.IsFinal(); step = journey.Advance(step) {
		if _, ok := stepMods[step]; !ok {
			t.Errorf("no modification mapped for step %v", step)
		}
	}
	if _, ok := stepMods[journey.StepFinal]; ok {
		t.Error("final step has a modification mapped, want none")
	}
}

func TestStepModsDetailRules(t *testing.T) {
	// The smile step builds without detail; every other step requires it.
	if _, err := prompt.NewRequest(stepMods[journey.StepSmile], ""); err != nil {
		t.Errorf("NewRequest(smile, \"\") error = %v", err)
	}
	for _, step := range []journey.Step{journey.StepAura, journey.StepFashion, journey.StepPet, journey.StepBackground} {
		if _, err := prompt.NewRequest(stepMods[step], ""); err == nil {
			t.Errorf("NewRequest(%v, \"\") error = nil, want detail requirement", step)
		}
		if _, err := prompt.NewRequest(stepMods[step], "um detalhe"); err != nil {
			t.Errorf("NewRequest(%v, detail) error = %v", step, err)
		}
	}
}
