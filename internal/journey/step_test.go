package journey

import "testing"

func TestAdvanceSequence(t *testing.T) {
	want := []Step{StepSmile, StepAura, StepFashion, StepPet, StepBackground, StepFinal}

	step := Reset()
	for i, expected := range want {
		if step != expected {
			t.Fatalf("position %d: step = %v, want %v", i, step, expected)
		}
		step = Advance(step)
	}
}

func TestAdvanceAtFinalIsNoOp(t *testing.T) {
	step := StepFinal
	for i := 0; i < 5; i++ {
		step = Advance(step)
		if step != StepFinal {
			t.Fatalf("advance %d from FINAL: got %v, want FINAL", i+1, step)
		}
	}
}

func TestReset(t *testing.T) {
	if got := Reset(); got != StepSmile {
		t.Errorf("Reset() = %v, want SMILE", got)
	}
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepSmile, "SMILE"},
		{StepAura, "AURA"},
		{StepFashion, "FASHION"},
		{StepPet, "PET"},
		{StepBackground, "BACKGROUND"},
		{StepFinal, "FINAL"},
	}

	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", int(tt.step), got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range Steps() {
		if !s.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", s)
		}
	}
	if Step(42).IsValid() {
		t.Error("Step(42).IsValid() = true, want false")
	}
}

func TestAdvanceUnknownStepCollapsesToStart(t *testing.T) {
	if got := Advance(Step(99)); got != StepSmile {
		t.Errorf("Advance(unknown) = %v, want SMILE", got)
	}
}

func TestIsFinal(t *testing.T) {
	if StepSmile.IsFinal() {
		t.Error("SMILE.IsFinal() = true, want false")
	}
	if !StepFinal.IsFinal() {
		t.Error("FINAL.IsFinal() = false, want true")
	}
}
