package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mbarros/glowup-cli/internal/gemini"
	"github.com/mbarros/glowup-cli/internal/journey"
	"github.com/mbarros/glowup-cli/internal/lineage"
	"github.com/mbarros/glowup-cli/internal/prompt"
)

// fakeGateway returns canned results so orchestration can be exercised
// without a network.
type fakeGateway struct {
	modifyResult *gemini.ModifyResult
	modifyErr    error
	bio          string
	bioErr       error
	vibe         *gemini.VibeResult
	vibeErr      error
	icebreakers  []string
	iceErr       error

	modifyCalls int
	lastBio     string
}

func (f *fakeGateway) ModifyImage(_ context.Context, _ *lineage.Asset, _ prompt.Request) (*gemini.ModifyResult, error) {
	f.modifyCalls++
	if f.modifyErr != nil {
		return nil, f.modifyErr
	}
	return f.modifyResult, nil
}

func (f *fakeGateway) GenerateBio(_ context.Context, _ *lineage.Asset) (string, error) {
	return f.bio, f.bioErr
}

func (f *fakeGateway) GenerateVibe(_ context.Context, _ *lineage.Asset, bio string) (*gemini.VibeResult, error) {
	f.lastBio = bio
	return f.vibe, f.vibeErr
}

func (f *fakeGateway) GenerateIcebreakers(_ context.Context, _ *lineage.Asset, bio string) ([]string, error) {
	f.lastBio = bio
	return f.icebreakers, f.iceErr
}

func uploaded(t *testing.T, gw Gateway) *Orchestrator {
	t.Helper()
	o := New(gw)
	t.Cleanup(o.Close)
	if err := o.UploadImage(lineage.NewAsset([]byte("original-bytes"), "image/jpeg", "me.jpg")); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	return o
}

func TestUploadStartsSession(t *testing.T) {
	o := uploaded(t, &fakeGateway{})

	s := o.Snapshot()
	if s.Step != journey.StepSmile {
		t.Errorf("Step = %v, want %v", s.Step, journey.StepSmile)
	}
	if !s.HasImage || !s.CurrentIsOriginal {
		t.Errorf("HasImage = %t, CurrentIsOriginal = %t, want both true", s.HasImage, s.CurrentIsOriginal)
	}
	if !s.WelcomeActive {
		t.Error("WelcomeActive = false immediately after upload, want true")
	}
	if o.DisplayPath() == "" {
		t.Error("DisplayPath() empty after upload")
	}
}

func TestRunStepSuccessAdvancesAndReplaces(t *testing.T) {
	gw := &fakeGateway{modifyResult: &gemini.ModifyResult{
		Image:       lineage.NewAsset([]byte("smiling-bytes"), "image/png", "smile.png"),
		Description: "Sorriso ajustado.",
	}}
	o := uploaded(t, gw)

	if err := o.RunStep(context.Background(), prompt.ModSmile, ""); err != nil {
		t.Fatalf("RunStep() error = %v", err)
	}

	s := o.Snapshot()
	if s.Step != journey.StepAura {
		t.Errorf("Step = %v, want %v", s.Step, journey.StepAura)
	}
	if s.CurrentIsOriginal {
		t.Error("CurrentIsOriginal = true after a successful transformation")
	}
	if got := string(o.CurrentImage().Data); got != "smiling-bytes" {
		t.Errorf("current image data = %q, want %q", got, "smiling-bytes")
	}
	if got := string(o.OriginalImage().Data); got != "original-bytes" {
		t.Errorf("original image data = %q, want %q", got, "original-bytes")
	}
	if s.LastDescription != "Sorriso ajustado." {
		t.Errorf("LastDescription = %q", s.LastDescription)
	}
}

func TestRunStepFailureLeavesStepAndImage(t *testing.T) {
	gw := &fakeGateway{modifyErr: &gemini.BlockedError{Reason: "SAFETY"}}
	o := uploaded(t, gw)

	err := o.RunStep(context.Background(), prompt.ModSmile, "")
	if err == nil {
		t.Fatal("RunStep() error = nil, want blocked error")
	}

	s := o.Snapshot()
	if s.Step != journey.StepSmile {
		t.Errorf("Step = %v after failure, want %v", s.Step, journey.StepSmile)
	}
	if !s.CurrentIsOriginal {
		t.Error("CurrentIsOriginal = false after failure, want true")
	}
	if !strings.Contains(s.Err, "Falha ao gerar a imagem.") || !strings.Contains(s.Err, "SAFETY") {
		t.Errorf("Err = %q, want failure prefix and block reason", s.Err)
	}
	if s.IsLoading {
		t.Error("IsLoading = true after settled call")
	}
}

func TestDismissErrorThenSkip(t *testing.T) {
	gw := &fakeGateway{modifyErr: gemini.ErrNoResponse}
	o := uploaded(t, gw)

	_ = o.RunStep(context.Background(), prompt.ModSmile, "")
	if o.Snapshot().Err == "" {
		t.Fatal("expected session error after failed step")
	}

	o.DismissError()
	if got := o.Snapshot().Err; got != "" {
		t.Errorf("Err = %q after dismiss, want empty", got)
	}

	if err := o.SkipStep(); err != nil {
		t.Fatalf("SkipStep() error = %v", err)
	}
	if got := o.Snapshot().Step; got != journey.StepAura {
		t.Errorf("Step = %v after skip, want %v", got, journey.StepAura)
	}
}

func TestRunStepWithoutImage(t *testing.T) {
	o := New(&fakeGateway{})
	t.Cleanup(o.Close)

	if err := o.RunStep(context.Background(), prompt.ModSmile, ""); !errors.Is(err, ErrNoImage) {
		t.Errorf("RunStep() error = %v, want ErrNoImage", err)
	}
	if o.Snapshot().Err == "" {
		t.Error("expected session error about the missing image")
	}
}

func TestRunStepInvalidRequest(t *testing.T) {
	gw := &fakeGateway{}
	o := uploaded(t, gw)

	if err := o.RunStep(context.Background(), prompt.ModFashion, "  "); !errors.Is(err, prompt.ErrInvalidRequest) {
		t.Errorf("RunStep() error = %v, want ErrInvalidRequest", err)
	}
	if gw.modifyCalls != 0 {
		t.Errorf("gateway called %d times for an invalid request, want 0", gw.modifyCalls)
	}
	if got := o.Snapshot().Step; got != journey.StepSmile {
		t.Errorf("Step = %v, want unchanged %v", got, journey.StepSmile)
	}
}

func TestRevertRestoresOriginalAndRestartsJourney(t *testing.T) {
	gw := &fakeGateway{modifyResult: &gemini.ModifyResult{
		Image: lineage.NewAsset([]byte("edited"), "image/png", "edited.png"),
	}}
	o := uploaded(t, gw)

	if err := o.RunStep(context.Background(), prompt.ModSmile, ""); err != nil {
		t.Fatalf("RunStep() error = %v", err)
	}
	if err := o.RevertToOriginal(); err != nil {
		t.Fatalf("RevertToOriginal() error = %v", err)
	}

	s := o.Snapshot()
	if !s.CurrentIsOriginal {
		t.Error("CurrentIsOriginal = false after revert")
	}
	if s.Step != journey.StepSmile {
		t.Errorf("Step = %v after revert, want %v", s.Step, journey.StepSmile)
	}
	if got := string(o.CurrentImage().Data); got != "original-bytes" {
		t.Errorf("current image data = %q, want original bytes", got)
	}
}

func TestRevertWithoutImageIsNoOp(t *testing.T) {
	o := New(&fakeGateway{})
	t.Cleanup(o.Close)

	if err := o.RevertToOriginal(); err != nil {
		t.Errorf("RevertToOriginal() error = %v, want nil no-op", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	gw := &fakeGateway{bio: "Uma bio."}
	o := uploaded(t, gw)

	if err := o.GenerateBio(context.Background()); err != nil {
		t.Fatalf("GenerateBio() error = %v", err)
	}
	if err := o.ResetSession(); err != nil {
		t.Fatalf("ResetSession() error = %v", err)
	}

	s := o.Snapshot()
	if s.HasImage {
		t.Error("HasImage = true after reset")
	}
	if s.Step != journey.StepSmile {
		t.Errorf("Step = %v after reset, want %v", s.Step, journey.StepSmile)
	}
	if s.Bonus.Bio != "" || s.Bonus.Vibe != nil || s.Bonus.Icebreakers != nil {
		t.Errorf("Bonus = %+v after reset, want zero", s.Bonus)
	}
	if o.DisplayPath() != "" {
		t.Error("DisplayPath() non-empty after reset")
	}
}

func TestResetThenUploadStartsFreshSession(t *testing.T) {
	gw := &fakeGateway{modifyResult: &gemini.ModifyResult{
		Image:       lineage.NewAsset([]byte("edited"), "image/png", "edited.png"),
		Description: "Editado.",
	}}
	o := uploaded(t, gw)

	if err := o.RunStep(context.Background(), prompt.ModSmile, ""); err != nil {
		t.Fatalf("RunStep() error = %v", err)
	}
	if err := o.ResetSession(); err != nil {
		t.Fatalf("ResetSession() error = %v", err)
	}
	if err := o.UploadImage(lineage.NewAsset([]byte("next-photo"), "image/png", "next.png")); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	s := o.Snapshot()
	if s.Step != journey.StepSmile || !s.CurrentIsOriginal {
		t.Errorf("Step = %v, CurrentIsOriginal = %t after restart", s.Step, s.CurrentIsOriginal)
	}
	if !s.WelcomeActive {
		t.Error("WelcomeActive = false after restart upload")
	}
	if got := string(o.OriginalImage().Data); got != "next-photo" {
		t.Errorf("original image data = %q, want %q", got, "next-photo")
	}
}

func TestWelcomeBannerExpires(t *testing.T) {
	o := uploaded(t, &fakeGateway{})

	base := time.Now()
	o.now = func() time.Time { return base }
	if err := o.UploadImage(lineage.NewAsset([]byte("fresh"), "image/png", "fresh.png")); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	if !o.Snapshot().WelcomeActive {
		t.Fatal("WelcomeActive = false right after upload")
	}

	o.now = func() time.Time { return base.Add(welcomeDuration + time.Second) }
	if o.Snapshot().WelcomeActive {
		t.Error("WelcomeActive = true after the banner window elapsed")
	}
}

func TestJourneyReachesFinalAndStays(t *testing.T) {
	o := uploaded(t, &fakeGateway{})

	for i := 0; i < 8; i++ {
		if err := o.SkipStep(); err != nil {
			t.Fatalf("SkipStep() #%d error = %v", i, err)
		}
	}
	if got := o.Snapshot().Step; got != journey.StepFinal {
		t.Errorf("Step = %v after skipping past the end, want %v", got, journey.StepFinal)
	}
}

func TestBonusChainOrdering(t *testing.T) {
	gw := &fakeGateway{
		bio:         "Aventureiro com um sorriso novo.",
		vibe:        &gemini.VibeResult{Score: 9, Vibe: "Confiante"},
		icebreakers: []string{"Oi!", "E aí?", "Bora?"},
	}
	o := uploaded(t, gw)

	if err := o.GenerateVibe(context.Background()); !errors.Is(err, ErrBioRequired) {
		t.Errorf("GenerateVibe() before bio error = %v, want ErrBioRequired", err)
	}
	if err := o.GenerateIcebreakers(context.Background()); !errors.Is(err, ErrBioRequired) {
		t.Errorf("GenerateIcebreakers() before bio error = %v, want ErrBioRequired", err)
	}

	if err := o.GenerateBio(context.Background()); err != nil {
		t.Fatalf("GenerateBio() error = %v", err)
	}

	// Icebreakers only need the bio. A vibe result is not a prerequisite.
	if err := o.GenerateIcebreakers(context.Background()); err != nil {
		t.Fatalf("GenerateIcebreakers() after bio error = %v", err)
	}
	if gw.lastBio != gw.bio {
		t.Errorf("icebreakers received bio %q, want %q", gw.lastBio, gw.bio)
	}

	if err := o.GenerateVibe(context.Background()); err != nil {
		t.Fatalf("GenerateVibe() error = %v", err)
	}

	s := o.Snapshot()
	if s.Bonus.Vibe == nil || s.Bonus.Vibe.Score != 9 {
		t.Errorf("Bonus.Vibe = %+v, want score 9", s.Bonus.Vibe)
	}
	if len(s.Bonus.Icebreakers) != 3 {
		t.Errorf("Icebreakers = %v, want 3 entries", s.Bonus.Icebreakers)
	}
}

func TestBioRegenerationKeepsDownstreamResults(t *testing.T) {
	gw := &fakeGateway{
		bio:         "Primeira bio.",
		vibe:        &gemini.VibeResult{Score: 7, Vibe: "Radiante"},
		icebreakers: []string{"Oi!"},
	}
	o := uploaded(t, gw)

	for _, fn := range []func(context.Context) error{o.GenerateBio, o.GenerateVibe, o.GenerateIcebreakers} {
		if err := fn(context.Background()); err != nil {
			t.Fatalf("bonus generation error = %v", err)
		}
	}

	gw.bio = "Segunda bio."
	if err := o.GenerateBio(context.Background()); err != nil {
		t.Fatalf("GenerateBio() regeneration error = %v", err)
	}

	s := o.Snapshot()
	if s.Bonus.Bio != "Segunda bio." {
		t.Errorf("Bio = %q, want the regenerated bio", s.Bonus.Bio)
	}
	// Downstream results are kept as-is even though they describe the
	// superseded bio.
	if s.Bonus.Vibe == nil || s.Bonus.Vibe.Score != 7 {
		t.Errorf("Vibe = %+v after bio regeneration, want kept", s.Bonus.Vibe)
	}
	if len(s.Bonus.Icebreakers) != 1 {
		t.Errorf("Icebreakers = %v after bio regeneration, want kept", s.Bonus.Icebreakers)
	}
}

func TestBonusFailureSetsSessionError(t *testing.T) {
	gw := &fakeGateway{bioErr: gemini.ErrNoResponse}
	o := uploaded(t, gw)

	if err := o.GenerateBio(context.Background()); err == nil {
		t.Fatal("GenerateBio() error = nil, want failure")
	}
	if got := o.Snapshot().Err; !strings.Contains(got, "Falha ao gerar a bio.") {
		t.Errorf("Err = %q, want bio failure prefix", got)
	}
}

func TestUploadReplacesPreviousSession(t *testing.T) {
	gw := &fakeGateway{bio: "Bio antiga."}
	o := uploaded(t, gw)
	if err := o.GenerateBio(context.Background()); err != nil {
		t.Fatalf("GenerateBio() error = %v", err)
	}
	firstPath := o.DisplayPath()

	if err := o.UploadImage(lineage.NewAsset([]byte("second"), "image/png", "v2.png")); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	s := o.Snapshot()
	if s.Bonus.Bio != "" {
		t.Errorf("Bio = %q after new upload, want cleared", s.Bonus.Bio)
	}
	if !s.CurrentIsOriginal || s.Step != journey.StepSmile {
		t.Errorf("Step = %v, CurrentIsOriginal = %t after new upload", s.Step, s.CurrentIsOriginal)
	}
	if got := o.DisplayPath(); got == firstPath || got == "" {
		t.Errorf("DisplayPath() = %q, want a fresh handle", got)
	}
}
