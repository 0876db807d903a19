// Package session coordinates one glow-up session: the journey step, the
// image lineage, loading and error status, and the bonus text chain. All
// session state lives here and is mutated only through the documented
// operations, never field by field from callers.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mbarros/glowup-cli/internal/gemini"
	"github.com/mbarros/glowup-cli/internal/journey"
	"github.com/mbarros/glowup-cli/internal/lineage"
	"github.com/mbarros/glowup-cli/internal/prompt"
)

// welcomeDuration is how long the welcome banner stays up after an upload.
const welcomeDuration = 4 * time.Second

// Precondition errors. These are rejections of a caller action, not
// session errors: they never populate the error panel.
var (
	// ErrBusy rejects a user action while a call for the same flow is in
	// flight. There is no cancellation; the caller waits the call out.
	ErrBusy = errors.New("a request is already in flight")
	// ErrNoImage rejects actions that need a loaded image.
	ErrNoImage = errors.New("no image loaded")
	// ErrBioRequired rejects vibe and icebreaker generation before a bio
	// exists.
	ErrBioRequired = errors.New("a generated bio is required first")
)

// Gateway is the slice of the model boundary the orchestrator needs.
// *gemini.Gateway satisfies it; tests inject fakes.
type Gateway interface {
	ModifyImage(ctx context.Context, img *lineage.Asset, req prompt.Request) (*gemini.ModifyResult, error)
	GenerateBio(ctx context.Context, img *lineage.Asset) (string, error)
	GenerateVibe(ctx context.Context, img *lineage.Asset, bio string) (*gemini.VibeResult, error)
	GenerateIcebreakers(ctx context.Context, img *lineage.Asset, bio string) ([]string, error)
}

// Bonus holds the optional post-journey text results. Vibe exists only
// after a bio; icebreakers require a bio but not a vibe.
type Bonus struct {
	Bio         string
	Vibe        *gemini.VibeResult
	Icebreakers []string
}

// BonusLoading mirrors the per-flow loading flags of the bonus chain.
type BonusLoading struct {
	Bio         bool
	Vibe        bool
	Icebreakers bool
}

// Snapshot is a consistent read of the session for display purposes.
type Snapshot struct {
	Step              journey.Step
	HasImage          bool
	CurrentIsOriginal bool
	IsLoading         bool
	Err               string
	WelcomeActive     bool
	LastDescription   string
	Bonus             Bonus
	BonusLoading      BonusLoading
}

// Orchestrator owns the session state machine. All operations are safe for
// concurrent use; within one flow the state transition on completion is
// applied atomically, so no observer sees a half-applied update.
type Orchestrator struct {
	gw Gateway

	mu              sync.Mutex
	tracker         *lineage.Tracker
	step            journey.Step
	isLoading       bool
	errMsg          string
	lastDescription string
	bonus           Bonus
	bonusLoading    BonusLoading
	welcomeUntil    time.Time

	now func() time.Time
}

// New creates an empty session bound to the given gateway.
func New(gw Gateway) *Orchestrator {
	return &Orchestrator{
		gw:      gw,
		tracker: lineage.NewTracker(),
		step:    journey.Reset(),
		now:     time.Now,
	}
}

// UploadImage begins a new session with the given image: lineage starts,
// the journey resets, error and bonus state clear, and the welcome banner
// shows for a few seconds.
func (o *Orchestrator) UploadImage(img *lineage.Asset) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLoading {
		return ErrBusy
	}

	if err := o.tracker.Start(img); err != nil {
		return err
	}
	o.step = journey.Reset()
	o.errMsg = ""
	o.lastDescription = ""
	o.bonus = Bonus{}
	o.welcomeUntil = o.now().Add(welcomeDuration)

	log.Info().Str("filename", img.Filename).Msg("Session started with new image")
	return nil
}

// RunStep performs one transformation: build the instruction, call the
// model, and on success replace the current image and advance the journey.
// On failure the step and image stay put and the session error is set.
func (o *Orchestrator) RunStep(ctx context.Context, mod prompt.Modification, detail string) error {
	o.mu.Lock()
	if o.isLoading {
		o.mu.Unlock()
		return ErrBusy
	}
	img := o.tracker.Current()
	if img == nil {
		o.errMsg = "Nenhuma imagem carregada para editar."
		o.mu.Unlock()
		return ErrNoImage
	}

	req, err := prompt.NewRequest(mod, detail)
	if err != nil {
		o.mu.Unlock()
		return err
	}

	o.isLoading = true
	o.errMsg = ""
	o.mu.Unlock()

	// Network boundary: the only suspension point in the flow. The
	// isLoading guard keeps a second transformation out until this
	// settles.
	result, callErr := o.gw.ModifyImage(ctx, img, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.isLoading = false

	if callErr != nil {
		o.errMsg = "Falha ao gerar a imagem. " + gemini.UserMessage(callErr)
		log.Warn().Err(callErr).Str("step", o.step.String()).Msg("Transformation failed, step unchanged")
		return callErr
	}

	// Replace and advance together so no observer sees an advanced step
	// with the old image.
	if err := o.tracker.Replace(result.Image); err != nil {
		o.errMsg = "Falha ao gerar a imagem. " + gemini.UserMessage(err)
		return err
	}
	o.lastDescription = result.Description
	o.step = journey.Advance(o.step)

	log.Info().
		Str("request", req.Context()).
		Str("next_step", o.step.String()).
		Msg("Transformation applied")
	return nil
}

// SkipStep advances the journey without a model call.
func (o *Orchestrator) SkipStep() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLoading {
		return ErrBusy
	}
	if o.tracker.Current() == nil {
		return ErrNoImage
	}

	o.step = journey.Advance(o.step)
	log.Debug().Str("step", o.step.String()).Msg("Step skipped")
	return nil
}

// ResetSession clears the lineage, journey, error, and bonus state,
// returning to the pre-upload state.
func (o *Orchestrator) ResetSession() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLoading {
		return ErrBusy
	}

	o.tracker.Clear()
	o.step = journey.Reset()
	o.errMsg = ""
	o.lastDescription = ""
	o.bonus = Bonus{}
	o.welcomeUntil = time.Time{}

	log.Info().Msg("Session reset")
	return nil
}

// RevertToOriginal restores the original image as current and restarts
// the journey. Bonus fields clear because they described the superseded
// image. No-op without an original.
func (o *Orchestrator) RevertToOriginal() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.isLoading {
		return ErrBusy
	}
	if o.tracker.Original() == nil {
		return nil
	}

	if err := o.tracker.Revert(); err != nil {
		return err
	}
	o.step = journey.Reset()
	o.errMsg = ""
	o.lastDescription = ""
	o.bonus = Bonus{}

	log.Info().Msg("Reverted to original image")
	return nil
}

// DismissError clears the session error. This is the one action allowed
// while a call is in flight.
func (o *Orchestrator) DismissError() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errMsg = ""
}

// GenerateBio runs the first bonus generation. Regenerating overwrites
// the prior bio but deliberately leaves an existing vibe or icebreaker
// result in place.
func (o *Orchestrator) GenerateBio(ctx context.Context) error {
	o.mu.Lock()
	if o.bonusLoading.Bio {
		o.mu.Unlock()
		return ErrBusy
	}
	img := o.tracker.Current()
	if img == nil {
		o.mu.Unlock()
		return ErrNoImage
	}
	o.bonusLoading.Bio = true
	o.errMsg = ""
	o.mu.Unlock()

	bio, err := o.gw.GenerateBio(ctx, img)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.bonusLoading.Bio = false

	if err != nil {
		o.errMsg = "Falha ao gerar a bio. " + gemini.UserMessage(err)
		return err
	}
	o.bonus.Bio = bio
	return nil
}

// GenerateVibe runs the match-potential analysis. Requires an image and
// an existing bio.
func (o *Orchestrator) GenerateVibe(ctx context.Context) error {
	o.mu.Lock()
	if o.bonusLoading.Vibe {
		o.mu.Unlock()
		return ErrBusy
	}
	img := o.tracker.Current()
	if img == nil {
		o.mu.Unlock()
		return ErrNoImage
	}
	bio := o.bonus.Bio
	if bio == "" {
		o.mu.Unlock()
		return ErrBioRequired
	}
	o.bonusLoading.Vibe = true
	o.errMsg = ""
	o.mu.Unlock()

	vibe, err := o.gw.GenerateVibe(ctx, img, bio)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.bonusLoading.Vibe = false

	if err != nil {
		o.errMsg = "Falha ao gerar o Vibe Check. " + gemini.UserMessage(err)
		return err
	}
	o.bonus.Vibe = vibe
	return nil
}

// GenerateIcebreakers runs the opener generation. Requires an image and
// an existing bio; a vibe result is deliberately NOT required.
func (o *Orchestrator) GenerateIcebreakers(ctx context.Context) error {
	o.mu.Lock()
	if o.bonusLoading.Icebreakers {
		o.mu.Unlock()
		return ErrBusy
	}
	img := o.tracker.Current()
	if img == nil {
		o.mu.Unlock()
		return ErrNoImage
	}
	bio := o.bonus.Bio
	if bio == "" {
		o.mu.Unlock()
		return ErrBioRequired
	}
	o.bonusLoading.Icebreakers = true
	o.errMsg = ""
	o.mu.Unlock()

	icebreakers, err := o.gw.GenerateIcebreakers(ctx, img, bio)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.bonusLoading.Icebreakers = false

	if err != nil {
		o.errMsg = "Falha ao gerar os icebreakers. " + gemini.UserMessage(err)
		return err
	}
	o.bonus.Icebreakers = icebreakers
	return nil
}

// Snapshot returns a consistent view of the session.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Snapshot{
		Step:              o.step,
		HasImage:          o.tracker.Current() != nil,
		CurrentIsOriginal: o.tracker.CurrentIsOriginal(),
		IsLoading:         o.isLoading,
		Err:               o.errMsg,
		WelcomeActive:     o.now().Before(o.welcomeUntil),
		LastDescription:   o.lastDescription,
		Bonus:             o.bonus,
		BonusLoading:      o.bonusLoading,
	}
}

// CurrentImage returns the currently displayed asset, or nil.
func (o *Orchestrator) CurrentImage() *lineage.Asset {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tracker.Current()
}

// OriginalImage returns the untouched session-start asset, or nil.
func (o *Orchestrator) OriginalImage() *lineage.Asset {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tracker.Original()
}

// DisplayPath returns the path of the live display handle, or empty when
// no session is in progress.
func (o *Orchestrator) DisplayPath() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if h := o.tracker.Handle(); h != nil && !h.Released() {
		return h.Path
	}
	return ""
}

// Close ends the session and releases the final display handle.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tracker.Clear()
}

// String summarizes the session for debug logs.
func (o *Orchestrator) String() string {
	s := o.Snapshot()
	return fmt.Sprintf("session{step=%s image=%t loading=%t err=%t}", s.Step, s.HasImage, s.IsLoading, s.Err != "")
}
