package lineage

import (
	"github.com/rs/zerolog/log"
)

// Tracker owns the original and current assets for one session. It is the
// only component allowed to assign either role. The original is set once
// per session and never mutated; the current is replaced wholesale on every
// successful transformation or revert.
//
// Tracker is not safe for concurrent use; the session orchestrator
// serializes access.
type Tracker struct {
	original *Asset
	current  *Asset
	handle   *Handle
}

// NewTracker returns an empty tracker with no session in progress.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start begins a new session with the given image as both original and
// current. Any prior session state is discarded and its handle released.
func (t *Tracker) Start(img *Asset) error {
	t.releaseHandle()
	t.original = img
	t.current = img

	log.Info().
		Str("filename", img.Filename).
		Str("mime", img.MIMEType).
		Int("bytes", len(img.Data)).
		Msg("Lineage started")

	return t.refreshHandle()
}

// Replace swaps in a new current asset after a successful transformation.
// The original is untouched. No-op when no session is in progress.
func (t *Tracker) Replace(img *Asset) error {
	if t.current == nil {
		return nil
	}
	t.current = img
	return t.refreshHandle()
}

// Revert restores the current asset to the original. Fails silently when
// no original is set.
func (t *Tracker) Revert() error {
	if t.original == nil {
		return nil
	}
	t.current = t.original
	return t.refreshHandle()
}

// Clear drops both assets and releases the live handle, ending the session.
func (t *Tracker) Clear() {
	t.releaseHandle()
	t.original = nil
	t.current = nil
}

// Original returns the untouched session-start asset, or nil.
func (t *Tracker) Original() *Asset {
	return t.original
}

// Current returns the currently displayed asset, or nil.
func (t *Tracker) Current() *Asset {
	return t.current
}

// Handle returns the live display handle for the current asset, or nil
// when no session is in progress.
func (t *Tracker) Handle() *Handle {
	return t.handle
}

// CurrentIsOriginal reports whether the current asset is the original one.
// This drives the enabled state of the revert control: reverting is only
// offered once the lineage has diverged.
func (t *Tracker) CurrentIsOriginal() bool {
	return t.current != nil && t.current == t.original
}

// refreshHandle acquires a handle for the new current asset and releases
// the previous one. At most one handle is live after this returns; a
// failed acquire still releases the old handle so a stale view of the
// superseded image can never remain on display.
func (t *Tracker) refreshHandle() error {
	old := t.handle
	h, err := acquireHandle(t.current)
	if err != nil {
		old.Release()
		t.handle = nil
		return err
	}
	t.handle = h
	old.Release()
	return nil
}

func (t *Tracker) releaseHandle() {
	t.handle.Release()
	t.handle = nil
}
