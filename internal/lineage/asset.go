// Package lineage tracks the pairing of the untouched original photo and
// the currently displayed (possibly transformed) photo for one session.
//
// Every change to the current photo materializes a display handle — a
// uuid-named temporary file holding the current bytes so external viewers
// can show it. Exactly one handle is live at a time: acquiring a new one
// releases the previous one, and clearing the tracker releases the last.
package lineage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Asset is an immutable image payload with its MIME type and a synthetic
// filename. Assets are replaced wholesale, never mutated in place.
type Asset struct {
	Data     []byte
	MIMEType string
	Filename string
}

// NewAsset builds an Asset from raw bytes. The data slice is copied so
// later writes by the caller cannot alter the asset.
func NewAsset(data []byte, mimeType, filename string) *Asset {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Asset{Data: buf, MIMEType: mimeType, Filename: filename}
}

// Equal reports whether two assets carry bit-identical payloads.
func (a *Asset) Equal(other *Asset) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.MIMEType == other.MIMEType && bytes.Equal(a.Data, other.Data)
}

// Ext returns the file extension matching the asset's MIME type.
func (a *Asset) Ext() string {
	switch a.MIMEType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".img"
	}
}

// Handle is a transient, revocable view of the current asset: a temp file
// that external viewers can open. Its lifetime is bounded by the asset it
// was derived from; Release removes the file.
type Handle struct {
	ID   uuid.UUID
	Path string

	released bool
}

// acquireHandle writes the asset to a uuid-named file under the OS temp
// directory and returns the live handle for it.
func acquireHandle(a *Asset) (*Handle, error) {
	id := uuid.New()
	path := filepath.Join(os.TempDir(), "glowup-"+id.String()+a.Ext())

	if err := os.WriteFile(path, a.Data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to materialize display handle: %w", err)
	}

	log.Debug().
		Str("handle", id.String()).
		Str("path", path).
		Int("bytes", len(a.Data)).
		Msg("Display handle acquired")

	return &Handle{ID: id, Path: path}, nil
}

// Release revokes the handle and removes its backing file. Releasing an
// already released handle is a no-op.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true

	if err := os.Remove(h.Path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", h.Path).Msg("Failed to remove display handle file")
		return
	}

	log.Debug().Str("handle", h.ID.String()).Msg("Display handle released")
}

// Released reports whether the handle has been revoked.
func (h *Handle) Released() bool {
	return h == nil || h.released
}
