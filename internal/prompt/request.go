// Package prompt turns validated modification requests into the natural
// language instructions sent to the generative model. Construction is the
// enforcement point: a request that builds is a request the model can be
// asked to perform.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest marks malformed request parameters. Reaching it through
// the CLI surface indicates a programming error, not user input.
var ErrInvalidRequest = errors.New("invalid modification request")

// Modification identifies one of the five transformation types.
type Modification int

const (
	// ModSmile whitens and aligns teeth with a fixed instruction.
	ModSmile Modification = iota
	// ModAura applies the caller-supplied instruction verbatim.
	ModAura
	// ModFashion restyles clothing to a described style.
	ModFashion
	// ModPet inserts a described creature next to the subject.
	ModPet
	// ModBackground re-composites the subject onto a described scene.
	ModBackground
)

var modNames = map[Modification]string{
	ModSmile:      "SMILE",
	ModAura:       "AURA",
	ModFashion:    "FASHION",
	ModPet:        "PET",
	ModBackground: "BACKGROUND",
}

// String returns the canonical upper-case name of the modification.
func (m Modification) String() string {
	if name, ok := modNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Modification(%d)", int(m))
}

// Request is a validated modification request: a closed type plus the
// per-type detail. Requests are ephemeral — built per call, never retained.
type Request struct {
	mod    Modification
	detail string
}

// NewRequest validates and builds a Request. Smile forbids detail (its
// instruction is fixed); every other modification requires it.
func NewRequest(mod Modification, detail string) (Request, error) {
	detail = strings.TrimSpace(detail)

	switch mod {
	case ModSmile:
		if detail != "" {
			return Request{}, fmt.Errorf("%w: %s takes no detail", ErrInvalidRequest, mod)
		}
	case ModAura, ModFashion, ModPet, ModBackground:
		if detail == "" {
			return Request{}, fmt.Errorf("%w: %s requires a detail", ErrInvalidRequest, mod)
		}
	default:
		return Request{}, fmt.Errorf("%w: unknown modification type %d", ErrInvalidRequest, int(mod))
	}

	return Request{mod: mod, detail: detail}, nil
}

// Modification returns the request's transformation type.
func (r Request) Modification() Modification {
	return r.mod
}

// Detail returns the user-chosen detail, empty for smile requests.
func (r Request) Detail() string {
	return r.detail
}

// Context returns a short human-readable label for logging.
func (r Request) Context() string {
	if r.detail == "" {
		return r.mod.String()
	}
	return r.mod.String() + ": " + r.detail
}
