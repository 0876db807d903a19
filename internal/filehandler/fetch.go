package filehandler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mbarros/glowup-cli/internal/lineage"
)

// Example photo offered on the start screen for users who want to try
// the wizard without uploading their own picture.
const (
	exampleImageURL      = "https://st4.depositphotos.com/23658156/29521/i/450/depositphotos_295218872-stock-photo-expression-asian-toothless-funny-guy.jpg"
	exampleImageFilename = "preset-guy-1.jpg"
)

// maxExampleBytes caps the example download.
const maxExampleBytes = 20 << 20

// FetchExampleImage downloads the bundled example photo.
func FetchExampleImage(ctx context.Context) (*lineage.Asset, error) {
	log.Debug().Str("url", exampleImageURL).Msg("Fetching example image")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exampleImageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build example image request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch example image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch example image: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxExampleBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read example image: %w", err)
	}
	if len(data) > maxExampleBytes {
		return nil, fmt.Errorf("example image exceeds %d bytes", maxExampleBytes)
	}

	// The extension wins over the server's Content-Type, which is
	// sometimes a generic octet-stream.
	mimeType, err := GetMIMEType(filepath.Ext(exampleImageFilename))
	if err != nil {
		ct := resp.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "image/") {
			return nil, fmt.Errorf("example image has unusable content type %q", ct)
		}
		mimeType = ct
	}

	log.Info().Int("size_bytes", len(data)).Str("mime_type", mimeType).Msg("Example image fetched")
	return lineage.NewAsset(data, mimeType, exampleImageFilename), nil
}
