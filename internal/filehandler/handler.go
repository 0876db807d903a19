// Package filehandler loads, inspects, and saves the photos the wizard
// works on. Only still images are supported.
package filehandler

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"

	"github.com/mbarros/glowup-cli/internal/lineage"
)

// SupportedImageExtensions maps the accepted upload extensions to their
// MIME types.
var SupportedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
}

// GetMIMEType returns the MIME type for a given file extension.
func GetMIMEType(ext string) (string, error) {
	if mimeType, ok := SupportedImageExtensions[strings.ToLower(ext)]; ok {
		return mimeType, nil
	}
	return "", fmt.Errorf("unsupported file extension: %s", ext)
}

// IsImage returns true if the file extension corresponds to a supported image.
func IsImage(ext string) bool {
	_, ok := SupportedImageExtensions[strings.ToLower(ext)]
	return ok
}

// LoadImage reads an image from disk into an asset. Formats with a
// registered Go decoder are validated by decoding the header; HEIC and
// HEIF are accepted on extension alone.
func LoadImage(path string) (*lineage.Asset, error) {
	log.Debug().Str("path", path).Msg("Loading image file")

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType, err := GetMIMEType(ext)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if ext != ".heic" && ext != ".heif" {
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("not a valid %s image: %w", strings.TrimPrefix(ext, "."), err)
		}
		log.Info().
			Str("path", path).
			Str("format", format).
			Int("width", cfg.Width).
			Int("height", cfg.Height).
			Int64("size_bytes", info.Size()).
			Msg("Image loaded")
	} else {
		log.Info().
			Str("path", path).
			Str("mime_type", mimeType).
			Int64("size_bytes", info.Size()).
			Msg("Image loaded (no decoder, extension trusted)")
	}

	return lineage.NewAsset(data, mimeType, filepath.Base(path)), nil
}

// SaveImage writes an asset into dir using its own filename, creating
// the directory if needed. Returns the written path.
func SaveImage(a *lineage.Asset, dir string) (string, error) {
	if a == nil {
		return "", fmt.Errorf("no image to save")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := a.Filename
	if name == "" {
		name = "resultado" + a.Ext()
	}
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	log.Info().Str("path", path).Int("size_bytes", len(a.Data)).Msg("Image saved")
	return path, nil
}
