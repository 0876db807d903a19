package filehandler

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"
)

// ImageInfo is the EXIF summary shown when an image is loaded.
//
// imagemeta reads metadata with an io.Reader/io.Seeker pattern, so only
// the metadata bytes of a large photo are read, not the whole file. It
// handles JPEG, HEIC, HEIF, TIFF, and degrades gracefully for PNG/WebP.
type ImageInfo struct {
	DateTaken   time.Time
	HasDate     bool
	CameraMake  string
	CameraModel string
}

// InspectImage extracts the EXIF summary from an image file. A file
// without EXIF is not an error for the caller; pass the returned error
// through log.Warn and move on.
func InspectImage(path string) (*ImageInfo, error) {
	log.Debug().Str("path", path).Msg("Extracting EXIF metadata")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	exifData, err := imagemeta.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode EXIF metadata: %w", err)
	}

	info := &ImageInfo{
		CameraMake:  strings.TrimSpace(exifData.Make),
		CameraModel: strings.TrimSpace(exifData.Model),
	}

	// Date fallback chain: DateTimeOriginal > CreateDate > ModifyDate.
	switch {
	case !exifData.DateTimeOriginal().IsZero():
		info.DateTaken = exifData.DateTimeOriginal()
		info.HasDate = true
	case !exifData.CreateDate().IsZero():
		info.DateTaken = exifData.CreateDate()
		info.HasDate = true
	case !exifData.ModifyDate().IsZero():
		info.DateTaken = exifData.ModifyDate()
		info.HasDate = true
	}

	log.Debug().
		Bool("has_date", info.HasDate).
		Str("camera", info.CameraMake+" "+info.CameraModel).
		Msg("EXIF metadata extracted")

	return info, nil
}

// Summary renders the info as a short line for the terminal, or empty
// when there is nothing to show.
func (i *ImageInfo) Summary() string {
	var parts []string
	if i.CameraMake != "" || i.CameraModel != "" {
		parts = append(parts, strings.TrimSpace(i.CameraMake+" "+i.CameraModel))
	}
	if i.HasDate {
		parts = append(parts, i.DateTaken.Format("02/01/2006 15:04"))
	}
	return strings.Join(parts, ", ")
}
