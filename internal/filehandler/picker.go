package filehandler

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrPickerCanceled reports that the user closed the file dialog
// without choosing anything.
var ErrPickerCanceled = errors.New("file selection canceled")

// PickImage opens the native file dialog filtered to supported image
// types and returns the chosen path.
func PickImage() (string, error) {
	selected, err := zenity.SelectFile(
		zenity.Title("Escolha uma foto"),
		zenity.FileFilters{
			{
				Name: "Imagens",
				Patterns: []string{
					"*.jpg", "*.jpeg", "*.png", "*.gif", "*.webp",
					"*.heic", "*.heif",
				},
			},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrPickerCanceled
		}
		return "", err
	}
	return selected, nil
}
