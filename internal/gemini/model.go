package gemini

// Gemini model IDs.
//
// The transformation flow needs a model with image output; the bonus text
// features use the cheaper text model.
const (
	// DefaultImageModel supports image editing with inline image output.
	DefaultImageModel = "gemini-2.5-flash-image-preview"

	// DefaultTextModel handles the JSON-shaped bonus text generations.
	DefaultTextModel = "gemini-2.5-flash"
)

// ImageModelName resolves the image-editing model: the configured name if
// set, otherwise the default. Configuration owns the environment lookup.
func ImageModelName(configured string) string {
	if configured != "" {
		return configured
	}
	return DefaultImageModel
}

// TextModelName resolves the text-generation model: the configured name
// if set, otherwise the default.
func TextModelName(configured string) string {
	if configured != "" {
		return configured
	}
	return DefaultTextModel
}
