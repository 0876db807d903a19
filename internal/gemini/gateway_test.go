package gemini

import "testing"

func TestNewGatewayUsesConfiguredModels(t *testing.T) {
	g := NewGateway(nil, "image-model-x", "text-model-y")

	if got := g.ImageModel(); got != "image-model-x" {
		t.Errorf("ImageModel() = %q, want %q", got, "image-model-x")
	}
	if got := g.TextModel(); got != "text-model-y" {
		t.Errorf("TextModel() = %q, want %q", got, "text-model-y")
	}
}

func TestNewGatewayFallsBackToDefaults(t *testing.T) {
	g := NewGateway(nil, "", "")

	if got := g.ImageModel(); got != DefaultImageModel {
		t.Errorf("ImageModel() = %q, want %q", got, DefaultImageModel)
	}
	if got := g.TextModel(); got != DefaultTextModel {
		t.Errorf("TextModel() = %q, want %q", got, DefaultTextModel)
	}
}
