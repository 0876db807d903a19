package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GLOWUP_LOG_LEVEL", "")
	t.Setenv("GLOWUP_OUTPUT_DIR", "")
	t.Setenv("GEMINI_IMAGE_MODEL", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()
	if cfg.OutputDir != "glowup-output" {
		t.Errorf("OutputDir = %q, want glowup-output", cfg.OutputDir)
	}
	if cfg.ImageModel != "" || cfg.TextModel != "" {
		t.Errorf("model overrides = %q/%q, want empty", cfg.ImageModel, cfg.TextModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GLOWUP_LOG_LEVEL", "debug")
	t.Setenv("GLOWUP_OUTPUT_DIR", "/tmp/resultados")
	t.Setenv("GEMINI_IMAGE_MODEL", "custom-image-model")

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.OutputDir != "/tmp/resultados" {
		t.Errorf("OutputDir = %q, want /tmp/resultados", cfg.OutputDir)
	}
	if cfg.ImageModel != "custom-image-model" {
		t.Errorf("ImageModel = %q", cfg.ImageModel)
	}
}
