// Package config loads runtime configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries the non-secret settings of the CLIs. The API key is
// deliberately not here; internal/auth owns credential resolution.
type Config struct {
	// LogLevel mirrors GLOWUP_LOG_LEVEL: debug, info, warn, error.
	LogLevel string
	// ImageModel overrides the image generation model when set.
	ImageModel string
	// TextModel overrides the text generation model when set.
	TextModel string
	// OutputDir is where saved results and exported reports land.
	OutputDir string
}

// Load reads .env if present, then resolves settings from the
// environment. A missing .env is not an error.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded configuration from .env")
	}

	return Config{
		LogLevel:   os.Getenv("GLOWUP_LOG_LEVEL"),
		ImageModel: os.Getenv("GEMINI_IMAGE_MODEL"),
		TextModel:  os.Getenv("GEMINI_MODEL"),
		OutputDir:  envOrDefault("GLOWUP_OUTPUT_DIR", "glowup-output"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
