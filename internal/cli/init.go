package cli

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mbarros/glowup-cli/internal/auth"
	"github.com/mbarros/glowup-cli/internal/config"
	"github.com/mbarros/glowup-cli/internal/gemini"
)

// InitGateway creates and validates the Gemini gateway with the configured
// model names. Returns the context and gateway ready for use, or exits
// fatally on failure.
func InitGateway(cfg config.Config) (context.Context, *gemini.Gateway) {
	apiKey, err := auth.GetAPIKey()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to retrieve API key")
	}

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Gemini client")
	}

	log.Info().Msg("connection successful - Gemini client initialized")

	gw := gemini.NewGateway(client, cfg.ImageModel, cfg.TextModel)

	if err := auth.ValidateAPIKey(ctx, client, gw.TextModel()); err != nil {
		HandleValidationError(err)
	}

	log.Info().Msg("API key validation complete - ready for operations")

	return ctx, gw
}
