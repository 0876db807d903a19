// Package gemini is the boundary to the generative service. It translates
// internal modification and text requests into Gemini API calls and
// normalizes every reply into either a typed result or a classified error.
//
// Calls are single-shot: no retry, no built-in timeout beyond the caller's
// context. Retry policy, if any, belongs to callers.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/mbarros/glowup-cli/internal/jsonutil"
	"github.com/mbarros/glowup-cli/internal/lineage"
	"github.com/mbarros/glowup-cli/internal/prompt"
)

// NewClient creates a Gemini API client for the given key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// Gateway performs image modification and bonus text generation against
// the Gemini API.
type Gateway struct {
	client     *genai.Client
	imageModel string
	textModel  string
}

// NewGateway wraps a client with the model names to use. Empty names fall
// back to the defaults.
func NewGateway(client *genai.Client, imageModel, textModel string) *Gateway {
	return &Gateway{
		client:     client,
		imageModel: ImageModelName(imageModel),
		textModel:  TextModelName(textModel),
	}
}

// ImageModel returns the model used for image modifications.
func (g *Gateway) ImageModel() string {
	return g.imageModel
}

// TextModel returns the model used for bonus text generation.
func (g *Gateway) TextModel() string {
	return g.textModel
}

// ModifyResult is a successful image modification: the new image paired
// with the model's description of what it did.
type ModifyResult struct {
	Image       *lineage.Asset
	Description string
}

// ModifyImage sends the image and a validated modification request to the
// image model and returns the transformed image.
func (g *Gateway) ModifyImage(ctx context.Context, img *lineage.Asset, req prompt.Request) (*ModifyResult, error) {
	instruction := prompt.BuildInstruction(req)
	filename := fmt.Sprintf("%s-%d", strings.ToLower(req.Modification().String()), time.Now().UnixMilli())
	return g.modify(ctx, img, instruction, req.Context(), filename)
}

// Simulate sends the image with a caller-supplied simulation prompt, used
// by the procedure catalog. The shared base directive still applies.
func (g *Gateway) Simulate(ctx context.Context, img *lineage.Asset, simulationPrompt, label string) (*ModifyResult, error) {
	instruction := prompt.BuildRawInstruction(simulationPrompt)
	filename := fmt.Sprintf("simulation-%d", time.Now().UnixMilli())
	return g.modify(ctx, img, instruction, label, filename)
}

func (g *Gateway) modify(ctx context.Context, img *lineage.Asset, instruction, label, filename string) (*ModifyResult, error) {
	start := time.Now()
	log.Info().
		Str("model", g.imageModel).
		Str("request", label).
		Int("image_bytes", len(img.Data)).
		Str("image_mime", img.MIMEType).
		Msg("Sending image modification to Gemini")

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}},
			{Text: instruction},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel, contents, config)
	if err != nil {
		log.Error().Err(err).Str("request", label).Msg("Image modification call failed")
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	outcome, err := classifyModifyResponse(resp)
	if err != nil {
		log.Error().Err(err).Str("request", label).Msg("Image modification rejected")
		return nil, err
	}

	result := &ModifyResult{
		Image:       lineage.NewAsset(outcome.ImageData, outcome.ImageMIMEType, filename+extForMIME(outcome.ImageMIMEType)),
		Description: outcome.Description,
	}

	log.Info().
		Str("request", label).
		Int("output_bytes", len(result.Image.Data)).
		Str("output_mime", result.Image.MIMEType).
		Dur("duration", time.Since(start)).
		Msg("Image modification complete")

	return result, nil
}

// --- Bonus text generation ---

// VibeResult is the match-potential analysis: a 0..10 score plus a short
// summary.
type VibeResult struct {
	Score int    `json:"score"`
	Vibe  string `json:"vibe"`
}

type bioReply struct {
	Bio string `json:"bio"`
}

type icebreakersReply struct {
	Icebreakers []string `json:"icebreakers"`
}

// GenerateBio asks the text model for a short dating-profile bio based on
// the image.
func (g *Gateway) GenerateBio(ctx context.Context, img *lineage.Asset) (string, error) {
	raw, err := g.generateText(ctx, img, prompt.TextBio, "")
	if err != nil {
		return "", err
	}

	reply, err := jsonutil.ParseJSON[bioReply](raw)
	if err != nil {
		return "", &MalformedTextError{Mode: prompt.TextBio.String(), Err: err}
	}
	if strings.TrimSpace(reply.Bio) == "" {
		return "", &MalformedTextError{Mode: prompt.TextBio.String(), Err: fmt.Errorf("empty bio field")}
	}
	return reply.Bio, nil
}

// GenerateVibe asks for the match-potential score and summary, judged
// against the image and the previously generated bio.
func (g *Gateway) GenerateVibe(ctx context.Context, img *lineage.Asset, bio string) (*VibeResult, error) {
	raw, err := g.generateText(ctx, img, prompt.TextVibe, bio)
	if err != nil {
		return nil, err
	}

	reply, err := jsonutil.ParseJSON[VibeResult](raw)
	if err != nil {
		return nil, &MalformedTextError{Mode: prompt.TextVibe.String(), Err: err}
	}
	if reply.Score < 0 || reply.Score > 10 {
		return nil, &MalformedTextError{Mode: prompt.TextVibe.String(), Err: fmt.Errorf("score %d outside 0..10", reply.Score)}
	}
	if strings.TrimSpace(reply.Vibe) == "" {
		return nil, &MalformedTextError{Mode: prompt.TextVibe.String(), Err: fmt.Errorf("empty vibe field")}
	}
	return &reply, nil
}

// GenerateIcebreakers asks for three conversation openers, judged against
// the image and the previously generated bio.
func (g *Gateway) GenerateIcebreakers(ctx context.Context, img *lineage.Asset, bio string) ([]string, error) {
	raw, err := g.generateText(ctx, img, prompt.TextIcebreakers, bio)
	if err != nil {
		return nil, err
	}

	reply, err := jsonutil.ParseJSON[icebreakersReply](raw)
	if err != nil {
		return nil, &MalformedTextError{Mode: prompt.TextIcebreakers.String(), Err: err}
	}
	if len(reply.Icebreakers) == 0 {
		return nil, &MalformedTextError{Mode: prompt.TextIcebreakers.String(), Err: fmt.Errorf("empty icebreakers list")}
	}
	return reply.Icebreakers, nil
}

func (g *Gateway) generateText(ctx context.Context, img *lineage.Asset, mode prompt.TextMode, bio string) (string, error) {
	start := time.Now()
	log.Info().
		Str("model", g.textModel).
		Str("mode", mode.String()).
		Int("image_bytes", len(img.Data)).
		Msg("Sending text generation to Gemini")

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}},
			{Text: prompt.BuildTextPrompt(mode, bio)},
		},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, contents, nil)
	if err != nil {
		log.Error().Err(err).Str("mode", mode.String()).Msg("Text generation call failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoResponse
	}

	raw := resp.Text()
	log.Debug().
		Str("mode", mode.String()).
		Int("response_length", len(raw)).
		Dur("duration", time.Since(start)).
		Msg("Text generation response received")

	return raw, nil
}

// extForMIME mirrors lineage's extension mapping for synthetic filenames.
func extForMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
