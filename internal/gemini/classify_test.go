package gemini

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestClassifyBlockedResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason:        genai.BlockedReasonSafety,
			BlockReasonMessage: "unsafe content",
		},
	}

	_, err := classifyModifyResponse(resp)

	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("error = %v, want BlockedError", err)
	}
	if blocked.Reason != string(genai.BlockedReasonSafety) {
		t.Errorf("Reason = %q, want %q", blocked.Reason, genai.BlockedReasonSafety)
	}
	if blocked.Message != "unsafe content" {
		t.Errorf("Message = %q, want %q", blocked.Message, "unsafe content")
	}
}

func TestClassifyNilResponse(t *testing.T) {
	if _, err := classifyModifyResponse(nil); !errors.Is(err, ErrNoResponse) {
		t.Errorf("error = %v, want ErrNoResponse", err)
	}
}

func TestClassifyNoCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{}
	if _, err := classifyModifyResponse(resp); !errors.Is(err, ErrNoResponse) {
		t.Errorf("error = %v, want ErrNoResponse", err)
	}
}

func TestClassifyImageWithText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("png-bytes")}},
					{Text: "Sorriso aprimorado."},
				},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}

	outcome, err := classifyModifyResponse(resp)
	if err != nil {
		t.Fatalf("classifyModifyResponse error: %v", err)
	}
	if string(outcome.ImageData) != "png-bytes" {
		t.Errorf("ImageData = %q", outcome.ImageData)
	}
	if outcome.ImageMIMEType != "image/png" {
		t.Errorf("ImageMIMEType = %q", outcome.ImageMIMEType)
	}
	if outcome.Description != "Sorriso aprimorado." {
		t.Errorf("Description = %q, want candidate text", outcome.Description)
	}
}

func TestClassifyImageWithoutTextUsesDefaultDescription(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte("jpg")}},
				},
			},
		}},
	}

	outcome, err := classifyModifyResponse(resp)
	if err != nil {
		t.Fatalf("classifyModifyResponse error: %v", err)
	}
	if outcome.Description != defaultDescription {
		t.Errorf("Description = %q, want default filler", outcome.Description)
	}
}

func TestClassifyStoppedEarly(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "cannot comply"}},
			},
			FinishReason: genai.FinishReasonSafety,
		}},
	}

	_, err := classifyModifyResponse(resp)

	var stopped *StoppedEarlyError
	if !errors.As(err, &stopped) {
		t.Fatalf("error = %v, want StoppedEarlyError", err)
	}
	if stopped.Reason != "SAFETY" {
		t.Errorf("Reason = %q, want SAFETY", stopped.Reason)
	}
}

func TestClassifyTextOnlyWithNormalStop(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "describing instead of editing"}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}

	_, err := classifyModifyResponse(resp)

	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("error = %v, want NoImageError", err)
	}
	if noImage.Text != "describing instead of editing" {
		t.Errorf("Text = %q", noImage.Text)
	}
}

func TestClassifyEmptyCandidateIsNoImage(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}

	_, err := classifyModifyResponse(resp)

	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("error = %v, want NoImageError", err)
	}
	if noImage.Text != "" {
		t.Errorf("Text = %q, want empty", noImage.Text)
	}
}

func TestUserMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"blocked", &BlockedError{Reason: "SAFETY"}, "A solicitação foi bloqueada"},
		{"stopped early", &StoppedEarlyError{Reason: "SAFETY"}, "parou inesperadamente"},
		{"no image with text", &NoImageError{Text: "só texto"}, "só texto"},
		{"no image without text", &NoImageError{}, "filtros de segurança"},
		{"malformed text", &MalformedTextError{Mode: "bio", Err: errors.New("bad json")}, "formato inesperado"},
		{"no response", ErrNoResponse, "Nenhuma resposta válida"},
		{"transport", errors.New("dial tcp: timeout"), "Verifique sua conexão"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err)
			if got == "" {
				t.Fatal("UserMessage returned empty string")
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("UserMessage(%v) = %q, want substring %q", tt.err, got, tt.contains)
			}
		})
	}
}
