package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// defaultDescription is paired with a returned image when the model sent
// no accompanying text.
const defaultDescription = "A simulação foi concluída com sucesso."

// modifyOutcome is the normalized result of an image modification reply.
type modifyOutcome struct {
	ImageData     []byte
	ImageMIMEType string
	Description   string
}

// classifyModifyResponse applies the normalization policy to a raw
// generate-content response, in order:
//
//  1. prompt feedback with a block reason → BlockedError
//  2. no candidate at all → ErrNoResponse
//  3. candidate with an image part → success, paired with the candidate's
//     text or the default description
//  4. no image and a non-normal stop reason → StoppedEarlyError
//  5. otherwise → NoImageError carrying any textual explanation
//
// It is a pure function over the response so the policy is testable with
// fabricated responses.
func classifyModifyResponse(resp *genai.GenerateContentResponse) (*modifyOutcome, error) {
	if resp == nil {
		return nil, ErrNoResponse
	}

	if fb := resp.PromptFeedback; fb != nil &&
		fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return nil, &BlockedError{
			Reason:  string(fb.BlockReason),
			Message: fb.BlockReasonMessage,
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, ErrNoResponse
	}
	candidate := resp.Candidates[0]

	var text strings.Builder
	var imageData []byte
	var imageMIME string

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && imageData == nil {
				imageData = part.InlineData.Data
				imageMIME = part.InlineData.MIMEType
			}
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
	}

	if imageData != nil {
		description := strings.TrimSpace(text.String())
		if description == "" {
			description = defaultDescription
		}
		return &modifyOutcome{
			ImageData:     imageData,
			ImageMIMEType: imageMIME,
			Description:   description,
		}, nil
	}

	if fr := candidate.FinishReason; fr != "" &&
		fr != genai.FinishReasonStop && fr != genai.FinishReasonUnspecified {
		return nil, &StoppedEarlyError{Reason: string(fr)}
	}

	return nil, &NoImageError{Text: strings.TrimSpace(text.String())}
}
