// Package gemini implements the completion backend on top of the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/AhmedAllulu/auto-article-sub003/internal/apperrors"
	"github.com/AhmedAllulu/auto-article-sub003/internal/completion"
	"github.com/AhmedAllulu/auto-article-sub003/internal/httpclient"
)

// Client handles communication with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a new Gemini-backed completion client.
// Note: option.WithHTTPClient interferes with the genai library's internal
// header injection for API keys, so timeouts are enforced via context in
// Complete instead.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{client: client, model: model}, nil
}

// Close closes the underlying genai client.
func (c *Client) Close() error {
	return c.client.Close()
}

var _ completion.Client = (*Client)(nil)

// Complete sends one completion request and returns the generated text plus
// the token usage Gemini reports.
func (c *Client) Complete(ctx context.Context, req completion.Request) (*completion.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, httpclient.DefaultTimeout)
	defer cancel()

	name := req.Model
	if name == "" {
		name = c.model
	}
	model := c.client.GenerativeModel(name)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Text))
	if err != nil {
		return nil, classifyError(err)
	}

	text, err := extractResponseText(resp)
	if err != nil {
		return nil, apperrors.Validation(err)
	}

	out := &completion.Response{Text: text}
	if resp.UsageMetadata != nil {
		out.Usage = completion.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	return out, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response received from Gemini")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var combined string
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				combined += string(text)
			}
		}
		if combined != "" {
			return combined, nil
		}
	}
	return "", fmt.Errorf("Gemini response contained no text parts")
}
