// Package completion defines the contract consumed by the translation
// pipeline: a backend that accepts a system instruction plus user text and
// returns the completion text together with a token-usage record.
package completion

import "context"

// Request carries one completion call.
type Request struct {
	// System is the instruction describing the task (target language, rules).
	System string
	// Text is the user payload to be translated.
	Text string
	// Model optionally overrides the client's configured model.
	Model string
}

// Usage holds the token counts reported by the backend for a single call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Add accumulates another call's usage into the receiver.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
}

// Response is the backend's answer for a single Request.
type Response struct {
	Text  string
	Usage Usage
}

// Client is implemented by every completion backend.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
