// Package translate implements structure-preserving translation of HTML
// fragments. A Session is created per request: it owns a memoization cache
// and running token counters, picks a whole-document or granular strategy
// based on estimated size, and guarantees that markup structure survives
// translation untouched.
package translate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AhmedAllulu/auto-article-sub003/internal/apperrors"
	"github.com/AhmedAllulu/auto-article-sub003/internal/chunker"
	"github.com/AhmedAllulu/auto-article-sub003/internal/completion"
	"github.com/AhmedAllulu/auto-article-sub003/internal/language"
	"github.com/AhmedAllulu/auto-article-sub003/internal/logger"
)

const (
	// singleCallTokenLimit is the estimated-token budget for one
	// whole-document call. Documents estimated at up to twice this limit are
	// split in two; anything larger is translated segment by segment.
	singleCallTokenLimit = 6000

	// MaxChunks bounds the manual chunk-count override.
	MaxChunks = 10

	// DefaultConcurrency is the granular-mode worker count.
	DefaultConcurrency = 4
)

// Session drives one translation request. It is owned by the caller that
// created it; the cache and token counters live exactly as long as the
// session. Internal state is mutex-guarded because granular mode fans out.
type Session struct {
	client      completion.Client
	model       string
	lang        language.Language
	maxChunks   int
	concurrency int
	tokenBudget int
	id          string

	mu    sync.Mutex
	cache map[string]string
	usage completion.Usage
}

// Option configures a Session.
type Option func(*Session)

// WithMaxChunks forces the whole-document strategy with exactly n pieces
// (1 bypasses size thresholds entirely). Zero keeps automatic selection.
func WithMaxChunks(n int) Option {
	return func(s *Session) { s.maxChunks = n }
}

// WithConcurrency sets the granular-mode worker count.
func WithConcurrency(n int) Option {
	return func(s *Session) { s.concurrency = n }
}

// WithModel overrides the backend model for this session.
func WithModel(model string) Option {
	return func(s *Session) { s.model = model }
}

// WithTokenBudget overrides the estimated-token budget for a single
// whole-document call. Backends differ in context size, so this is a
// deployment knob; the default suits the stock models.
func WithTokenBudget(tokens int) Option {
	return func(s *Session) { s.tokenBudget = tokens }
}

// NewSession creates a session bound to a target language.
func NewSession(client completion.Client, lang language.Language, opts ...Option) (*Session, error) {
	if client == nil {
		return nil, fmt.Errorf("completion client is required")
	}
	s := &Session{
		client:      client,
		lang:        lang,
		concurrency: DefaultConcurrency,
		tokenBudget: singleCallTokenLimit,
		id:          uuid.NewString(),
		cache:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxChunks < 0 || s.maxChunks > MaxChunks {
		return nil, fmt.Errorf("maxChunks must be between 0 and %d, got %d", MaxChunks, s.maxChunks)
	}
	if s.concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be greater than 0, got %d", s.concurrency)
	}
	if s.tokenBudget <= 0 {
		return nil, fmt.Errorf("token budget must be greater than 0, got %d", s.tokenBudget)
	}
	return s, nil
}

// Translate returns markup with human-readable text translated into the
// session's target language. Markup structure (tags, attributes, embedded
// script wrappers) is preserved. Whole-document strategies propagate backend
// failures; granular mode never fails and keeps the source text of any
// segment whose call failed.
func (s *Session) Translate(ctx context.Context, markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return markup, nil
	}

	switch {
	case s.maxChunks == 1:
		logger.Debug("Translating in a single call (manual override)", "session_id", s.id)
		return s.translateWhole(ctx, markup)
	case s.maxChunks > 1:
		logger.Debug("Translating in fixed chunks (manual override)", "session_id", s.id, "chunks", s.maxChunks)
		return s.translatePieces(ctx, chunker.Split(markup, s.maxChunks))
	}

	est := chunker.EstimateTokens(markup)
	switch {
	case est <= s.tokenBudget:
		logger.Debug("Translating in a single call", "session_id", s.id, "estimated_tokens", est)
		return s.translateWhole(ctx, markup)
	case est <= 2*s.tokenBudget:
		logger.Debug("Translating in two parts", "session_id", s.id, "estimated_tokens", est)
		return s.translatePieces(ctx, chunker.Split(markup, 2))
	default:
		logger.Debug("Translating segment by segment", "session_id", s.id, "estimated_tokens", est)
		return s.translateGranular(ctx, markup), nil
	}
}

// Usage returns the cumulative token totals of every backend call issued so
// far. Counters never reset; a fresh count needs a fresh session.
func (s *Session) Usage() completion.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

func (s *Session) translatePieces(ctx context.Context, pieces []string) (string, error) {
	var b strings.Builder
	for i, piece := range pieces {
		translated, err := s.translateWhole(ctx, piece)
		if err != nil {
			return "", fmt.Errorf("piece %d/%d: %w", i+1, len(pieces), err)
		}
		b.WriteString(translated)
	}
	return b.String(), nil
}

// translateWhole issues one whole-document call with retries. Failures here
// are fatal for the request; there is no automatic downgrade to granular
// mode, the caller decides whether to retry differently.
func (s *Session) translateWhole(ctx context.Context, piece string) (string, error) {
	const maxAttempts = 3

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var resp *completion.Response
		resp, err = s.client.Complete(ctx, completion.Request{
			System: s.documentPrompt(),
			Text:   piece,
			Model:  s.model,
		})
		if err == nil {
			s.addUsage(resp.Usage)
			return resp.Text, nil
		}

		retry, backoff := retryDecision(err, attempt, maxAttempts)
		if !retry {
			break
		}
		logger.Warn("Whole-document call failed, retrying",
			"session_id", s.id, "attempt", attempt, "error", apperrors.PublicMessage(err))
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}
	return "", fmt.Errorf("whole-document translation failed: %w", err)
}

func (s *Session) addUsage(u completion.Usage) {
	s.mu.Lock()
	s.usage.Add(u)
	s.mu.Unlock()
}

func (s *Session) documentPrompt() string {
	return fmt.Sprintf(`You are a professional translator for web articles.
Translate the human-readable text of the provided HTML fragment into %s.

Rules:
- Keep every HTML tag, attribute and embedded script payload exactly as-is.
- Translate completely; do not leave any source-language words behind.
- Preserve inline formatting markers inside the text.
- Respond ONLY with the translated HTML fragment.`, s.lang.Name)
}

func (s *Session) segmentPrompt() string {
	return fmt.Sprintf(`Translate the following text into %s.
Translate completely and preserve inline formatting markers; do not leave any source-language words behind.
Respond ONLY with the translation.`, s.lang.Name)
}

func retryDecision(err error, attempt, maxAttempts int) (bool, time.Duration) {
	if err == nil {
		return false, 0
	}
	if attempt >= maxAttempts {
		return false, 0
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, 0
	}
	if !apperrors.IsRetryable(err) {
		return false, 0
	}
	base := 1 * time.Second
	maxBackoff := 20 * time.Second
	jitterMax := 1 * time.Second

	backoff := base << (attempt - 1)
	if apperrors.IsRateLimit(err) {
		backoff = backoff * 2
	}
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	jitter := time.Duration(rand.Int63n(int64(jitterMax)))
	return true, backoff + jitter
}
