package translate

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/AhmedAllulu/auto-article-sub003/internal/apperrors"
	"github.com/AhmedAllulu/auto-article-sub003/internal/completion"
	"github.com/AhmedAllulu/auto-article-sub003/internal/jsonld"
	"github.com/AhmedAllulu/auto-article-sub003/internal/logger"
	"github.com/AhmedAllulu/auto-article-sub003/internal/segment"
)

// translateGranular translates a document segment by segment. Text segments
// and structured-data strings are independent units of work and fan out over
// a bounded worker pool; results are joined back by segment index, never by
// completion order. A failed segment keeps its source text, so this path
// always produces a complete document.
func (s *Session) translateGranular(ctx context.Context, markup string) string {
	segs := segment.Split(markup)

	results := make([]string, len(segs))
	for i, seg := range segs {
		// Prefill so cancellation or failure leaves the original bytes.
		results[i] = seg.Raw
	}

	jobs := make(chan int, len(segs))
	for i := range segs {
		jobs <- i
	}
	close(jobs)

	workers := s.concurrency
	if workers > len(segs) {
		workers = len(segs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				switch segs[i].Kind {
				case segment.Text:
					results[i] = s.translateText(ctx, segs[i].Raw)
				case segment.StructuredData:
					results[i] = jsonld.TranslateBlock(ctx, segs[i].Raw, s.translateCached)
				}
			}
		}()
	}
	wg.Wait()

	logger.Debug("Granular translation finished", "session_id", s.id, "segments", len(segs))
	return strings.Join(results, "")
}

// translateText translates one text run, reapplying the run's original
// leading and trailing whitespace so surrounding markup spacing is unchanged.
func (s *Session) translateText(ctx context.Context, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	lead := raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))]
	trail := raw[len(strings.TrimRightFunc(raw, unicode.IsSpace)):]
	return lead + s.translateCached(ctx, trimmed) + trail
}

// translateCached is the memoized translation unit shared by text segments
// and structured-data strings: skip-classified, cached per normalized form,
// and recovered locally on backend failure by keeping the source text.
// The cache key is the trimmed text, so the same copy reaching this point
// with and without incidental surrounding whitespace is one backend call.
func (s *Session) translateCached(ctx context.Context, text string) string {
	if segment.ShouldSkip(text) {
		return text
	}
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if cached, ok := s.cache[text]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	resp, err := s.client.Complete(ctx, completion.Request{
		System: s.segmentPrompt(),
		Text:   text,
		Model:  s.model,
	})
	if err != nil {
		logger.Error("Segment translation failed, keeping source text",
			"session_id", s.id, "error", apperrors.PublicMessage(err))
		return text
	}

	s.mu.Lock()
	s.usage.Add(resp.Usage)
	s.cache[text] = resp.Text
	s.mu.Unlock()
	return resp.Text
}
