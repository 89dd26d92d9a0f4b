package completion

import (
	"context"
	"sync"
)

// Mock is a canned Client for tests.
type Mock struct {
	// Respond produces the response for a request. When nil, Response/Err
	// are returned as-is.
	Respond  func(req Request) (*Response, error)
	Response *Response
	Err      error

	mu    sync.Mutex
	calls []Request
}

func (m *Mock) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.Respond != nil {
		return m.Respond(req)
	}
	return m.Response, m.Err
}

// Calls returns a copy of the recorded requests.
func (m *Mock) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many requests have been issued.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

var _ Client = (*Mock)(nil)
