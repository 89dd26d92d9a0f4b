package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AhmedAllulu/auto-article-sub003/internal/apperrors"
	"github.com/AhmedAllulu/auto-article-sub003/internal/completion"
	"github.com/AhmedAllulu/auto-article-sub003/internal/httpclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	restore := httpclient.SetDefaultClientForTesting(httpclient.NewClient(5 * time.Second))
	t.Cleanup(restore)
	c := NewClient("test-key", "gpt-4o-mini")
	c.baseURL = srv.URL
	return c
}

func TestComplete_Success(t *testing.T) {
	var gotReq requestData
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(responseData{
			ID:      "resp-1",
			Choices: []choice{{Message: message{Role: "assistant", Content: "Hallo Welt"}}},
			Usage:   usage{PromptTokens: 12, CompletionTokens: 4, TotalTokens: 16},
		})
	})

	resp, err := c.Complete(context.Background(), completion.Request{
		System: "translate into German",
		Text:   "Hello world",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Text != "Hallo Welt" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Usage.PromptTokens != 12 || resp.Usage.CompletionTokens != 4 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestComplete_RateLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit_error"}}`))
	})

	_, err := c.Complete(context.Background(), completion.Request{Text: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindRateLimit {
		t.Fatalf("kind = %q, want rate_limit", kind)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(responseData{ID: "resp-2"})
	})

	_, err := c.Complete(context.Background(), completion.Request{Text: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("kind = %q, want validation", kind)
	}
}

func TestClassifyError_ServerError(t *testing.T) {
	err := classifyError(http.StatusBadGateway, "502 Bad Gateway", errorDetails{})
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindTransient {
		t.Fatalf("kind = %q, want transient", kind)
	}
}
