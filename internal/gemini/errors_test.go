package gemini

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"

	"github.com/AhmedAllulu/auto-article-sub003/internal/apperrors"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		code int
		want apperrors.Kind
	}{
		{"bad request", 400, apperrors.KindBadRequest},
		{"model missing", 404, apperrors.KindBadRequest},
		{"unauthorized", 401, apperrors.KindAuth},
		{"forbidden", 403, apperrors.KindAuth},
		{"rate limited", 429, apperrors.KindRateLimit},
		{"server error", 500, apperrors.KindTransient},
		{"gateway timeout", 504, apperrors.KindTransient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyError(&googleapi.Error{Code: tc.code})
			kind, ok := apperrors.KindOf(err)
			if !ok || kind != tc.want {
				t.Fatalf("code %d classified as (%q, %v), want %q", tc.code, kind, ok, tc.want)
			}
		})
	}
}

func TestClassifyError_NetworkIsTransient(t *testing.T) {
	err := classifyError(errors.New("dial tcp: connection refused"))
	kind, ok := apperrors.KindOf(err)
	if !ok || kind != apperrors.KindTransient {
		t.Fatalf("network error classified as (%q, %v), want transient", kind, ok)
	}
	if !apperrors.IsRetryable(err) {
		t.Fatal("network errors must be retryable")
	}
}

func TestClassifyError_Nil(t *testing.T) {
	if classifyError(nil) != nil {
		t.Fatal("nil must classify to nil")
	}
}
