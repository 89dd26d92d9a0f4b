package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoAndRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	body, resp, err := DoAndRead(NewClient(5*time.Second), req)
	if err != nil {
		t.Fatalf("DoAndRead failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSetDefaultClientForTesting(t *testing.T) {
	custom := NewClient(time.Second)
	restore := SetDefaultClientForTesting(custom)
	if GetDefaultClient() != custom {
		t.Fatalf("override not applied")
	}
	restore()
	if GetDefaultClient() == custom {
		t.Fatalf("override not restored")
	}
}
