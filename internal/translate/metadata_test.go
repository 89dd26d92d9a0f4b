package translate

import (
	"context"
	"strings"
	"testing"
)

func TestTranslateMetadata_PatchesKnownLocations(t *testing.T) {
	doc := `<head><meta name="description" content="A short summary."></head>` +
		`<body><h1 class="post-title">Original Title</h1>` +
		`<script type="application/ld+json">{"@type":"Article","headline":"Original Title"}</script>` +
		`<p>Original Title appears in prose too.</p></body>`

	s := granularSession(t, upperStub())
	out, err := s.TranslateMetadata(context.Background(), doc, "Original Title", "A short summary.")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, `<h1 class="post-title">ORIGINAL TITLE</h1>`) {
		t.Errorf("heading not patched: %q", out)
	}
	if !strings.Contains(out, `content="A SHORT SUMMARY."`) {
		t.Errorf("meta description not patched: %q", out)
	}
	if !strings.Contains(out, `"headline":"ORIGINAL TITLE"`) {
		t.Errorf("JSON-LD headline not patched: %q", out)
	}
	// Occurrences outside the known locations are deliberately left alone.
	if !strings.Contains(out, "Original Title appears in prose too.") {
		t.Errorf("prose occurrence must not be patched: %q", out)
	}
}

func TestTranslateMetadata_AbsentInputsAreNoOps(t *testing.T) {
	stub := upperStub()
	s := granularSession(t, stub)
	doc := `<h1>Keep Me</h1>`
	out, err := s.TranslateMetadata(context.Background(), doc, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if out != doc {
		t.Fatalf("no-op patch changed the document: %q", out)
	}
	if stub.CallCount() != 0 {
		t.Fatalf("no inputs must mean no backend calls, got %d", stub.CallCount())
	}
}

func TestTranslateMetadata_UnmatchedLocationsLeftAlone(t *testing.T) {
	s := granularSession(t, upperStub())
	doc := `<h1>A Different Heading</h1>`
	out, err := s.TranslateMetadata(context.Background(), doc, "Missing Title", "")
	if err != nil {
		t.Fatal(err)
	}
	if out != doc {
		t.Fatalf("unmatched title must leave the document unchanged: %q", out)
	}
}

func TestTranslateMetadata_SharesSegmentCache(t *testing.T) {
	stub := upperStub()
	s := granularSession(t, stub)

	// Translate the body first; the heading text lands in the session cache.
	if _, err := s.Translate(context.Background(), "<h1>Shared Heading</h1>"); err != nil {
		t.Fatal(err)
	}
	calls := stub.CallCount()

	doc := `<h1>Shared Heading</h1>`
	if _, err := s.TranslateMetadata(context.Background(), doc, "Shared Heading", ""); err != nil {
		t.Fatal(err)
	}
	if stub.CallCount() != calls {
		t.Fatalf("metadata pass must reuse the cached translation, got %d extra calls", stub.CallCount()-calls)
	}
}
