package chunker

import (
	"strings"
	"testing"
)

func TestSplit_Reconstruction(t *testing.T) {
	doc := strings.Repeat("<p>Some article text with a <a href=\"https://example.com\">link</a> inside.</p>", 40)
	for n := 1; n <= 10; n++ {
		pieces := Split(doc, n)
		if got := strings.Join(pieces, ""); got != doc {
			t.Fatalf("n=%d: joined pieces differ from input (len %d vs %d)", n, len(got), len(doc))
		}
	}
}

func TestSplit_TagBoundarySafe(t *testing.T) {
	doc := strings.Repeat("<p>word</p>", 100)
	pieces := Split(doc, 4)
	if len(pieces) < 2 {
		t.Fatalf("expected multiple pieces, got %d", len(pieces))
	}
	for i, p := range pieces {
		if p == "" {
			t.Fatalf("piece %d is empty", i)
		}
		if strings.Count(p, "<") != strings.Count(p, ">") {
			t.Errorf("piece %d is cut mid-tag: %q", i, p)
		}
	}
}

func TestSplit_TwoPartCutsAfterMidpoint(t *testing.T) {
	doc := "<p>aaaa</p><p>bbbb</p>"
	pieces := Split(doc, 2)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	if len(pieces[0]) < len(doc)/2 {
		t.Fatalf("first piece ends before the midpoint: %q", pieces[0])
	}
	if !strings.HasSuffix(pieces[0], ">") {
		t.Fatalf("first piece does not end at a tag boundary: %q", pieces[0])
	}
}

func TestSplit_NoBoundaryFallsBackToRawOffset(t *testing.T) {
	doc := "abcdefghij" // no tags at all
	pieces := Split(doc, 2)
	if got := strings.Join(pieces, ""); got != doc {
		t.Fatalf("joined pieces %q != doc %q", got, doc)
	}
	if len(pieces) != 2 {
		t.Fatalf("expected raw midpoint cut into 2 pieces, got %d", len(pieces))
	}
}

func TestSplit_TrailingBoundaryKeepsPieceCount(t *testing.T) {
	// The only '>' is the document's last byte; snapping to it would leave an
	// empty final piece, so the cut falls back to the raw offset.
	doc := "aaaaaaaaab>"
	pieces := Split(doc, 2)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d: %#v", len(pieces), pieces)
	}
	if got := strings.Join(pieces, ""); got != doc {
		t.Fatalf("joined pieces %q != doc %q", got, doc)
	}
	if pieces[1] == "" {
		t.Fatal("final piece must not be empty")
	}
}

func TestSplit_Degenerate(t *testing.T) {
	if pieces := Split("", 5); len(pieces) != 1 || pieces[0] != "" {
		t.Fatalf("empty doc: %#v", pieces)
	}
	if pieces := Split("<p>x</p>", 1); len(pieces) != 1 {
		t.Fatalf("n=1 must return one piece, got %d", len(pieces))
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Fatalf("EstimateTokens(\"\") = %d", got)
	}
	if got := EstimateTokens("abcd"); got != 1 {
		t.Fatalf("EstimateTokens(4 chars) = %d, want 1", got)
	}
	if got := EstimateTokens("abcde"); got != 2 {
		t.Fatalf("EstimateTokens(5 chars) = %d, want 2", got)
	}
}
