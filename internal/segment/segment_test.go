package segment

import (
	"strings"
	"testing"
)

func TestSplit_Reconstruction(t *testing.T) {
	docs := []string{
		"",
		"plain text, no tags at all",
		"<p>Hello <strong>world</strong></p>",
		`<h1 class="title">Heading</h1><p>Body &amp; more</p>`,
		`<article><h2>A</h2><script type="application/ld+json">{"@type":"Article"}</script><p>B</p></article>`,
		"<!-- comment --><br/><img src=\"x.png\" alt=\"y\">",
		"<style>p { color: red; }</style><p>after</p>",
		"<p>broken <em",
	}
	for _, doc := range docs {
		segs := Split(doc)
		if got := Join(segs); got != doc {
			t.Errorf("Join(Split(doc)) != doc\n doc: %q\n got: %q", doc, got)
		}
	}
}

func TestSplit_ScriptIsOneSegment(t *testing.T) {
	doc := `<p>before</p><script type="application/ld+json">{"headline":"X"}</script><p>after</p>`
	segs := Split(doc)

	var sd []Segment
	for _, s := range segs {
		if s.Kind == StructuredData {
			sd = append(sd, s)
		}
	}
	if len(sd) != 1 {
		t.Fatalf("expected 1 structured-data segment, got %d", len(sd))
	}
	want := `<script type="application/ld+json">{"headline":"X"}</script>`
	if sd[0].Raw != want {
		t.Fatalf("structured-data segment = %q, want %q", sd[0].Raw, want)
	}
}

func TestSplit_TextRunsStayWhole(t *testing.T) {
	doc := "<p>First sentence. Second sentence! A third one?</p>"
	segs := Split(doc)

	var texts []Segment
	for _, s := range segs {
		if s.Kind == Text {
			texts = append(texts, s)
		}
	}
	if len(texts) != 1 {
		t.Fatalf("expected a single text segment, got %d", len(texts))
	}
	if !strings.Contains(texts[0].Raw, "Second sentence") {
		t.Fatalf("text segment lost content: %q", texts[0].Raw)
	}
}

func TestSplit_StyleContentIsNotText(t *testing.T) {
	doc := "<style>h1 { font-size: 2em; }</style>"
	for _, s := range Split(doc) {
		if s.Kind == Text {
			t.Fatalf("style payload leaked as text segment: %q", s.Raw)
		}
	}
}

func TestSplit_IndexOrder(t *testing.T) {
	segs := Split("<p>a</p><p>b</p>")
	for i, s := range segs {
		if s.Index != i {
			t.Fatalf("segment %d carries index %d", i, s.Index)
		}
	}
}
