// Package segment parses a markup string into an ordered list of segments:
// text runs, tags, and embedded structured-data blocks. Non-text segments keep
// their exact input bytes so that re-joining all segments reproduces the
// original document.
package segment

import (
	"strings"

	"golang.org/x/net/html"
)

type Kind int

const (
	Text Kind = iota
	Tag
	StructuredData
)

// Segment is one ordered unit of a parsed document.
type Segment struct {
	Index int
	Kind  Kind
	Raw   string
}

// Split tokenizes markup and returns its segments in document order.
//
// A <script> element (start tag, payload, end tag) is collapsed into a single
// StructuredData segment so its JSON payload can be handled as one unit.
// <style> payloads are emitted as Tag segments since CSS is never
// human-readable text. Text runs are deliberately kept whole rather than split
// into sentences; a full paragraph gives the backend the context it needs.
//
// Joining the Raw fields of the result equals markup byte-for-byte.
func Split(markup string) []Segment {
	z := html.NewTokenizer(strings.NewReader(markup))

	var segs []Segment
	add := func(kind Kind, raw string) {
		if raw == "" {
			return
		}
		// Merge adjacent text runs so each run between tags is one segment.
		if kind == Text && len(segs) > 0 && segs[len(segs)-1].Kind == Text {
			segs[len(segs)-1].Raw += raw
			return
		}
		segs = append(segs, Segment{Index: len(segs), Kind: kind, Raw: raw})
	}

	var script strings.Builder
	inScript := false
	inStyle := false

	for {
		tt := z.Next()
		// Raw must be copied before TagName is consulted.
		raw := string(z.Raw())

		if tt == html.ErrorToken {
			// EOF, or input that ends mid-token. Leftover bytes pass through
			// verbatim so reconstruction stays exact.
			if inScript {
				script.WriteString(raw)
				add(StructuredData, script.String())
			} else {
				add(Tag, raw)
			}
			return segs
		}

		if inScript {
			script.WriteString(raw)
			if tt == html.EndTagToken {
				if name, _ := z.TagName(); string(name) == "script" {
					add(StructuredData, script.String())
					script.Reset()
					inScript = false
				}
			}
			continue
		}

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				inScript = true
				script.WriteString(raw)
			case "style":
				inStyle = true
				add(Tag, raw)
			default:
				add(Tag, raw)
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "style" {
				inStyle = false
			}
			add(Tag, raw)
		case html.TextToken:
			if inStyle {
				add(Tag, raw)
			} else {
				add(Text, raw)
			}
		default:
			// Self-closing tags, comments, doctypes.
			add(Tag, raw)
		}
	}
}

// Join concatenates segments in order.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Raw)
	}
	return b.String()
}
