// Package chunker sizes documents against the completion backend's context
// budget and splits markup into tag-boundary-safe pieces.
package chunker

import "strings"

// charsPerToken is the character-to-token ratio used for sizing. It is an
// approximation, not a tokenizer; real counts vary by model and language.
const charsPerToken = 4

// EstimateTokens approximates the backend token cost of s.
func EstimateTokens(s string) int {
	if len(s) == 0 {
		return 0
	}
	return (len(s) + charsPerToken - 1) / charsPerToken
}

// Split divides doc into n contiguous pieces whose concatenation equals doc
// exactly. Cut points are found by scanning forward from evenly spaced
// offsets to the next '>' so no piece starts or ends inside a tag. When no
// '>' remains before the end of the document, the raw offset is used as a
// last resort rather than failing.
func Split(doc string, n int) []string {
	if n <= 1 || len(doc) == 0 {
		return []string{doc}
	}
	if n > len(doc) {
		n = len(doc)
	}

	pieces := make([]string, 0, n)
	start := 0
	for i := 1; i < n; i++ {
		ideal := len(doc) * i / n
		if ideal <= start {
			continue
		}
		// A boundary at or past the document's end would swallow the final
		// piece; keep the raw offset so the piece count holds.
		cut := ideal
		if rel := strings.IndexByte(doc[ideal:], '>'); rel >= 0 && ideal+rel+1 < len(doc) {
			cut = ideal + rel + 1
		}
		pieces = append(pieces, doc[start:cut])
		start = cut
	}
	pieces = append(pieces, doc[start:])
	return pieces
}
