// Package jsonld translates the human-readable fields of an embedded
// structured-data script block while leaving every other byte of the block
// alone. Only a fixed whitelist of keys is ever touched; unparseable payloads
// pass through unchanged.
package jsonld

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/rivo/uniseg"
)

// Translator turns one source string into its translated form. It must never
// fail; implementations fall back to the input on backend errors.
type Translator func(ctx context.Context, text string) string

// translatableKeys are the structured-data fields carrying visible copy.
var translatableKeys = map[string]bool{
	"headline":       true,
	"description":    true,
	"text":           true,
	"name":           true,
	"articleSection": true,
	"keywords":       true,
}

// minGraphemes is the shortest value worth sending to the backend.
const minGraphemes = 3

// TranslateBlock rewrites the JSON payload inside a <script> wrapper,
// translating whitelisted string fields via tr. The wrapper tags are returned
// byte-identical. A payload that fails to parse is returned unchanged; no
// partial repair is attempted.
func TranslateBlock(ctx context.Context, raw string, tr Translator) string {
	open := strings.IndexByte(raw, '>')
	end := lastScriptClose(raw)
	if open < 0 || end <= open {
		return raw
	}
	payload := raw[open+1 : end]

	var root any
	if err := json.Unmarshal([]byte(payload), &root); err != nil {
		return raw
	}

	translated := walk(ctx, root, tr)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(translated); err != nil {
		return raw
	}
	out := strings.TrimSuffix(buf.String(), "\n")

	return raw[:open+1] + out + raw[end:]
}

// lastScriptClose returns the byte offset of the last case-insensitive
// "</script" in raw, or -1. The offset must index raw directly: lowercasing
// the whole string first would shift byte positions, since case mapping can
// change a rune's UTF-8 length.
func lastScriptClose(raw string) int {
	const closeTag = "</script"
	for i := len(raw) - len(closeTag); i >= 0; i-- {
		if strings.EqualFold(raw[i:i+len(closeTag)], closeTag) {
			return i
		}
	}
	return -1
}

func walk(ctx context.Context, node any, tr Translator) any {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if translatableKeys[key] {
				switch c := child.(type) {
				case string:
					if translatable(c) {
						v[key] = tr(ctx, c)
					}
					continue
				case []any:
					// keywords and articleSection commonly hold string lists.
					for i, item := range c {
						if s, ok := item.(string); ok && translatable(s) {
							c[i] = tr(ctx, s)
						} else {
							c[i] = walk(ctx, item, tr)
						}
					}
					continue
				}
			}
			v[key] = walk(ctx, child, tr)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = walk(ctx, item, tr)
		}
		return v
	default:
		return node
	}
}

// translatable filters out URL-like values, @-prefixed type identifiers and
// values too short to carry meaning.
func translatable(s string) bool {
	if strings.HasPrefix(s, "@") {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
		return false
	}
	return uniseg.GraphemeClusterCount(s) >= minGraphemes
}
