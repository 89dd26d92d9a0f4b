package translate

import (
	"context"
	"regexp"
	"strings"
)

// metadataPatch carries one field through the patch pass as an explicit
// original/translated pair with its own locator, instead of a document-wide
// search-and-replace. Each locator anchors the original value to the context
// it may legitimately appear in.
type metadataPatch struct {
	field    string
	original string
	locators []*regexp.Regexp
}

// TranslateMetadata is a best-effort pass over an already-assembled document:
// it translates the original title and meta description and substitutes them
// at their known locations (the top-level heading, the description meta tag,
// and any JSON-LD headline equal to the exact title). Absent inputs are
// no-ops; unmatched locations are left alone.
func (s *Session) TranslateMetadata(ctx context.Context, markup, title, description string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" && description == "" {
		return markup, nil
	}

	var patches []metadataPatch
	if title != "" {
		quoted := regexp.QuoteMeta(title)
		patches = append(patches, metadataPatch{
			field:    "title",
			original: title,
			locators: []*regexp.Regexp{
				regexp.MustCompile(`(<h1[^>]*>\s*)` + quoted + `(\s*</h1>)`),
				regexp.MustCompile(`("headline"\s*:\s*")` + quoted + `(")`),
			},
		})
	}
	if description != "" {
		quoted := regexp.QuoteMeta(description)
		patches = append(patches, metadataPatch{
			field:    "description",
			original: description,
			locators: []*regexp.Regexp{
				regexp.MustCompile(`(<meta\s[^>]*name="description"[^>]*content=")` + quoted + `(")`),
				regexp.MustCompile(`(<meta\s[^>]*content=")` + quoted + `("[^>]*name="description")`),
			},
		})
	}

	for _, p := range patches {
		translated := s.translateCached(ctx, p.original)
		if translated == p.original {
			continue
		}
		for _, re := range p.locators {
			markup = patchAll(markup, re, translated)
		}
	}
	return markup, nil
}

// patchAll replaces the value between the locator's two capture groups with
// replacement, for every match. The replacement is inserted literally and is
// never rescanned, so a translation that happens to resemble a match site
// cannot loop the pass.
func patchAll(doc string, re *regexp.Regexp, replacement string) string {
	var b strings.Builder
	rest := doc
	for {
		m := re.FindStringSubmatchIndex(rest)
		if m == nil {
			b.WriteString(rest)
			return b.String()
		}
		// m[3] ends the prefix group, m[4] starts the suffix group.
		b.WriteString(rest[:m[3]])
		b.WriteString(replacement)
		rest = rest[m[4]:]
	}
}
