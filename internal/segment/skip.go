package segment

import (
	"regexp"
	"strings"
)

// skipPatterns lists content shapes that never benefit from translation.
// A segment is skipped only when the whole trimmed segment matches; partial
// matches inside prose do not trigger skipping. The list is a heuristic
// allowlist and deliberately additive.
var skipPatterns = []*regexp.Regexp{
	// Digits, punctuation and symbols only ("12345", "42%", "3.14 - 2").
	regexp.MustCompile(`^[^\p{L}]+$`),
	// Bare URLs.
	regexp.MustCompile(`^(?:https?://|www\.)\S+$`),
	// SCREAMING_CASE identifiers ("API_KEY", "UTC").
	regexp.MustCompile(`^[A-Z][A-Z0-9_]{2,}$`),
	// Function-call-like tokens ("fetchData()", "console.log(x)").
	regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*\([^()]*\)$`),
	// Placeholder tokens ("{0}", "%s", "%02d", "%.2f", "{{slot}}").
	regexp.MustCompile(`^(?:\{\d+\}|%[-+ #0]*\d*(?:\.\d+)?[a-zA-Z]|\{\{\s*[\w.-]+\s*\}\})$`),
}

// ShouldSkip reports whether a text segment can pass through untranslated.
func ShouldSkip(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return true
	}
	if looksLikeJSON(t) {
		return true
	}
	if strings.HasPrefix(t, "```") && strings.HasSuffix(t, "```") {
		return true
	}
	for _, re := range skipPatterns {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}

func looksLikeJSON(t string) bool {
	if len(t) < 2 {
		return false
	}
	first, last := t[0], t[len(t)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}
