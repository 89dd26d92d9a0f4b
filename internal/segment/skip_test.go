package segment

import "testing"

func TestShouldSkip(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"whitespace", "  \n\t ", true},
		{"digits", "12345", true},
		{"digits padded", "  12345  ", true},
		{"punctuation", "—–…!?", true},
		{"percentage", "42%", true},
		{"url http", "https://example.com/path?q=1", true},
		{"url www", "www.example.com", true},
		{"json object", `{"a":1,"b":[2,3]}`, true},
		{"json array", `[1,2,3]`, true},
		{"constant", "API_KEY", true},
		{"acronym", "UTC", true},
		{"function call", "fetchData()", true},
		{"method call", "console.log(x)", true},
		{"placeholder index", "{0}", true},
		{"placeholder verb", "%s", true},
		{"placeholder verb padded", "%02d", true},
		{"placeholder verb precision", "%.2f", true},
		{"placeholder mustache", "{{slot}}", true},
		{"code fence", "```\nfunc main() {}\n```", true},

		{"prose", "The quick brown fox.", false},
		{"prose with number", "There are 5 reasons.", false},
		{"prose with url", "Visit https://example.com today", false},
		{"capitalized word", "Hello", false},
		{"sentence with constant", "Set API_KEY before starting.", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldSkip(tc.text); got != tc.want {
				t.Errorf("ShouldSkip(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
