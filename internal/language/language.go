package language

import "sort"

// Language represents a supported target language.
type Language struct {
	Code string
	Name string
}

// Languages maps language code -> Language.
var Languages = map[string]Language{
	"ar": {Code: "ar", Name: "Arabic"},
	"bg": {Code: "bg", Name: "Bulgarian"},
	"bn": {Code: "bn", Name: "Bengali"},
	"cs": {Code: "cs", Name: "Czech"},
	"da": {Code: "da", Name: "Danish"},
	"de": {Code: "de", Name: "German"},
	"el": {Code: "el", Name: "Greek"},
	"en": {Code: "en", Name: "English"},
	"es": {Code: "es", Name: "Spanish"},
	"et": {Code: "et", Name: "Estonian"},
	"fa": {Code: "fa", Name: "Persian"},
	"fi": {Code: "fi", Name: "Finnish"},
	"fr": {Code: "fr", Name: "French"},
	"he": {Code: "he", Name: "Hebrew"},
	"hi": {Code: "hi", Name: "Hindi"},
	"hr": {Code: "hr", Name: "Croatian"},
	"hu": {Code: "hu", Name: "Hungarian"},
	"id": {Code: "id", Name: "Indonesian"},
	"it": {Code: "it", Name: "Italian"},
	"ja": {Code: "ja", Name: "Japanese"},
	"ko": {Code: "ko", Name: "Korean"},
	"lt": {Code: "lt", Name: "Lithuanian"},
	"lv": {Code: "lv", Name: "Latvian"},
	"ms": {Code: "ms", Name: "Malay"},
	"nl": {Code: "nl", Name: "Dutch"},
	"no": {Code: "no", Name: "Norwegian"},
	"pl": {Code: "pl", Name: "Polish"},
	"pt": {Code: "pt", Name: "Portuguese"},
	"ro": {Code: "ro", Name: "Romanian"},
	"ru": {Code: "ru", Name: "Russian"},
	"sk": {Code: "sk", Name: "Slovak"},
	"sl": {Code: "sl", Name: "Slovenian"},
	"sr": {Code: "sr", Name: "Serbian"},
	"sv": {Code: "sv", Name: "Swedish"},
	"th": {Code: "th", Name: "Thai"},
	"tr": {Code: "tr", Name: "Turkish"},
	"uk": {Code: "uk", Name: "Ukrainian"},
	"ur": {Code: "ur", Name: "Urdu"},
	"vi": {Code: "vi", Name: "Vietnamese"},
	"zh": {Code: "zh", Name: "Chinese (Simplified)"},
}

// Get returns the language for a code, strict matching only.
func Get(code string) (Language, bool) {
	lang, ok := Languages[code]
	return lang, ok
}

// Supported returns all languages sorted by display name, then code.
func Supported() []Language {
	entries := make([]Language, 0, len(Languages))
	for _, v := range Languages {
		entries = append(entries, v)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}
