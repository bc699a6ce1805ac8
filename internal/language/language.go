// Package language defines language codes and the tables that map
// human-entered language names to them.
package language

import (
	"sort"
	"strings"
)

// Code is a lower-case ISO 639-1 language code (e.g. "en", "es", "hi").
type Code string

const (
	// Unknown means no language could be determined.
	Unknown Code = ""

	// English is the universal fallback target for translation and responses.
	English Code = "en"
)

// Normalize converts an arbitrary language tag to a bare lower-case
// ISO 639-1 code. BCP 47 region subtags are stripped:
//
//	"EN"    -> "en"
//	"fr-CA" -> "fr"
//	"en_US" -> "en"
func Normalize(tag string) Code {
	lang := strings.ToLower(strings.TrimSpace(tag))
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	return Code(lang)
}

// Alias maps a free-text keyword (an English name or an endonym) to a code.
type Alias struct {
	Keyword string
	Code    Code
}

// aliases is evaluated top-to-bottom; first match wins. The order is part of
// the contract: a keyword that is a substring of another (e.g. "malay" of
// "bahasa melayu") must come after the longer one.
var aliases = []Alias{
	{"english", "en"}, {"inglés", "en"},
	{"spanish", "es"}, {"español", "es"},
	{"german", "de"}, {"deutsch", "de"}, {"alemán", "de"},
	{"hindi", "hi"}, {"हिंदी", "hi"},
	{"french", "fr"}, {"français", "fr"},
	{"russian", "ru"}, {"русский", "ru"},
	{"italian", "it"}, {"italiano", "it"},
	{"portuguese", "pt"}, {"português", "pt"},
	{"dutch", "nl"}, {"nederlands", "nl"},
	{"greek", "el"}, {"ελληνικά", "el"},
	{"polish", "pl"}, {"polski", "pl"},
	{"turkish", "tr"}, {"türkçe", "tr"},
	{"czech", "cs"}, {"čeština", "cs"},
	{"slovak", "sk"}, {"slovenčina", "sk"},
	{"swedish", "sv"}, {"svenska", "sv"},
	{"norwegian", "no"}, {"norsk", "no"},
	{"danish", "da"}, {"dansk", "da"},
	{"finnish", "fi"}, {"suomi", "fi"},
	{"hungarian", "hu"}, {"magyar", "hu"},
	{"romanian", "ro"}, {"română", "ro"},
	{"bulgarian", "bg"}, {"български", "bg"},
	{"croatian", "hr"}, {"hrvatski", "hr"},
	{"albanian", "sq"}, {"shqip", "sq"},
	{"ukrainian", "uk"}, {"українська", "uk"},
	{"serbian", "sr"}, {"српски", "sr"},
	{"slovenian", "sl"}, {"slovenščina", "sl"},
	{"estonian", "et"}, {"eesti", "et"},
	{"latvian", "lv"}, {"latviešu", "lv"},
	{"lithuanian", "lt"}, {"lietuvių", "lt"},
	{"chinese", "zh"}, {"中文", "zh"},
	{"japanese", "ja"}, {"日本語", "ja"},
	{"korean", "ko"}, {"한국어", "ko"},
	{"vietnamese", "vi"}, {"tiếng việt", "vi"},
	{"thai", "th"}, {"ไทย", "th"},
	{"indonesian", "id"}, {"bahasa indonesia", "id"},
	{"bahasa melayu", "ms"}, {"malay", "ms"},
	{"tagalog", "tl"}, {"filipino", "tl"},
	{"bengali", "bn"}, {"বাংলা", "bn"},
	{"urdu", "ur"}, {"اردو", "ur"},
	{"tamil", "ta"}, {"தமிழ்", "ta"},
	{"telugu", "te"}, {"తెలుగు", "te"},
	{"arabic", "ar"}, {"العربية", "ar"},
	{"hebrew", "he"}, {"עברית", "he"},
	{"farsi", "fa"}, {"persian", "fa"}, {"فارسی", "fa"},
	{"kiswahili", "sw"}, {"swahili", "sw"},
	{"afrikaans", "af"},
	{"isizulu", "zu"}, {"zulu", "zu"},
	{"amharic", "am"}, {"አማርኛ", "am"},
	{"yoruba", "yo"},
	{"igbo", "ig"},
	{"esperanto", "eo"},
	{"latin", "la"},
	{"maori", "mi"},
	{"irish", "ga"},
	{"gaelic", "gd"},
	{"icelandic", "is"}, {"íslenska", "is"},
	{"maltese", "mt"}, {"malti", "mt"},
}

// names maps codes to English display names.
var names = map[Code]string{
	"en": "English", "es": "Spanish", "de": "German", "hi": "Hindi", "fr": "French",
	"ru": "Russian", "it": "Italian", "pt": "Portuguese", "nl": "Dutch", "el": "Greek",
	"pl": "Polish", "tr": "Turkish", "cs": "Czech", "sk": "Slovak", "sv": "Swedish",
	"no": "Norwegian", "da": "Danish", "fi": "Finnish", "hu": "Hungarian", "ro": "Romanian",
	"bg": "Bulgarian", "hr": "Croatian", "sq": "Albanian", "uk": "Ukrainian", "sr": "Serbian",
	"sl": "Slovenian", "et": "Estonian", "lv": "Latvian", "lt": "Lithuanian",
	"zh": "Chinese", "ja": "Japanese", "ko": "Korean", "vi": "Vietnamese", "th": "Thai",
	"id": "Indonesian", "ms": "Malay", "tl": "Tagalog", "bn": "Bengali", "ur": "Urdu",
	"ta": "Tamil", "te": "Telugu",
	"ar": "Arabic", "he": "Hebrew", "fa": "Farsi",
	"sw": "Swahili", "af": "Afrikaans", "zu": "Zulu", "am": "Amharic", "yo": "Yoruba", "ig": "Igbo",
	"eo": "Esperanto", "la": "Latin", "mi": "Maori", "ga": "Irish", "gd": "Gaelic",
	"is": "Icelandic", "mt": "Maltese",
}

// Name returns the English display name of a code, or the code itself when
// the code is not in the registry.
func Name(code Code) string {
	if name, ok := names[code]; ok {
		return name
	}
	return string(code)
}

// Known reports whether code is in the registry.
func Known(code Code) bool {
	_, ok := names[code]
	return ok
}

// MatchAlias scans text (case-insensitive) for a language name or endonym and
// returns the matching code. Evaluation order is the declared alias order, so
// results are deterministic for inputs naming several languages.
func MatchAlias(text string) (Code, bool) {
	lc := strings.ToLower(text)
	for _, a := range aliases {
		if strings.Contains(lc, a.Keyword) {
			return a.Code, true
		}
	}
	return Unknown, false
}

// FormatList renders the language registry grouped by the first letter of the
// code, with groups in alphabetical order and entries sorted by display name.
// The output is stable across calls.
func FormatList() string {
	groups := make(map[byte][]string)
	for code, name := range names {
		letter := strings.ToUpper(string(code))[0]
		groups[letter] = append(groups[letter], name+" ("+string(code)+")")
	}

	letters := make([]byte, 0, len(groups))
	for letter := range groups {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	var sb strings.Builder
	sb.WriteString("Available Languages:")
	for _, letter := range letters {
		entries := groups[letter]
		sort.Strings(entries)
		sb.WriteString("\n")
		sb.WriteByte(letter)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(entries, ", "))
	}
	return sb.String()
}
