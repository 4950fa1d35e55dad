// Package translator normalizes non-English instructions into English
// before parsing. Translation is a fixed lexicon lookup, not general
// machine translation: tokens outside the lexicon pass through verbatim
// so parsing degrades gracefully instead of failing.
package translator

import "strings"

// Normalizer converts an instruction into parseable English, or returns
// it unchanged when no translation is needed. Implementations for other
// languages (or a real translation backend) can be swapped in without
// touching the parser.
type Normalizer interface {
	Normalize(text string) string
}

// Passthrough is the identity normalizer for English-only sessions.
type Passthrough struct{}

// Normalize returns the text unchanged.
func (Passthrough) Normalize(text string) string {
	return text
}

// Hindi is the rule-based Hindi → English normalizer.
type Hindi struct{}

// NewHindi returns a Normalizer backed by the fixed Hindi lexicon.
func NewHindi() *Hindi {
	return &Hindi{}
}

// Normalize translates text when it contains Devanagari script and
// returns it unchanged otherwise. Idempotent for English input.
func (h *Hindi) Normalize(text string) string {
	if !IsDevanagari(text) {
		return text
	}
	return h.TranslateToEnglish(text)
}

// IsDevanagari reports whether any rune falls in the Devanagari
// Unicode block (U+0900–U+097F).
func IsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// devanagariDigits maps Devanagari digit glyphs to ASCII digits.
var devanagariDigits = strings.NewReplacer(
	"०", "0", "१", "1", "२", "2", "३", "3", "४", "4",
	"५", "5", "६", "6", "७", "7", "८", "8", "९", "9",
)

// numberWords maps Hindi number terms to ASCII digit strings.
var numberWords = map[string]string{
	"एक": "1", "दो": "2", "तीन": "3", "चार": "4",
	"पांच": "5", "पाँच": "5", "छह": "6", "सात": "7",
	"आठ": "8", "नौ": "9", "दस": "10",
}

// wordLexicon maps common Hindi shopping vocabulary to English.
var wordLexicon = map[string]string{
	// actions
	"जोड़ो": "add", "डालो": "add", "शामिल": "add",
	"खरीदो": "buy", "लो": "get",
	"हटाओ": "remove", "निकालो": "remove", "हटा": "remove",
	"बदल": "modify", "बदलो": "modify", "अपडेट": "modify",
	"खोजो": "search", "ढूंढो": "search",
	"सूची": "list", "साफ": "clear",

	// common items
	"दूध": "milk", "सेब": "apples", "केले": "bananas", "केला": "banana",
	"पानी": "water", "रोटी": "bread", "अंडे": "eggs", "टमाटर": "tomatoes",
	"तेल": "oil", "चीनी": "sugar", "चावल": "rice",
}

// TranslateToEnglish applies the fixed lexicon: digit glyphs first, then
// number words, then token-wise word replacement. Whitespace and
// punctuation delimiters are preserved as-is.
func (h *Hindi) TranslateToEnglish(text string) string {
	if text == "" {
		return ""
	}
	out := devanagariDigits.Replace(text)

	var b strings.Builder
	for _, tok := range splitTokens(out) {
		switch {
		case numberWords[tok] != "":
			b.WriteString(numberWords[tok])
		case wordLexicon[tok] != "":
			b.WriteString(wordLexicon[tok])
		default:
			b.WriteString(tok)
		}
	}
	return b.String()
}

// splitTokens splits text into alternating word and delimiter runs,
// keeping delimiters so the original spacing survives rejoining.
func splitTokens(text string) []string {
	var tokens []string
	var cur strings.Builder
	curDelim := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		delim := isDelimiter(r)
		if delim != curDelim {
			flush()
			curDelim = delim
		}
		cur.WriteRune(r)
	}
	flush()
	return tokens
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '.', '!', '?', '-', '+', '/':
		return true
	}
	return false
}
