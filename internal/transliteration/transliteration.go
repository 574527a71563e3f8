// Package transliteration turns Korean names and words into Latin-alphabet
// approximations suitable for international shipping labels.
package transliteration

import (
	"unicode"
	"unicode/utf8"
)

// ContainsHangul reports whether text has any Hangul rune (syllables or jamo).
func ContainsHangul(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

func containsLatin(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
