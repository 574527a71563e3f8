package transliteration

import (
	"strings"
)

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	jongN      = 28
	jungN      = 21
)

// Revised Romanization of Korean. Finals carry the pronounced value of the
// batchim so that given names read naturally (석 -> seok, 밭 -> bat).
var (
	choseong = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungseong = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongseong = []string{
		"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
		"m", "l", "l", "l", "p", "l", "m", "p", "p",
		"t", "t", "ng", "t", "t", "k", "t", "p", "t",
	}
)

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulEnd
}

// RomanizeSyllables romanizes every precomposed Hangul syllable in text and
// leaves all other runes untouched. The result is lower case.
func RomanizeSyllables(text string) string {
	var b strings.Builder
	for _, r := range text {
		if !IsSyllable(r) {
			b.WriteRune(r)
			continue
		}
		code := int(r) - hangulBase
		jong := code % jongN
		jung := (code / jongN) % jungN
		cho := code / (jongN * jungN)
		b.WriteString(choseong[cho])
		b.WriteString(jungseong[jung])
		b.WriteString(jongseong[jong])
	}
	return b.String()
}
