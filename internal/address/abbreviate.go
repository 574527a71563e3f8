package address

import (
	"regexp"
	"unicode/utf8"
)

// Abbreviated is the outcome of fitting a line into a field limit.
type Abbreviated struct {
	Text        string `json:"text"`
	Abbreviated bool   `json:"abbreviated"`
}

type abbreviation struct {
	re   *regexp.Regexp
	with string
}

// abbreviations are applied in order until the text fits, so the entries that
// save the most characters on typical Korean addresses come first.
var abbreviations = compileAbbreviations([][2]string{
	{"Apartment", "Apt"},
	{"Building", "Bldg"},
	{"Chungcheongbuk-do", "Chungbuk"},
	{"Chungcheongnam-do", "Chungnam"},
	{"Gyeongsangbuk-do", "Gyeongbuk"},
	{"Gyeongsangnam-do", "Gyeongnam"},
	{"Jeollabuk-do", "Jeonbuk"},
	{"Jeollanam-do", "Jeonnam"},
	{"Gyeonggi-do", "Gyeonggi"},
	{"Gangwon-do", "Gangwon"},
	{"Jeju-do", "Jeju"},
	{"Republic of Korea", "Korea"},
	{"Officetel", "OT"},
	{"Complex", "Cplx"},
	{"Village", "Vlg"},
	{"Tower", "Twr"},
	{"Center", "Ctr"},
	{"Basement", "B"},
	{"Floor", "Fl"},
	{"Room", "Rm"},
	{"Suite", "Ste"},
	{"Street", "St"},
	{"Road", "Rd"},
	{"Avenue", "Ave"},
})

func compileAbbreviations(pairs [][2]string) []abbreviation {
	out := make([]abbreviation, len(pairs))
	for i, p := range pairs {
		out[i] = abbreviation{
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p[0])),
			with: p[1],
		}
	}
	return out
}

// ApplyAbbreviations shortens text to at most maxLength characters (runes).
// Known words are abbreviated first; if that is not enough the text is cut
// hard at maxLength. Abbreviated reports whether the text was changed at all.
// A non-positive maxLength means no limit.
func ApplyAbbreviations(text string, maxLength int) Abbreviated {
	if maxLength <= 0 || utf8.RuneCountInString(text) <= maxLength {
		return Abbreviated{Text: text}
	}

	changed := false
	for _, a := range abbreviations {
		if utf8.RuneCountInString(text) <= maxLength {
			break
		}
		replaced := a.re.ReplaceAllLiteralString(text, a.with)
		if replaced != text {
			text = replaced
			changed = true
		}
	}

	if utf8.RuneCountInString(text) > maxLength {
		text = string([]rune(text)[:maxLength])
		changed = true
	}

	return Abbreviated{Text: text, Abbreviated: changed}
}
