package address

import (
	"regexp"
	"strings"

	"github.com/jusunglee/addrconv/internal/transliteration"
	"golang.org/x/text/width"
)

// detailPatterns are tried in order; the first match wins. Each pattern
// captures dong and/or ho, a missing capture leaves that part empty.
var detailPatterns = []struct {
	re      *regexp.Regexp
	dongIdx int
	hoIdx   int
}{
	{regexp.MustCompile(`(\d+)\s*동\s*(\d+)\s*호`), 1, 2},
	{regexp.MustCompile(`([A-Za-z0-9가-힣]+)\s*동\s*(\d+)\s*호`), 1, 2},
	{regexp.MustCompile(`(\d+)-(\d+)`), 1, 2},
	{regexp.MustCompile(`(\d+)\s*호`), 0, 1},
	{regexp.MustCompile(`(\d+)\s*동`), 1, 0},
}

// ParseDetailAddress extracts the building and unit numbers from a detail
// address such as "101동 1501호", "A동 302호" or "101-1501".
func ParseDetailAddress(input string) ParsedDetail {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return ParsedDetail{}
	}

	// Full-width digits (１０１동) are common from mobile keyboards.
	normalized := width.Narrow.String(raw)

	for _, p := range detailPatterns {
		m := p.re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		var parsed ParsedDetail
		parsed.Raw = raw
		if p.dongIdx > 0 {
			parsed.Dong = m[p.dongIdx]
		}
		if p.hoIdx > 0 {
			parsed.Ho = m[p.hoIdx]
		}
		return parsed
	}

	return ParsedDetail{Raw: raw}
}

// TranslateDetailAddress renders dong/ho in English. Letter building codes
// are upper-cased and Hangul codes romanized (가 -> GA).
func TranslateDetailAddress(dong, ho string) string {
	dong = strings.TrimSpace(dong)
	ho = strings.TrimSpace(ho)
	if transliteration.ContainsHangul(dong) {
		dong = transliteration.RomanizeSyllables(dong)
	}
	dong = strings.ToUpper(dong)

	switch {
	case dong != "" && ho != "":
		return "Bldg " + dong + ", Unit " + ho
	case dong != "":
		return "Bldg " + dong
	case ho != "":
		return "Unit " + ho
	default:
		return ""
	}
}
