package address

import (
	"regexp"
	"strings"

	"github.com/jusunglee/addrconv/internal/transliteration"
	"github.com/samber/lo"
)

const (
	Country     = "South Korea"
	CountryCode = "KR"
)

var pcccPattern = regexp.MustCompile(`^P\d{12}$`)

// ValidatePccc reports whether code is a well-formed personal customs
// clearance code: the letter P followed by exactly 12 digits.
func ValidatePccc(code string) bool {
	return pcccPattern.MatchString(strings.ToUpper(code))
}

// ConvertAddress builds the shipping-label fields for the requested site.
//
// ok is false when there is nothing sensible to convert: no Korean address, an
// unknown site, or no name. Every other problem (overlong lines, malformed
// PCCC) is reported through the warning and validity flags on the result.
func ConvertAddress(p ConvertParams) (ConvertedAddress, bool) {
	if p.KoreanAddress == nil {
		return ConvertedAddress{}, false
	}
	preset, ok := LookupPreset(p.SitePreset)
	if !ok {
		return ConvertedAddress{}, false
	}
	userName := strings.TrimSpace(p.UserName)
	if userName == "" {
		return ConvertedAddress{}, false
	}

	ka := p.KoreanAddress
	city, strip := resolveCity(ka)
	line1 := buildAddressLine1(ka, strip)
	line2 := buildAddressLine2(p.DetailAddress, ka.BuildingName, line1)

	a1 := ApplyAbbreviations(line1, preset.AddressLine1Max)
	a2 := ApplyAbbreviations(line2, preset.AddressLine2Max)

	fullName := userName
	if transliteration.ContainsHangul(userName) {
		fullName = transliteration.RomanizeKoreanName(userName).FullName
	}

	pccc := strings.ToUpper(strings.TrimSpace(p.Pccc))

	out := ConvertedAddress{
		Site:       preset.ID,
		SiteName:   preset.Name,
		NameFormat: preset.NameFormat,
		FullName:   fullName,

		AddressLine1:        a1.Text,
		AddressLine1Warning: a1.Abbreviated,
		AddressLine1Max:     preset.AddressLine1Max,
		AddressLine2:        a2.Text,
		AddressLine2Warning: a2.Abbreviated,
		AddressLine2Max:     preset.AddressLine2Max,

		City:        city,
		State:       ConvertState(ka.Sido, preset.StateFormat),
		ZipCode:     strings.TrimSpace(ka.Zonecode),
		Country:     Country,
		CountryCode: CountryCode,
		Phone:       FormatPhone(strings.TrimSpace(p.Phone), preset.PhoneFormat),

		Pccc:      pccc,
		PcccValid: ValidatePccc(pccc),
		ShowPccc:  preset.ShowPccc,
	}

	if preset.NameFormat == NameSplit {
		fields := strings.Fields(fullName)
		out.FirstName = fields[0]
		out.LastName = strings.Join(fields[1:], " ")
	}

	return out, true
}

// resolveCity picks the city reported in the city field and the English
// tokens that must be cut from the end of address line 1.
//
// SigunguEnglish is "district city" ("Bundang-gu Seongnam-si"), a bare
// district for metropolitan cities ("Gangnam-gu") or a county ("Gapyeong-gun").
// Districts (-gu) stay in line 1. Cities (-si) and counties (-gun) move to the
// city field, so they are cut from line 1. A metropolitan city has no -si
// token and reports the province as its city.
func resolveCity(ka *KoreanAddress) (string, []string) {
	var city string
	var strip []string
	for _, tok := range strings.Fields(ka.SigunguEnglish) {
		if strings.HasSuffix(tok, "-si") || strings.HasSuffix(tok, "-gun") {
			if city == "" {
				city = tok
			}
			strip = append(strip, tok)
		}
	}
	if city == "" {
		city = ConvertState(ka.Sido, StateFull)
	}

	return city, strip
}

// buildAddressLine1 truncates the English road address at the first
// occurrence of any strip token or of the province, dropping the city,
// province and country that the lookup appends. The province only counts as a
// whole comma-separated part: "Busan" must not cut "Busanjin-gu".
func buildAddressLine1(ka *KoreanAddress, strip []string) string {
	english := strings.TrimSpace(ka.EnglishAddress)
	if english == "" {
		english = romanizeRoadAddress(ka.RoadAddress)
	}

	cut := partOffset(english, ConvertState(ka.Sido, StateFull))
	for _, tok := range strip {
		if i := strings.Index(english, tok); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}

	line := english
	if cut >= 0 {
		line = trimSeparators(english[:cut])
	}
	if line == "" {
		line = trimSeparators(english)
	}
	return line
}

// partOffset returns the byte offset of part in the comma-separated address
// s, or -1 when no part equals it.
func partOffset(s, part string) int {
	if part == "" {
		return -1
	}
	parts := strings.Split(s, ",")
	idx := lo.IndexOf(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}), part)
	if idx < 0 {
		return -1
	}

	offset := 0
	for _, p := range parts[:idx] {
		offset += len(p) + 1
	}
	return offset + len(parts[idx]) - len(strings.TrimLeft(parts[idx], " "))
}

// buildAddressLine2 renders the detail address and appends the building name
// when line 1 does not already mention it.
func buildAddressLine2(detail, buildingName, line1 string) string {
	parsed := ParseDetailAddress(detail)
	line := TranslateDetailAddress(parsed.Dong, parsed.Ho)
	if line == "" {
		line = parsed.Raw
	}

	buildingName = strings.TrimSpace(buildingName)
	if buildingName != "" && !strings.Contains(line1, buildingName) {
		line = strings.TrimSpace(line + " (" + buildingName + ")")
	}
	return line
}

// romanizeRoadAddress is the fallback when the lookup has no English address.
func romanizeRoadAddress(road string) string {
	words := strings.Fields(road)
	for i, w := range words {
		words[i] = transliteration.Capitalize(transliteration.RomanizeSyllables(w))
	}
	return strings.Join(words, " ")
}

func trimSeparators(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ", ")
}
