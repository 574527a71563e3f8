package address

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// StateFormat selects how a province is written in the state field.
type StateFormat string

const (
	StateFull StateFormat = "full"
	StateAbbr StateFormat = "abbr"
)

// PhoneFormat selects international (+82) or domestic phone notation.
type PhoneFormat string

const (
	PhoneInternational PhoneFormat = "international"
	PhoneLocal         PhoneFormat = "local"
)

type stateName struct {
	full string
	abbr string
}

var (
	seoul     = stateName{"Seoul", "Seoul"}
	busan     = stateName{"Busan", "Busan"}
	daegu     = stateName{"Daegu", "Daegu"}
	incheon   = stateName{"Incheon", "Incheon"}
	gwangju   = stateName{"Gwangju", "Gwangju"}
	daejeon   = stateName{"Daejeon", "Daejeon"}
	ulsan     = stateName{"Ulsan", "Ulsan"}
	sejong    = stateName{"Sejong-si", "Sejong"}
	gyeonggi  = stateName{"Gyeonggi-do", "Gyeonggi"}
	gangwon   = stateName{"Gangwon-do", "Gangwon"}
	chungbuk  = stateName{"Chungcheongbuk-do", "Chungbuk"}
	chungnam  = stateName{"Chungcheongnam-do", "Chungnam"}
	jeonbuk   = stateName{"Jeollabuk-do", "Jeonbuk"}
	jeonnam   = stateName{"Jeollanam-do", "Jeonnam"}
	gyeongbuk = stateName{"Gyeongsangbuk-do", "Gyeongbuk"}
	gyeongnam = stateName{"Gyeongsangnam-do", "Gyeongnam"}
	jeju      = stateName{"Jeju-do", "Jeju"}
)

// states maps both the official and the colloquial province names, since the
// postal lookup returns either depending on the record.
var states = map[string]stateName{
	"서울특별시":   seoul,
	"서울":      seoul,
	"부산광역시":   busan,
	"부산":      busan,
	"대구광역시":   daegu,
	"대구":      daegu,
	"인천광역시":   incheon,
	"인천":      incheon,
	"광주광역시":   gwangju,
	"광주":      gwangju,
	"대전광역시":   daejeon,
	"대전":      daejeon,
	"울산광역시":   ulsan,
	"울산":      ulsan,
	"세종특별자치시": sejong,
	"세종":      sejong,
	"경기도":     gyeonggi,
	"경기":      gyeonggi,
	"강원도":     gangwon,
	"강원특별자치도": gangwon,
	"강원":      gangwon,
	"충청북도":    chungbuk,
	"충북":      chungbuk,
	"충청남도":    chungnam,
	"충남":      chungnam,
	"전라북도":    jeonbuk,
	"전북특별자치도": jeonbuk,
	"전북":      jeonbuk,
	"전라남도":    jeonnam,
	"전남":      jeonnam,
	"경상북도":    gyeongbuk,
	"경북":      gyeongbuk,
	"경상남도":    gyeongnam,
	"경남":      gyeongnam,
	"제주특별자치도": jeju,
	"제주도":     jeju,
	"제주":      jeju,
}

// ConvertState returns the English name of a Korean province or metropolitan
// city. Unknown input is returned unchanged.
func ConvertState(sido string, format StateFormat) string {
	name, ok := states[sido]
	if !ok {
		return sido
	}
	if format == StateAbbr {
		return name.abbr
	}
	return name.full
}

var (
	nonDigit       = regexp.MustCompile(`\D`)
	mobilePrefixes = map[string]bool{
		"010": true, "011": true, "016": true, "017": true, "018": true, "019": true,
	}
)

// FormatPhone rewrites a Korean phone number as +82-XX-XXXX-XXXX or
// 0XX-XXXX-XXXX. Numbers it cannot confidently reformat are returned as given.
func FormatPhone(phone string, format PhoneFormat) string {
	digits := nonDigit.ReplaceAllString(width.Narrow.String(phone), "")

	// +82 10-1234-5678 and +82 010-1234-5678 both become 01012345678.
	if strings.HasPrefix(digits, "82") {
		digits = strings.TrimPrefix(digits, "82")
		if !strings.HasPrefix(digits, "0") {
			digits = "0" + digits
		}
	}

	if len(digits) < 10 || !strings.HasPrefix(digits, "0") {
		return phone
	}

	var area, rest string
	switch {
	case mobilePrefixes[digits[:3]]:
		area, rest = digits[:3], digits[3:]
	case strings.HasPrefix(digits, "02"):
		area, rest = digits[:2], digits[2:]
	default:
		area, rest = digits[:3], digits[3:]
	}

	split := len(rest) - 4
	local := rest[:split] + "-" + rest[split:]

	if format == PhoneLocal {
		return area + "-" + local
	}
	return "+82-" + area[1:] + "-" + local
}
