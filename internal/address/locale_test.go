package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertState(t *testing.T) {
	tests := []struct {
		sido   string
		format StateFormat
		want   string
	}{
		{"서울특별시", StateFull, "Seoul"},
		{"서울", StateFull, "Seoul"},
		{"서울", StateAbbr, "Seoul"},
		{"경기도", StateFull, "Gyeonggi-do"},
		{"경기", StateAbbr, "Gyeonggi"},
		{"충청북도", StateFull, "Chungcheongbuk-do"},
		{"충북", StateAbbr, "Chungbuk"},
		{"강원특별자치도", StateFull, "Gangwon-do"},
		{"전북특별자치도", StateAbbr, "Jeonbuk"},
		{"세종특별자치시", StateFull, "Sejong-si"},
		{"제주특별자치도", StateAbbr, "Jeju"},
		{"Atlantis", StateFull, "Atlantis"},
		{"", StateFull, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConvertState(tt.sido, tt.format), "ConvertState(%q, %q)", tt.sido, tt.format)
	}
}

func TestStatesCoverShortAndLongForms(t *testing.T) {
	pairs := map[string]string{
		"서울특별시": "서울", "부산광역시": "부산", "대구광역시": "대구", "인천광역시": "인천",
		"광주광역시": "광주", "대전광역시": "대전", "울산광역시": "울산", "세종특별자치시": "세종",
		"경기도": "경기", "강원도": "강원", "충청북도": "충북", "충청남도": "충남",
		"전라북도": "전북", "전라남도": "전남", "경상북도": "경북", "경상남도": "경남",
		"제주특별자치도": "제주",
	}
	for long, short := range pairs {
		for _, f := range []StateFormat{StateFull, StateAbbr} {
			assert.Equal(t, ConvertState(long, f), ConvertState(short, f), "%s vs %s", long, short)
			assert.NotEqual(t, long, ConvertState(long, f))
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		phone  string
		format PhoneFormat
		want   string
	}{
		{"010-1234-5678", PhoneInternational, "+82-10-1234-5678"},
		{"010-1234-5678", PhoneLocal, "010-1234-5678"},
		{"01012345678", PhoneLocal, "010-1234-5678"},
		{"010 1234 5678", PhoneInternational, "+82-10-1234-5678"},
		{"011-123-4567", PhoneInternational, "+82-11-123-4567"},
		{"0191234567", PhoneLocal, "019-123-4567"},
		{"02-1234-5678", PhoneInternational, "+82-2-1234-5678"},
		{"0212345678", PhoneLocal, "02-1234-5678"},
		{"031-123-4567", PhoneInternational, "+82-31-123-4567"},
		{"051-1234-5678", PhoneLocal, "051-1234-5678"},
		{"+82 10-1234-5678", PhoneLocal, "010-1234-5678"},
		{"+82 010 1234 5678", PhoneInternational, "+82-10-1234-5678"},
		{"０１０-１２３４-５６７８", PhoneInternational, "+82-10-1234-5678"},
		{"02-123-4567", PhoneInternational, "02-123-4567"},
		{"12345", PhoneInternational, "12345"},
		{"", PhoneLocal, ""},
		{"415-555-1234", PhoneInternational, "415-555-1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.phone, tt.format), "FormatPhone(%q, %q)", tt.phone, tt.format)
	}
}
