package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDetailAddress(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedDetail
	}{
		{"101동 1501호", ParsedDetail{Dong: "101", Ho: "1501", Raw: "101동 1501호"}},
		{"  101동1501호 ", ParsedDetail{Dong: "101", Ho: "1501", Raw: "101동1501호"}},
		{"A동 302호", ParsedDetail{Dong: "A", Ho: "302", Raw: "A동 302호"}},
		{"가동 302호", ParsedDetail{Dong: "가", Ho: "302", Raw: "가동 302호"}},
		{"101-1501", ParsedDetail{Dong: "101", Ho: "1501", Raw: "101-1501"}},
		{"3층 301호", ParsedDetail{Ho: "301", Raw: "3층 301호"}},
		{"1501호", ParsedDetail{Ho: "1501", Raw: "1501호"}},
		{"101동", ParsedDetail{Dong: "101", Raw: "101동"}},
		{"１０１동 １５０１호", ParsedDetail{Dong: "101", Ho: "1501", Raw: "１０１동 １５０１호"}},
		{"입주민 전용 출입구", ParsedDetail{Raw: "입주민 전용 출입구"}},
		{"", ParsedDetail{}},
		{"   ", ParsedDetail{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDetailAddress(tt.input), "ParseDetailAddress(%q)", tt.input)
	}
}

func TestTranslateDetailAddress(t *testing.T) {
	tests := []struct {
		dong, ho string
		want     string
	}{
		{"101", "1501", "Bldg 101, Unit 1501"},
		{"A", "302", "Bldg A, Unit 302"},
		{"b", "302", "Bldg B, Unit 302"},
		{"가", "302", "Bldg GA, Unit 302"},
		{"101", "", "Bldg 101"},
		{"", "1501", "Unit 1501"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateDetailAddress(tt.dong, tt.ho), "TranslateDetailAddress(%q, %q)", tt.dong, tt.ho)
	}
}
