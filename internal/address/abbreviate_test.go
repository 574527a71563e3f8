package address

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestApplyAbbreviationsUnderLimit(t *testing.T) {
	got := ApplyAbbreviations("152, Teheran-ro, Gangnam-gu", 60)
	assert.Equal(t, Abbreviated{Text: "152, Teheran-ro, Gangnam-gu"}, got)

	// Limits count characters, not bytes.
	got = ApplyAbbreviations("가나다라마바사", 7)
	assert.Equal(t, Abbreviated{Text: "가나다라마바사"}, got)
}

func TestApplyAbbreviationsStopsOnceItFits(t *testing.T) {
	got := ApplyAbbreviations("Raemian Apartment Building 101", 25)
	assert.Equal(t, "Raemian Apt Building 101", got.Text)
	assert.True(t, got.Abbreviated)
}

func TestApplyAbbreviationsCaseInsensitiveAndGlobal(t *testing.T) {
	got := ApplyAbbreviations("APARTMENT apartment Apartment", 12)
	assert.Equal(t, "Apt Apt Apt", got.Text)
	assert.True(t, got.Abbreviated)
}

func TestApplyAbbreviationsProvince(t *testing.T) {
	got := ApplyAbbreviations("12, Sangdang-ro, Chungcheongbuk-do", 30)
	assert.Equal(t, "12, Sangdang-ro, Chungbuk", got.Text)
	assert.True(t, got.Abbreviated)
}

func TestApplyAbbreviationsTruncates(t *testing.T) {
	got := ApplyAbbreviations("abcdefghijklmnopqrstuvwxyz", 10)
	assert.Equal(t, "abcdefghij", got.Text)
	assert.True(t, got.Abbreviated)

	got = ApplyAbbreviations("래미안아파트 에스티지", 5)
	assert.Equal(t, "래미안아파", got.Text)
	assert.True(t, got.Abbreviated)
}

func TestApplyAbbreviationsNoLimit(t *testing.T) {
	long := strings.Repeat("Apartment ", 20)
	assert.Equal(t, Abbreviated{Text: long}, ApplyAbbreviations(long, 0))
}

func TestApplyAbbreviationsProperties(t *testing.T) {
	inputs := []string{
		"",
		"Bldg 101, Unit 1501",
		"1234, Gangnam-daero 123beon-gil, Seocho-gu",
		"Raemian Apartment Complex Building 101 Floor 15 Room 1501",
		"Hillstate Officetel Tower Center Village Street Road Avenue",
		"래미안 아파트 101동 1501호 (래미안퍼스티지)",
	}
	for _, in := range inputs {
		for _, limit := range []int{1, 5, 10, 20, 35, 60} {
			first := ApplyAbbreviations(in, limit)
			assert.LessOrEqual(t, utf8.RuneCountInString(first.Text), limit, "%q @ %d", in, limit)
			if utf8.RuneCountInString(in) <= limit {
				assert.False(t, first.Abbreviated)
				assert.Equal(t, in, first.Text)
			}

			second := ApplyAbbreviations(first.Text, limit)
			assert.Equal(t, first.Text, second.Text, "second pass changed %q @ %d", in, limit)
			assert.False(t, second.Abbreviated, "second pass flagged %q @ %d", in, limit)
		}
	}
}
