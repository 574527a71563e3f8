package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetIDs(t *testing.T) {
	assert.Equal(t, []string{"aliexpress", "amazon", "ebay", "general", "iherb"}, PresetIDs())
}

func TestPresetsAreWellFormed(t *testing.T) {
	for _, p := range Presets() {
		assert.Positive(t, p.AddressLine1Max, p.ID)
		assert.Positive(t, p.AddressLine2Max, p.ID)
		assert.Contains(t, []NameFormat{NameFull, NameSplit}, p.NameFormat, p.ID)
		assert.Contains(t, []StateFormat{StateFull, StateAbbr}, p.StateFormat, p.ID)
		assert.Contains(t, []PhoneFormat{PhoneInternational, PhoneLocal}, p.PhoneFormat, p.ID)
		assert.NotEmpty(t, p.Name, p.ID)
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("amazon")
	require.True(t, ok)
	assert.Equal(t, "Amazon", p.Name)
	assert.False(t, p.ShowPccc)

	_, ok = LookupPreset(DefaultPreset)
	assert.True(t, ok)

	_, ok = LookupPreset("Amazon")
	assert.False(t, ok, "ids are case sensitive")
}
