package address

import (
	"slices"

	"github.com/samber/lo"
)

// NameFormat selects whether a site asks for one name field or two.
type NameFormat string

const (
	NameFull  NameFormat = "fullName"
	NameSplit NameFormat = "split"
)

// SitePreset describes the shipping form of one shopping site. The length
// limits are the sites' own field limits.
type SitePreset struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	NameFormat      NameFormat  `json:"nameFormat"`
	AddressLine1Max int         `json:"addressLine1Max"`
	AddressLine2Max int         `json:"addressLine2Max"`
	StateFormat     StateFormat `json:"stateFormat"`
	PhoneFormat     PhoneFormat `json:"phoneFormat"`
	ShowPccc        bool        `json:"showPccc"`
}

// DefaultPreset is used by front ends when the user has not picked a site.
const DefaultPreset = "general"

var presets = map[string]SitePreset{
	"amazon": {
		ID:              "amazon",
		Name:            "Amazon",
		NameFormat:      NameFull,
		AddressLine1Max: 60,
		AddressLine2Max: 60,
		StateFormat:     StateFull,
		PhoneFormat:     PhoneInternational,
		ShowPccc:        false,
	},
	"aliexpress": {
		ID:              "aliexpress",
		Name:            "AliExpress",
		NameFormat:      NameFull,
		AddressLine1Max: 64,
		AddressLine2Max: 64,
		StateFormat:     StateFull,
		PhoneFormat:     PhoneLocal,
		ShowPccc:        true,
	},
	"iherb": {
		ID:              "iherb",
		Name:            "iHerb",
		NameFormat:      NameSplit,
		AddressLine1Max: 35,
		AddressLine2Max: 35,
		StateFormat:     StateFull,
		PhoneFormat:     PhoneLocal,
		ShowPccc:        true,
	},
	"ebay": {
		ID:              "ebay",
		Name:            "eBay",
		NameFormat:      NameFull,
		AddressLine1Max: 50,
		AddressLine2Max: 50,
		StateFormat:     StateAbbr,
		PhoneFormat:     PhoneInternational,
		ShowPccc:        false,
	},
	"general": {
		ID:              "general",
		Name:            "General",
		NameFormat:      NameSplit,
		AddressLine1Max: 100,
		AddressLine2Max: 100,
		StateFormat:     StateFull,
		PhoneFormat:     PhoneInternational,
		ShowPccc:        true,
	},
}

// LookupPreset returns the preset for a site id.
func LookupPreset(id string) (SitePreset, bool) {
	p, ok := presets[id]
	return p, ok
}

// PresetIDs returns all site ids in sorted order.
func PresetIDs() []string {
	ids := lo.Keys(presets)
	slices.Sort(ids)
	return ids
}

// Presets returns all presets sorted by id.
func Presets() []SitePreset {
	return lo.Map(PresetIDs(), func(id string, _ int) SitePreset {
		return presets[id]
	})
}
