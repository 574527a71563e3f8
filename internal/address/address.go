// Package address converts a structured Korean address into the field set
// international shopping sites ask for on their shipping forms.
//
// Every function in this package is pure: the lookup tables are built once at
// package initialization and never written afterwards, so callers may convert
// concurrently without coordination.
package address

// KoreanAddress is the structured result of a Korean postal-code lookup.
type KoreanAddress struct {
	Zonecode       string `json:"zonecode"`
	RoadAddress    string `json:"roadAddress"`
	JibunAddress   string `json:"jibunAddress"`
	EnglishAddress string `json:"englishAddress"`
	Sido           string `json:"sido"`
	Sigungu        string `json:"sigungu"`
	SigunguEnglish string `json:"sigunguEnglish"`
	Bname          string `json:"bname"`
	Roadname       string `json:"roadname"`
	BuildingName   string `json:"buildingName"`
	Apartment      bool   `json:"apartment"`
}

// ParsedDetail is the building (dong) and unit (ho) found in a free-text
// detail address. Dong and Ho are empty when nothing was recognized, in which
// case Raw should be used as-is.
type ParsedDetail struct {
	Dong string `json:"dong"`
	Ho   string `json:"ho"`
	Raw  string `json:"raw"`
}

// ConvertParams is everything the user supplies for one conversion.
type ConvertParams struct {
	KoreanAddress *KoreanAddress `json:"koreanAddress"`
	DetailAddress string         `json:"detailAddress"`
	UserName      string         `json:"userName"`
	Phone         string         `json:"phone"`
	Pccc          string         `json:"pccc"`
	SitePreset    string         `json:"sitePreset"`
}

// ConvertedAddress is the flat shipping-label field set produced for one site.
type ConvertedAddress struct {
	Site       string     `json:"site"`
	SiteName   string     `json:"siteName"`
	NameFormat NameFormat `json:"nameFormat"`

	FullName  string `json:"fullName"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	AddressLine1        string `json:"addressLine1"`
	AddressLine1Warning bool   `json:"addressLine1Warning"`
	AddressLine1Max     int    `json:"addressLine1Max"`
	AddressLine2        string `json:"addressLine2"`
	AddressLine2Warning bool   `json:"addressLine2Warning"`
	AddressLine2Max     int    `json:"addressLine2Max"`

	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`

	Pccc      string `json:"pccc"`
	PcccValid bool   `json:"pcccValid"`
	ShowPccc  bool   `json:"showPccc"`
}
