package transliteration

import (
	"strings"
)

// RomanizedName is a person's name split for shipping forms.
type RomanizedName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

// RomanizeKoreanName romanizes a Korean name, or splits an already-Latin one.
//
// Hangul names are returned given-name first ("김민준" -> "Minjun Kim") because
// that is what overseas shipping forms expect. Input that already contains
// Latin letters is split on whitespace without reordering.
func RomanizeKoreanName(input string) RomanizedName {
	name := strings.TrimSpace(input)
	if name == "" {
		return RomanizedName{}
	}

	if containsLatin(name) {
		fields := strings.Fields(name)
		return RomanizedName{
			FirstName: fields[0],
			LastName:  strings.Join(fields[1:], " "),
			FullName:  name,
		}
	}

	name = strings.Join(strings.Fields(name), "")
	runes := []rune(name)
	if len(runes) == 1 {
		single := Capitalize(RomanizeSyllables(name))
		return RomanizedName{FirstName: single, FullName: single}
	}

	surname, given := splitSurname(name)
	lastName := romanizeSurname(surname)
	firstName := Capitalize(RomanizeSyllables(given))

	return RomanizedName{
		FirstName: firstName,
		LastName:  lastName,
		FullName:  strings.TrimSpace(firstName + " " + lastName),
	}
}

// splitSurname separates the family name from the given name. Compound
// surnames only apply when something is left over for the given name.
func splitSurname(name string) (string, string) {
	for _, compound := range compoundSurnames {
		if strings.HasPrefix(name, compound) && len([]rune(name)) > len([]rune(compound)) {
			return compound, strings.TrimPrefix(name, compound)
		}
	}
	runes := []rune(name)
	return string(runes[0]), string(runes[1:])
}

func romanizeSurname(surname string) string {
	if v, ok := surnames[surname]; ok {
		return v
	}
	return Capitalize(RomanizeSyllables(surname))
}
