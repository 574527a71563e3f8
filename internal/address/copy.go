package address

import (
	"strings"

	"github.com/samber/lo"
)

// Field is one labelled value of a converted address, in display order.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields lists the populated fields in the order shipping forms ask for them:
// name, address lines, city, state, zip, country, phone and, for sites that
// need it, the customs code.
func (c ConvertedAddress) Fields() []Field {
	var fields []Field
	if c.NameFormat == NameSplit {
		fields = append(fields,
			Field{"First Name", c.FirstName},
			Field{"Last Name", c.LastName},
		)
	} else {
		fields = append(fields, Field{"Full Name", c.FullName})
	}
	fields = append(fields,
		Field{"Address Line 1", c.AddressLine1},
		Field{"Address Line 2", c.AddressLine2},
		Field{"City", c.City},
		Field{"State", c.State},
		Field{"ZIP Code", c.ZipCode},
		Field{"Country", c.Country},
		Field{"Phone", c.Phone},
	)
	if c.ShowPccc {
		fields = append(fields, Field{"PCCC", c.Pccc})
	}

	return lo.Filter(fields, func(f Field, _ int) bool {
		return f.Value != ""
	})
}

// FormatForCopy renders all populated fields as "Label: value" lines.
func FormatForCopy(c ConvertedAddress) string {
	lines := lo.Map(c.Fields(), func(f Field, _ int) string {
		return f.Label + ": " + f.Value
	})
	return strings.Join(lines, "\n")
}
