package profile

import (
	"strconv"
	"strings"

	"networx-client/internal/common/errors"
)

// Field names the profile attributes using the peer's wire spelling,
// so the form, the update dispatch and the request body agree on one
// identifier per attribute.
type Field string

const (
	FieldAge                       Field = "Age"
	FieldGender                    Field = "Gender"
	FieldLocation                  Field = "Location"
	FieldIncome                    Field = "Income"
	FieldInterests                 Field = "Interests"
	FieldTotalSpending             Field = "Total_Spending"
	FieldProductCategoryPreference Field = "Product_Category_Preference"
	FieldTimeSpentOnSiteMinutes    Field = "Time_Spent_on_Site_Minutes"
)

// Fields returns all profile fields in form order.
func Fields() []Field {
	return []Field{
		FieldAge,
		FieldGender,
		FieldLocation,
		FieldIncome,
		FieldInterests,
		FieldTotalSpending,
		FieldProductCategoryPreference,
		FieldTimeSpentOnSiteMinutes,
	}
}

// setters is the static dispatch from field to typed coercion. Numeric
// fields fall back to 0 on parse failure; the rest store input
// verbatim.
var setters = map[Field]func(*Profile, string){
	FieldAge:      func(p *Profile, raw string) { p.Age = parseIntOrZero(raw) },
	FieldGender:   func(p *Profile, raw string) { p.Gender = raw },
	FieldLocation: func(p *Profile, raw string) { p.Location = raw },
	FieldIncome:   func(p *Profile, raw string) { p.Income = parseIntOrZero(raw) },
	FieldInterests:                 func(p *Profile, raw string) { p.Interests = raw },
	FieldTotalSpending:             func(p *Profile, raw string) { p.TotalSpending = parseIntOrZero(raw) },
	FieldProductCategoryPreference: func(p *Profile, raw string) { p.ProductCategoryPreference = raw },
	FieldTimeSpentOnSiteMinutes:    func(p *Profile, raw string) { p.TimeSpentOnSiteMinutes = parseIntOrZero(raw) },
}

// Set updates one field from raw text input. Unknown field names are
// rejected; malformed numeric input silently becomes 0.
func (p *Profile) Set(field Field, raw string) error {
	set, ok := setters[field]
	if !ok {
		return errors.NewUnknownFieldError(string(field))
	}
	set(p, raw)
	return nil
}

// IsNumeric reports whether the field parses as an integer.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldAge, FieldIncome, FieldTotalSpending, FieldTimeSpentOnSiteMinutes:
		return true
	}
	return false
}

// Label returns the field name with underscores spaced out for prompts.
func (f Field) Label() string {
	return strings.ReplaceAll(string(f), "_", " ")
}

func parseIntOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// Value returns the current value of a field as display text.
func (p Profile) Value(f Field) string {
	switch f {
	case FieldAge:
		return strconv.Itoa(p.Age)
	case FieldGender:
		return p.Gender
	case FieldLocation:
		return p.Location
	case FieldIncome:
		return strconv.Itoa(p.Income)
	case FieldInterests:
		return p.Interests
	case FieldTotalSpending:
		return strconv.Itoa(p.TotalSpending)
	case FieldProductCategoryPreference:
		return p.ProductCategoryPreference
	case FieldTimeSpentOnSiteMinutes:
		return strconv.Itoa(p.TimeSpentOnSiteMinutes)
	}
	return ""
}
