// Package profile holds the behavioral profile a user submits to
// request similar-user matches, together with its field catalog and
// input coercion rules.
package profile

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"networx-client/internal/common/errors"
)

// Profile is the eight-field behavioral profile. The collection stage
// is its only writer; a copy is handed to the client on submission.
type Profile struct {
	Age                       int
	Gender                    string
	Location                  string
	Income                    int
	Interests                 string
	TotalSpending             int
	ProductCategoryPreference string
	TimeSpentOnSiteMinutes    int
}

// Form defaults match the values the profile form starts with.
const (
	DefaultAge                    = 25
	DefaultIncome                 = 50000
	DefaultTotalSpending          = 1000
	DefaultTimeSpentOnSiteMinutes = 30
)

// Domain bounds, surfaced as form hints only. Submission is never
// blocked on them.
const (
	MinAge                 = 13
	MaxAge                 = 100
	MaxTimeSpentOnSiteMins = 1440
)

var genderOptions = []string{"Male", "Female", "Other", "Prefer not to say"}

var categoryOptions = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports & Outdoors",
	"Beauty & Personal Care", "Books", "Toys & Games", "Food & Beverages",
}

// New returns a profile seeded with the form defaults.
func New() Profile {
	return Profile{
		Age:                    DefaultAge,
		Income:                 DefaultIncome,
		TotalSpending:          DefaultTotalSpending,
		TimeSpentOnSiteMinutes: DefaultTimeSpentOnSiteMinutes,
	}
}

// Genders returns the selectable gender options.
func Genders() []string {
	out := make([]string, len(genderOptions))
	copy(out, genderOptions)
	return out
}

// Categories returns the product category catalog.
func Categories() []string {
	out := make([]string, len(categoryOptions))
	copy(out, categoryOptions)
	return out
}

// ValidateRequired enforces required-field presence, the only check
// that blocks a submission. Numeric fields always carry a value (blank
// or malformed input becomes 0), so only the text fields are checked.
func (p Profile) ValidateRequired() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Gender, validation.Required),
		validation.Field(&p.Location, validation.Required),
		validation.Field(&p.Interests, validation.Required),
		validation.Field(&p.ProductCategoryPreference, validation.Required),
	)
	if err != nil {
		return errors.NewMissingRequiredFieldsError(err.Error())
	}
	return nil
}

// Hints reports advisory domain violations. These mirror the form's
// min/max attributes and never block a submission.
func (p Profile) Hints() []string {
	var hints []string
	if p.Age < MinAge || p.Age > MaxAge {
		hints = append(hints, fmt.Sprintf("age %d outside [%d,%d]", p.Age, MinAge, MaxAge))
	}
	if p.Income < 0 {
		hints = append(hints, fmt.Sprintf("income %d is negative", p.Income))
	}
	if p.TotalSpending < 0 {
		hints = append(hints, fmt.Sprintf("total spending %d is negative", p.TotalSpending))
	}
	if p.TimeSpentOnSiteMinutes < 0 || p.TimeSpentOnSiteMinutes > MaxTimeSpentOnSiteMins {
		hints = append(hints, fmt.Sprintf("time on site %d outside [0,%d]", p.TimeSpentOnSiteMinutes, MaxTimeSpentOnSiteMins))
	}
	if p.Gender != "" && !contains(genderOptions, p.Gender) {
		hints = append(hints, fmt.Sprintf("gender %q not in the catalog", p.Gender))
	}
	if p.ProductCategoryPreference != "" && !contains(categoryOptions, p.ProductCategoryPreference) {
		hints = append(hints, fmt.Sprintf("category %q not in the catalog", p.ProductCategoryPreference))
	}
	return hints
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
