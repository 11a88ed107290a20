// Package match turns raw peer records into display-ready matches and
// classifies their similarity scores.
package match

import (
	"networx-client/internal/profile"
	"networx-client/internal/recommend"
)

// Match is the display-ready entity, immutable once created, alive for
// one results view.
type Match struct {
	Name                      string
	UserID                    string
	Age                       int
	Gender                    string
	Location                  string
	Interests                 string
	Income                    int
	TotalSpending             int
	ProductCategoryPreference string
	TimeSpentOnSiteMinutes    int
	SimilarityScore           float64
}

// Normalize maps raw peer records to matches, one output per input,
// order preserved. The peer does not return income, spending, category
// or time on site; those four fields are superimposed from the
// requester's own submitted profile. An absent similarity percentage
// counts as 0. The score is not clamped.
func Normalize(raw []recommend.RawRecommendation, original profile.Profile) []Match {
	out := make([]Match, len(raw))
	for i, r := range raw {
		pct := 0.0
		if r.SimilarityPercent != nil {
			pct = *r.SimilarityPercent
		}
		out[i] = Match{
			Name:                      r.Name,
			UserID:                    r.UserID,
			Age:                       r.Age,
			Gender:                    r.Gender,
			Location:                  r.Location,
			Interests:                 r.Interests,
			Income:                    original.Income,
			TotalSpending:             original.TotalSpending,
			ProductCategoryPreference: original.ProductCategoryPreference,
			TimeSpentOnSiteMinutes:    original.TimeSpentOnSiteMinutes,
			SimilarityScore:           pct / 100,
		}
	}
	return out
}
