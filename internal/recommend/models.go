package recommend

import "networx-client/internal/profile"

// Request is the peer's submission schema. Field names are
// case-sensitive and fixed by the peer contract.
type Request struct {
	Age                       int    `json:"Age"`
	Gender                    string `json:"Gender"`
	Location                  string `json:"Location"`
	Income                    int    `json:"Income"`
	Interests                 string `json:"Interests"`
	TotalSpending             int    `json:"Total_Spending"`
	ProductCategoryPreference string `json:"Product_Category_Preference"`
	TimeSpentOnSiteMinutes    int    `json:"Time_Spent_on_Site_Minutes"`
}

// NewRequest serializes a profile into the peer schema.
func NewRequest(p profile.Profile) Request {
	return Request{
		Age:                       p.Age,
		Gender:                    p.Gender,
		Location:                  p.Location,
		Income:                    p.Income,
		Interests:                 p.Interests,
		TotalSpending:             p.TotalSpending,
		ProductCategoryPreference: p.ProductCategoryPreference,
		TimeSpentOnSiteMinutes:    p.TimeSpentOnSiteMinutes,
	}
}

// RawRecommendation is one record of the peer's response array,
// received per call and discarded after normalization. The similarity
// percentage may be absent.
type RawRecommendation struct {
	Name              string   `json:"Name"`
	UserID            string   `json:"User_ID"`
	Age               int      `json:"Age"`
	Gender            string   `json:"Gender"`
	Location          string   `json:"Location"`
	Interests         string   `json:"Interests"`
	SimilarityPercent *float64 `json:"Similarity (%),omitempty"`
}
