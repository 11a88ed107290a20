package match

// Band is the qualitative similarity classification.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandGood      Band = "Good"
	BandFair      Band = "Fair"
	BandLow       Band = "Low"
)

// Label returns the band's display label.
func (b Band) Label() string {
	return string(b) + " Match"
}

// Rating pairs a band with its display color.
type Rating struct {
	Band  Band
	Color string
}

// Classify maps a similarity score to its band. Boundaries belong to
// the higher band. Scores outside [0,1] fall through to the nearest
// rule: anything >= 0.9 is Excellent, anything below 0.7 (negatives
// included) is Low.
func Classify(score float64) Rating {
	switch {
	case score >= 0.90:
		return Rating{Band: BandExcellent, Color: "green"}
	case score >= 0.80:
		return Rating{Band: BandGood, Color: "blue"}
	case score >= 0.70:
		return Rating{Band: BandFair, Color: "yellow"}
	default:
		return Rating{Band: BandLow, Color: "red"}
	}
}
