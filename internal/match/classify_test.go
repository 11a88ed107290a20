package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		score float64
		band  Band
		color string
	}{
		{0.95, BandExcellent, "green"},
		{0.90, BandExcellent, "green"}, // boundary belongs to the higher band
		{0.89, BandGood, "blue"},
		{0.80, BandGood, "blue"},
		{0.79, BandFair, "yellow"},
		{0.70, BandFair, "yellow"},
		{0.69, BandLow, "red"},
		{0.0, BandLow, "red"},
	}

	for _, tt := range tests {
		r := Classify(tt.score)
		assert.Equal(t, tt.band, r.Band, "score %v", tt.score)
		assert.Equal(t, tt.color, r.Color, "score %v", tt.score)
	}
}

func TestClassify_OutOfRangeFallsThrough(t *testing.T) {
	assert.Equal(t, BandExcellent, Classify(1.5).Band, "above 1 still Excellent")
	assert.Equal(t, BandLow, Classify(-0.2).Band, "negative still Low")
}

func TestClassify_Deterministic(t *testing.T) {
	for _, boundary := range []float64{0.70, 0.80, 0.90} {
		first := Classify(boundary)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Classify(boundary))
		}
	}
}

func TestBand_Label(t *testing.T) {
	assert.Equal(t, "Excellent Match", BandExcellent.Label())
	assert.Equal(t, "Good Match", BandGood.Label())
	assert.Equal(t, "Fair Match", BandFair.Label())
	assert.Equal(t, "Low Match", BandLow.Label())
}
