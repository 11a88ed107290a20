package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "networx-client/internal/common/errors"
)

func completedProfile() Profile {
	p := New()
	p.Gender = "Male"
	p.Location = "NY"
	p.Interests = "Tech"
	p.ProductCategoryPreference = "Electronics"
	return p
}

func TestNew_Defaults(t *testing.T) {
	p := New()

	assert.Equal(t, 25, p.Age)
	assert.Equal(t, 50000, p.Income)
	assert.Equal(t, 1000, p.TotalSpending)
	assert.Equal(t, 30, p.TimeSpentOnSiteMinutes)
	assert.Empty(t, p.Gender)
	assert.Empty(t, p.Location)
	assert.Empty(t, p.Interests)
	assert.Empty(t, p.ProductCategoryPreference)
}

func TestCatalogs(t *testing.T) {
	assert.Equal(t, []string{"Male", "Female", "Other", "Prefer not to say"}, Genders())
	assert.Len(t, Categories(), 8)
	assert.Contains(t, Categories(), "Electronics")
	assert.Contains(t, Categories(), "Food & Beverages")
}

func TestCatalogs_ReturnCopies(t *testing.T) {
	Genders()[0] = "mutated"
	Categories()[0] = "mutated"

	assert.Equal(t, "Male", Genders()[0])
	assert.Equal(t, "Electronics", Categories()[0])
}

func TestValidateRequired(t *testing.T) {
	t.Run("complete profile passes", func(t *testing.T) {
		require.NoError(t, completedProfile().ValidateRequired())
	})

	t.Run("missing text field blocks submission", func(t *testing.T) {
		for _, clear := range map[string]func(*Profile){
			"gender":    func(p *Profile) { p.Gender = "" },
			"location":  func(p *Profile) { p.Location = "" },
			"interests": func(p *Profile) { p.Interests = "" },
			"category":  func(p *Profile) { p.ProductCategoryPreference = "" },
		} {
			p := completedProfile()
			clear(&p)
			err := p.ValidateRequired()
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeMissingRequiredFields, apperrors.CodeOf(err))
		}
	})

	t.Run("numeric zero still counts as present", func(t *testing.T) {
		p := completedProfile()
		p.Age = 0
		p.Income = 0
		p.TotalSpending = 0
		p.TimeSpentOnSiteMinutes = 0
		require.NoError(t, p.ValidateRequired())
	})

	t.Run("negative income is not rejected here", func(t *testing.T) {
		p := completedProfile()
		p.Income = -100
		require.NoError(t, p.ValidateRequired())
	})
}

func TestHints(t *testing.T) {
	t.Run("clean profile has no hints", func(t *testing.T) {
		assert.Empty(t, completedProfile().Hints())
	})

	t.Run("out of domain values are advisory only", func(t *testing.T) {
		p := completedProfile()
		p.Age = 7
		p.Income = -1
		p.TimeSpentOnSiteMinutes = 2000
		p.Gender = "Unknown"
		p.ProductCategoryPreference = "Rockets"

		hints := p.Hints()
		assert.Len(t, hints, 5)
		require.NoError(t, p.ValidateRequired())
	})
}
