package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "networx-client/internal/common/errors"
)

func TestSet_NumericCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "42", 42},
		{"surrounding whitespace", "  42  ", 42},
		{"negative typed directly", "-100", -100},
		{"malformed input falls back to zero", "abc", 0},
		{"empty input falls back to zero", "", 0},
		{"float input falls back to zero", "12.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			require.NoError(t, p.Set(FieldIncome, tt.raw))
			assert.Equal(t, tt.want, p.Income)
		})
	}
}

func TestSet_AllNumericFields(t *testing.T) {
	p := New()
	require.NoError(t, p.Set(FieldAge, "33"))
	require.NoError(t, p.Set(FieldIncome, "60000"))
	require.NoError(t, p.Set(FieldTotalSpending, "2500"))
	require.NoError(t, p.Set(FieldTimeSpentOnSiteMinutes, "45"))

	assert.Equal(t, 33, p.Age)
	assert.Equal(t, 60000, p.Income)
	assert.Equal(t, 2500, p.TotalSpending)
	assert.Equal(t, 45, p.TimeSpentOnSiteMinutes)
}

func TestSet_StringFieldsStoredVerbatim(t *testing.T) {
	p := New()
	require.NoError(t, p.Set(FieldGender, "Male"))
	require.NoError(t, p.Set(FieldLocation, "  New York, NY "))
	require.NoError(t, p.Set(FieldInterests, "Tech"))
	require.NoError(t, p.Set(FieldProductCategoryPreference, "Electronics"))

	assert.Equal(t, "Male", p.Gender)
	assert.Equal(t, "  New York, NY ", p.Location, "string input is not trimmed")
	assert.Equal(t, "Tech", p.Interests)
	assert.Equal(t, "Electronics", p.ProductCategoryPreference)
}

func TestSet_UnknownField(t *testing.T) {
	p := New()
	err := p.Set(Field("Shoe_Size"), "42")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUnknownField, apperrors.CodeOf(err))
}

func TestFields_FormOrder(t *testing.T) {
	assert.Equal(t, []Field{
		FieldAge, FieldGender, FieldLocation, FieldIncome,
		FieldInterests, FieldTotalSpending,
		FieldProductCategoryPreference, FieldTimeSpentOnSiteMinutes,
	}, Fields())
}

func TestField_IsNumeric(t *testing.T) {
	numeric := map[Field]bool{
		FieldAge: true, FieldIncome: true,
		FieldTotalSpending: true, FieldTimeSpentOnSiteMinutes: true,
		FieldGender: false, FieldLocation: false,
		FieldInterests: false, FieldProductCategoryPreference: false,
	}
	for f, want := range numeric {
		assert.Equal(t, want, f.IsNumeric(), string(f))
	}
}

func TestValue_RoundTrip(t *testing.T) {
	p := New()
	for _, f := range Fields() {
		raw := p.Value(f)
		q := New()
		require.NoError(t, q.Set(f, raw))
		assert.Equal(t, p.Value(f), q.Value(f), string(f))
	}
}

func TestField_Label(t *testing.T) {
	assert.Equal(t, "Total Spending", FieldTotalSpending.Label())
	assert.Equal(t, "Age", FieldAge.Label())
}
