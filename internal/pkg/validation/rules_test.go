package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/pkg/apperrors"
)

func TestRequiredString(t *testing.T) {
	ve := apperrors.NewValidationError()

	assert.True(t, RequiredString(ve, "name", "Algorithms"))
	assert.False(t, ve.HasErrors())

	assert.False(t, RequiredString(ve, "isbn", "   "))
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "isbn", ve.Fields[0].Field)
	assert.Equal(t, apperrors.KindRequired, ve.Fields[0].Kind)
}

func TestRulesAccumulate(t *testing.T) {
	ve := apperrors.NewValidationError()

	RequiredString(ve, "isbn", "")
	RequiredString(ve, "name", "")
	MinFloat(ve, "price", -1, 0)

	require.Len(t, ve.Fields, 3)
	fields := []string{ve.Fields[0].Field, ve.Fields[1].Field, ve.Fields[2].Field}
	assert.Equal(t, []string{"isbn", "name", "price"}, fields)
}

func TestEmail(t *testing.T) {
	valid := []string{"student@example.edu", "a.b+c@uni.ac.uk"}
	for _, v := range valid {
		ve := apperrors.NewValidationError()
		Email(ve, "email", v)
		assert.False(t, ve.HasErrors(), "input %q", v)
	}

	invalid := []string{"plain", "@example.edu", "a@b", "a b@example.edu"}
	for _, v := range invalid {
		ve := apperrors.NewValidationError()
		Email(ve, "email", v)
		assert.True(t, ve.HasErrors(), "input %q", v)
	}
}

func TestMinLength(t *testing.T) {
	ve := apperrors.NewValidationError()
	MinLength(ve, "password", "short", PasswordMinLength)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, apperrors.KindMinLength, ve.Fields[0].Kind)

	ve = apperrors.NewValidationError()
	MinLength(ve, "password", "long-enough-secret", PasswordMinLength)
	assert.False(t, ve.HasErrors())
}

func TestMinIntAndFloat(t *testing.T) {
	ve := apperrors.NewValidationError()
	MinInt(ve, "quantity", 0, 1)
	MinFloat(ve, "price", -0.01, 0)
	assert.Len(t, ve.Fields, 2)

	ve = apperrors.NewValidationError()
	MinInt(ve, "quantity", 1, 1)
	MinFloat(ve, "price", 0, 0)
	assert.False(t, ve.HasErrors())
}

func TestRequiredFloat(t *testing.T) {
	ve := apperrors.NewValidationError()
	price, ok := RequiredFloat(ve, "price", " 39.99 ")
	assert.True(t, ok)
	assert.Equal(t, 39.99, price)
	assert.False(t, ve.HasErrors())

	// A submitted zero is a value, not an absence.
	ve = apperrors.NewValidationError()
	price, ok = RequiredFloat(ve, "price", "0")
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)
	assert.False(t, ve.HasErrors())

	ve = apperrors.NewValidationError()
	_, ok = RequiredFloat(ve, "price", "")
	assert.False(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, apperrors.KindRequired, ve.Fields[0].Kind)

	ve = apperrors.NewValidationError()
	_, ok = RequiredFloat(ve, "price", "free")
	assert.False(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, apperrors.KindInvalid, ve.Fields[0].Kind)
}

func TestRequiredInt(t *testing.T) {
	ve := apperrors.NewValidationError()
	quantity, ok := RequiredInt(ve, "quantity", "3")
	assert.True(t, ok)
	assert.Equal(t, 3, quantity)
	assert.False(t, ve.HasErrors())

	ve = apperrors.NewValidationError()
	_, ok = RequiredInt(ve, "quantity", "   ")
	assert.False(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, apperrors.KindRequired, ve.Fields[0].Kind)

	ve = apperrors.NewValidationError()
	_, ok = RequiredInt(ve, "quantity", "2.5")
	assert.False(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, apperrors.KindInvalid, ve.Fields[0].Kind)
}
