package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCedula(t *testing.T) {
	assert.True(t, IsValidCedula("123456"))
	assert.True(t, IsValidCedula("1098765432"))
	assert.False(t, IsValidCedula("12345"))      // too short
	assert.False(t, IsValidCedula("12345678901")) // too long
	assert.False(t, IsValidCedula("10.987.654"))
	assert.False(t, IsValidCedula(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-15")
	assert.True(t, ok)
	_, ok = IsValidDate("2024-3-15")
	assert.False(t, ok)
	_, ok = IsValidDate("15/03/2024")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2024-03"))
	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-03-01"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "salary", Message: "must be non-negative"},
		{Field: "cedula", Message: "is required"},
	}
	assert.Equal(t, "salary: must be non-negative; cedula: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"salary": "must be non-negative",
		"cedula": "is required",
	}, errs.ToMap())
}
