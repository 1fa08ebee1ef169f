package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type climbModel struct {
	Name     string   `json:"name" validate:"required"`
	Rating   *float64 `json:"rating" validate:"required"`
	Attempts int      `json:"attempts" validate:"gte=0"`
	Hidden   string   `json:"-"`
}

func (climbModel) ValidationMessages() map[string]string {
	return map[string]string{"name": "Please add a name"}
}

func TestValidateModel_FieldMap(t *testing.T) {
	err := ValidateModel(&climbModel{Attempts: -1})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{
		"name":     "Please add a name",
		"rating":   "rating is required",
		"attempts": "attempts must be at least 0",
	}, verr.Fields)
}

func TestValidateModel_Valid(t *testing.T) {
	rating := 0.0
	assert.NoError(t, ValidateModel(&climbModel{Name: "ok", Rating: &rating}))
}

func TestFieldErrors_NotAValidatorError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
}
