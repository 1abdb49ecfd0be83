package common

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_NoErrors(t *testing.T) {
	v := NewValidator()
	v.Field("name", "Finca El Paraíso", Required)
	v.Field("locale", "en", OneOf("en", "es"))
	v.Field("max_pages", 12, IntRange(1, 1000))

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
	assert.Empty(t, v.ErrorMessage())
}

func TestValidator_CollectsPerFieldMessages(t *testing.T) {
	v := NewValidator()
	v.Field("text", "", Required)
	v.Field("locale", "fr", OneOf("en", "es"))

	require.True(t, v.HasErrors())
	require.Len(t, v.Errors(), 2)

	err := v.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "text")
	assert.Contains(t, err.Error(), "locale")
}

func TestRequired(t *testing.T) {
	assert.NotNil(t, Required("f", ""))
	assert.NotNil(t, Required("f", "   "))
	assert.NotNil(t, Required("f", nil))
	assert.Nil(t, Required("f", "x"))
}

func TestMaxBytes(t *testing.T) {
	rule := MaxBytes(10)
	assert.Nil(t, rule("f", "short"))
	assert.NotNil(t, rule("f", strings.Repeat("a", 11)))
	// non-strings pass through
	assert.Nil(t, rule("f", 42))
}

func TestIntRange(t *testing.T) {
	rule := IntRange(1, 1000)
	assert.Nil(t, rule("f", 500))
	assert.Nil(t, rule("f", 0)) // zero means "not set"
	assert.NotNil(t, rule("f", 1001))
	assert.NotNil(t, rule("f", -1))
}

func TestUUID(t *testing.T) {
	assert.Nil(t, UUID("f", "a9d4f8e2-0f64-4f3e-9a1c-2b7d6e5f4a3b"))
	assert.Nil(t, UUID("f", "")) // optional unless paired with Required
	assert.NotNil(t, UUID("f", "not-a-uuid"))
}

func TestOneOf(t *testing.T) {
	rule := OneOf("en", "es")
	assert.Nil(t, rule("f", "en"))
	assert.Nil(t, rule("f", "ES")) // case-insensitive
	assert.Nil(t, rule("f", ""))
	assert.NotNil(t, rule("f", "fr"))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewAppError("SOME_CODE", "something failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "SOME_CODE")
	assert.Contains(t, err.Error(), "something failed")
}
