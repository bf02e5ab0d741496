package schemarules

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringRule(t *testing.T) {
	r := NewStringRule(func(s string) bool { return s == "ok" }, "must be ok")

	require.NoError(t, r.Validate("ok"))
	require.NoError(t, r.Validate(""))
	require.NoError(t, r.Validate(nil))

	err := r.Validate("nope")
	require.Error(t, err)
	assert.Equal(t, "must be ok", err.Error())

	assert.Error(t, r.Validate(42))
}

func TestNewStringRuleWithError(t *testing.T) {
	e := validation.NewError("validation_is_ok", "should have been ok")
	r := NewStringRuleWithError(func(s string) bool { return s == "ok" }, e, "must be ok")

	err := r.Validate("nope")
	require.Error(t, err)
	assert.Equal(t, "should have been ok", err.Error())
}

func TestNewStringRuleDecimalMax(t *testing.T) {
	r := NewStringRuleDecimalMax(2)

	require.NoError(t, r.Validate("1"))
	require.NoError(t, r.Validate("1.2"))
	require.NoError(t, r.Validate("1.23"))

	err := r.Validate("1.234")
	require.Error(t, err)
	assert.Equal(t, "no more than 2 decimals", err.Error())
}
