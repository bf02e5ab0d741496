package schemarules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIn(t *testing.T) {
	r := In("draft", "sent")

	require.NoError(t, r.Validate("draft"))
	require.NoError(t, r.Validate(""))
	require.NoError(t, r.Validate(nil))

	err := r.Validate("archived")
	require.Error(t, err)
	// The error names both the allowed set and the rejected value.
	assert.Equal(t, "must be one of 'draft', 'sent' got 'archived'", err.Error())
}

func TestIn_NumbersFromJSON(t *testing.T) {
	r := In(1.0, 2.0)
	require.NoError(t, r.Validate(float64(1)))
	require.Error(t, r.Validate(float64(3)))
}
