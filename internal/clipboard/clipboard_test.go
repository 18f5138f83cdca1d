package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	var cb Clipboard = NewMemory("No.\tQuantity")

	text, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "No.\tQuantity", text)

	require.NoError(t, cb.WriteText("24.11480"))
	text, err = cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "24.11480", text)
}

func TestMemoryFail(t *testing.T) {
	cb := NewMemory("keep")
	cb.Fail(errors.New("permission denied"))

	_, err := cb.ReadText()
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "permission denied")

	require.ErrorIs(t, cb.WriteText("lost"), ErrUnavailable)

	cb.Fail(nil)
	text, err := cb.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "keep", text)
}
