package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := NewHistory("")
	assert.Equal(t, StartPath, h.CurrentPath())
	assert.False(t, h.Back())

	h.Navigate("/information/2")
	h.Navigate("/information/3")
	assert.Equal(t, 3, h.Len())

	assert.True(t, h.Back())
	assert.Equal(t, "/information/2", h.CurrentPath())

	// navigating drops the forward entry
	h.Navigate("/information/9")
	assert.False(t, h.Forward())
	assert.Equal(t, 3, h.Len())

	h.Replace("/information/10")
	assert.Equal(t, "/information/10", h.CurrentPath())
	assert.Equal(t, 3, h.Len())

	h.Navigate("/information/10")
	assert.Equal(t, 3, h.Len())

	assert.True(t, h.Back())
	assert.True(t, h.Forward())
	assert.Equal(t, "/information/10", h.CurrentPath())
}
