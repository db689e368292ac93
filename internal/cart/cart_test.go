package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	c := New()

	assert.True(t, c.Toggle(1))
	assert.True(t, c.Has(1))
	assert.Equal(t, 1, c.Len())

	assert.False(t, c.Toggle(1))
	assert.False(t, c.Has(1))
	assert.Equal(t, 0, c.Len())
}

func TestTogglePairRestoresOriginalState(t *testing.T) {
	c := New(2, 5)

	for _, id := range []int64{1, 2, 5, 99} {
		before := c.Has(id)
		c.Toggle(id)
		c.Toggle(id)
		assert.Equal(t, before, c.Has(id), "id %d", id)
	}
	assert.Equal(t, []int64{2, 5}, c.IDs())
}

func TestToggleOnZeroValue(t *testing.T) {
	var c Cart

	assert.False(t, c.Has(3))
	assert.True(t, c.Toggle(3))
	assert.Equal(t, []int64{3}, c.IDs())
}

func TestIDsSorted(t *testing.T) {
	c := New(42, 3, 17, 1)

	assert.Equal(t, []int64{1, 3, 17, 42}, c.IDs())
}

func TestIDsEmpty(t *testing.T) {
	c := New()

	assert.Empty(t, c.IDs())
	assert.Equal(t, 0, c.Len())
}
