package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreListKeepsSeedOrder(t *testing.T) {
	seed := []Product{
		{ID: 7, Name: "third"},
		{ID: 2, Name: "first"},
		{ID: 5, Name: "second"},
	}
	s := NewMemStore(seed)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []int64{7, 2, 5}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestMemStoreGet(t *testing.T) {
	s := NewMemStore(Seed())

	p, ok, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Premium Cat Tower", p.Name)

	_, ok, err = s.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeedHasUniqueIDs(t *testing.T) {
	seen := map[int64]bool{}
	for _, p := range Seed() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.Price)
	}
}
