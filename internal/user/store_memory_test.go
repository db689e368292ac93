package user

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndVerify(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "alice", "pw1"))

	u, err := s.Verify(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)

	_, err = s.Verify(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Verify(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateDuplicateKeepsOriginalRecord(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "alice", "pw1"))
	assert.ErrorIs(t, s.Create(ctx, "alice", "other"), ErrUsernameTaken)

	// The original password still verifies; the second one never took.
	_, err := s.Verify(ctx, "alice", "pw1")
	assert.NoError(t, err)
	_, err = s.Verify(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConcurrentCreateSameUsername(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	const n = 8
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Create(ctx, "bob", "pw")
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, ErrUsernameTaken)
		}
	}
	assert.Equal(t, 1, okCount)
}

func TestCreateTrimsUsername(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "  carol  ", "pw"))

	_, err := s.Verify(ctx, "carol", "pw")
	assert.NoError(t, err)
}
