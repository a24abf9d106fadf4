package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, domain.Session{User: "alice", Email: "alice@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.User)
	assert.Equal(t, "alice@x.com", sess.Email)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	_, err := s.Get(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, domain.Session{User: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Nanosecond)
	ctx := context.Background()

	id, err := s.Create(ctx, domain.Session{User: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionIDsAreUnique(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := s.Create(ctx, domain.Session{User: "alice", Email: "a@x.com"})
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
