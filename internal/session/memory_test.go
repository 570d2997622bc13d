package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_IdleExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryBackend(10 * time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", "s:UserName", "alice"))

	now = now.Add(9 * time.Minute)
	ok, err := m.Touch(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(9 * time.Minute)
	v, ok, err := m.Get(ctx, "a", "s:UserName")
	require.NoError(t, err)
	assert.True(t, ok, "touch should have extended the record")
	assert.Equal(t, "alice", v)

	now = now.Add(10 * time.Minute)
	_, ok, err = m.Get(ctx, "a", "s:UserName")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.sessions)
}

func TestMemoryBackend_TouchUnknownIsNoop(t *testing.T) {
	m := NewMemoryBackend(time.Minute)
	ok, err := m.Touch(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.sessions)
}
