package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundtrip(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess := store.Create(7)
	require.NotEmpty(t, sess.ID)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, uint(7), got.UserID)

	_, ok = store.Get("no-such-session")
	assert.False(t, ok)
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewSessionStore(time.Hour)

	a := store.Create(1)
	b := store.Create(1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionExpiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)

	sess := store.Create(7)
	_, ok := store.Get(sess.ID)
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	_, ok = store.Get(sess.ID)
	assert.False(t, ok, "expired sessions must not resolve")
}

func TestSessionDestroy(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess := store.Create(7)
	store.Destroy(sess.ID)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	expired := store.Create(1)

	time.Sleep(30 * time.Millisecond)

	store.ttl = time.Hour
	alive := store.Create(2)

	assert.Equal(t, 1, store.Sweep())

	_, ok := store.Get(expired.ID)
	assert.False(t, ok)
	_, ok = store.Get(alive.ID)
	assert.True(t, ok)
}
