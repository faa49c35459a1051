package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestSessionRoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := &domain.Session{ID: "s1", RefreshToken: "1//refresh", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "1//refresh", got.RefreshToken)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))

	ttl := mr.TTL(sessionKey("s1"))
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s2", RefreshToken: "r", ExpiresAt: now.Add(time.Minute)}))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "s2")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestSessionExpiredByClock(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s3", RefreshToken: "r", ExpiresAt: now.Add(time.Minute)}))

	store.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := store.Get(ctx, "s3")
	require.ErrorIs(t, err, port.ErrSessionNotFound)

	err = store.Save(ctx, &domain.Session{ID: "s4", ExpiresAt: now})
	require.Error(t, err)
}

func TestSessionUnknown(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, port.ErrSessionNotFound)
	require.NoError(t, store.Delete(context.Background(), "nope"))
}
