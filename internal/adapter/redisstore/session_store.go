package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gads-manager/internal/core/domain"
	"gads-manager/internal/core/port"
)

const sessionKeyPrefix = "gads:session:"

// SessionStore implements port.SessionStore on Redis. Sessions are stored as
// JSON with a TTL matching their expiry.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore returns a store using client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Get loads a session. Missing and expired sessions both yield
// port.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err = json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !sess.ExpiresAt.IsZero() && s.now().After(sess.ExpiresAt) {
		return nil, port.ErrSessionNotFound
	}
	return &sess, nil
}

// Save stores the session until its ExpiresAt. A session without expiry
// never expires.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return fmt.Errorf("session %s already expired", sess.ID)
		}
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err()
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
