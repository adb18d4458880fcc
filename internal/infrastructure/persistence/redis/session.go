package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/adilzhan/libra/pkg/errors"
)

// SessionStore keeps librarian sessions and the JWT blacklist in redis.
// Keys: session:{librarian_id}, blacklist:{token}. The blacklist is how a
// stateless token is revoked before it expires (logout, forced sign-out).
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates the session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession stores the session hash with a TTL matching the refresh token.
func (s *SessionStore) SaveSession(ctx context.Context, librarianID uint, sessionData map[string]interface{}, ttl time.Duration) error {
	key := fmt.Sprintf("session:%d", librarianID)

	if err := s.client.HSet(ctx, key, sessionData).Err(); err != nil {
		return apperrors.Wrap(err, "failed to save session")
	}

	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to set session expiry")
	}

	return nil
}

// GetSession returns the session hash or ErrUnauthorized when absent.
func (s *SessionStore) GetSession(ctx context.Context, librarianID uint) (map[string]string, error) {
	key := fmt.Sprintf("session:%d", librarianID)

	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	return result, nil
}

// DeleteSession removes the session (logout).
func (s *SessionStore) DeleteSession(ctx context.Context, librarianID uint) error {
	key := fmt.Sprintf("session:%d", librarianID)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}

	return nil
}

// AddToBlacklist revokes a token. The TTL only needs to outlive the token.
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to blacklist token")
	}

	return nil
}

// IsInBlacklist reports whether a token has been revoked.
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check blacklist")
	}

	return exists > 0, nil
}
