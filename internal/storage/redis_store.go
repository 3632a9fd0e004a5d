package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MBahyeldin/online-shoping/domain"
)

// RedisStore implements domain.CredentialStore on Redis. Used when the
// storefront shares its persisted session with other local tooling. No TTL is
// applied: session expiry is the backend's job and surfaces as a 401.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed credential store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "storefront:session:"}
}

func (s *RedisStore) tokenKey() string { return s.prefix + "token" }
func (s *RedisStore) userKey() string  { return s.prefix + "user" }

// Save implements domain.CredentialStore.
func (s *RedisStore) Save(ctx context.Context, token string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.client.Set(ctx, s.tokenKey(), token, 0).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, s.userKey(), data, 0).Err()
}

// Load implements domain.CredentialStore.
func (s *RedisStore) Load(ctx context.Context) (string, *domain.User, error) {
	token, err := s.client.Get(ctx, s.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return "", nil, err
	}
	data, err := s.client.Get(ctx, s.userKey()).Result()
	if errors.Is(err, redis.Nil) {
		// Token without user violates the session invariant, treat as absent.
		return "", nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return "", nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return "", nil, fmt.Errorf("unmarshal cached user: %w", err)
	}
	return token, &user, nil
}

// Clear implements domain.CredentialStore.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.tokenKey(), s.userKey()).Err()
}

var _ domain.CredentialStore = (*RedisStore)(nil)
