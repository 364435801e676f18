// Package session persists session-local admin state in Redis.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
)

// The two fixed keys the chosen role and operator scope are persisted under.
// They survive reload and are cleared on sign-out.
const (
	RoleKey     = "adminRole"
	OperatorKey = "adminOperator"
)

// Store persists per-principal session state.
type Store interface {
	// Save persists the role and operator scope for a principal.
	Save(ctx context.Context, principalID string, role, operator string) error

	// Load returns the persisted role and operator scope.
	// Returns ErrSessionNotFound when nothing is persisted.
	Load(ctx context.Context, principalID string) (role, operator string, err error)

	// Clear removes all session state for a principal.
	Clear(ctx context.Context, principalID string) error
}

// RedisStore implements Store on a Redis hash per principal.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "session"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) key(principalID string) string {
	return s.keyPrefix + ":" + principalID
}

// Save persists the role and operator scope for a principal.
func (s *RedisStore) Save(ctx context.Context, principalID string, role, operator string) error {
	key := s.key(principalID)

	fields := map[string]interface{}{RoleKey: role}
	if operator != "" {
		fields[OperatorKey] = operator
	}

	pipe := s.client.TxPipeline()
	// Drop a stale operator scope before writing the new state.
	pipe.HDel(ctx, key, OperatorKey)
	pipe.HSet(ctx, key, fields)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session %s: %w", principalID, err)
	}
	return nil
}

// Load returns the persisted role and operator scope.
func (s *RedisStore) Load(ctx context.Context, principalID string) (string, string, error) {
	values, err := s.client.HGetAll(ctx, s.key(principalID)).Result()
	if err != nil {
		return "", "", fmt.Errorf("failed to load session %s: %w", principalID, err)
	}
	if len(values) == 0 {
		return "", "", authModel.ErrSessionNotFound
	}
	return values[RoleKey], values[OperatorKey], nil
}

// Clear removes all session state for a principal.
func (s *RedisStore) Clear(ctx context.Context, principalID string) error {
	if err := s.client.Del(ctx, s.key(principalID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", principalID, err)
	}
	return nil
}
