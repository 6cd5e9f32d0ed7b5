// Package oauthstate issues the one-time state nonces carried through the
// eBay authorization redirect. A nonce resolves back to the user that
// started the connect flow exactly once.
package oauthstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a user has to finish the eBay consent screen.
const DefaultTTL = 15 * time.Minute

const keyPrefix = "droplist:oauth_state:"

// ErrInvalidState is returned for unknown, expired, or already used nonces.
var ErrInvalidState = errors.New("invalid or expired oauth state")

// Store issues and consumes state nonces.
type Store interface {
	Issue(ctx context.Context, userID string) (string, error)
	Consume(ctx context.Context, state string) (string, error)
}

// RedisStore keeps nonces in Redis with a TTL.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// Option configures a RedisStore or MemoryStore.
type Option func(*options)

type options struct {
	ttl time.Duration
	now func() time.Time
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithNowFunc overrides the clock used by MemoryStore.
func WithNowFunc(fn func() time.Time) Option {
	return func(o *options) {
		o.now = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewRedisStore creates a RedisStore on rdb.
func NewRedisStore(rdb redis.Cmdable, opts ...Option) *RedisStore {
	o := buildOptions(opts)
	return &RedisStore{rdb: rdb, ttl: o.ttl}
}

// Issue stores a fresh nonce for userID.
func (s *RedisStore) Issue(ctx context.Context, userID string) (string, error) {
	state := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, keyPrefix+state, userID, s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("storing oauth state: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("storing oauth state: nonce collision")
	}
	return state, nil
}

// Consume resolves state to its user and deletes it.
func (s *RedisStore) Consume(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", ErrInvalidState
	}
	userID, err := s.rdb.GetDel(ctx, keyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidState
	}
	if err != nil {
		return "", fmt.Errorf("reading oauth state: %w", err)
	}
	return userID, nil
}

// MemoryStore is the single-process fallback used when no Redis address is
// configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     o.ttl,
		now:     o.now,
	}
}

// Issue stores a fresh nonce for userID.
func (s *MemoryStore) Issue(_ context.Context, userID string) (string, error) {
	state := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[state] = memoryEntry{userID: userID, expiresAt: now.Add(s.ttl)}
	return state, nil
}

// Consume resolves state to its user and deletes it.
func (s *MemoryStore) Consume(_ context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[state]
	if !ok {
		return "", ErrInvalidState
	}
	delete(s.entries, state)
	if !s.now().Before(e.expiresAt) {
		return "", ErrInvalidState
	}
	return e.userID, nil
}
