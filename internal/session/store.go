package session

import (
	"context"
	"sync"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/infrastructure/cache"
)

// Session is the server-side record behind a browser session cookie. Token
// and User are both optional: an anonymous visitor has a session with
// neither set.
type Session struct {
	ID        string       `json:"id"`
	Token     string       `json:"token,omitempty"`
	User      *domain.User `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Authenticated reports whether a bearer token is stored. It does not
// verify the token against the backend.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Store persists sessions keyed by ID. Get returns (nil, nil) when the ID
// is unknown or the record has lapsed.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

const redisKeyPrefix = "session:"

type redisStore struct {
	cache *cache.Redis
	ttl   time.Duration
}

// NewRedisStore persists sessions in Redis with a sliding TTL.
func NewRedisStore(c *cache.Redis, ttl time.Duration) Store {
	return &redisStore{cache: c, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	ok, err := s.cache.GetJSON(ctx, redisKeyPrefix+id, &sess)
	if err != nil || !ok {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Set(ctx context.Context, sess *Session) error {
	return s.cache.SetJSON(ctx, redisKeyPrefix+sess.ID, sess, s.ttl)
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, redisKeyPrefix+id)
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

type memoryStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]memoryEntry
}

// NewMemoryStore keeps sessions in process memory. Used when Redis is not
// reachable; sessions do not survive a restart.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{ttl: ttl, m: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.m[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.m, id)
		s.mu.Unlock()
		return nil, nil
	}
	sess := entry.sess
	return &sess, nil
}

func (s *memoryStore) Set(_ context.Context, sess *Session) error {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	s.m[sess.ID] = memoryEntry{sess: *sess, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}
