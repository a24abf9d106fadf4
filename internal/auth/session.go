package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
)

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("no such session")

// SessionStore keeps login records server-side; the cookie only carries
// a random id, so no signing secret exists.
type SessionStore interface {
	Create(ctx context.Context, sess domain.Session) (string, error)
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RedisStore manages sessions in Redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a Redis-backed session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, sess domain.Session) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, b, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (domain.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return domain.Session{}, ErrNoSession
	}
	if err != nil {
		return domain.Session{}, err
	}
	var sess domain.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

type memorySession struct {
	sess      domain.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map with per-record TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memorySession
}

// NewMemoryStore returns an in-process session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &MemoryStore{ttl: ttl, sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Create(_ context.Context, sess domain.Session) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[id] = memorySession{sess: sess, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	rec, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(rec.expiresAt) {
		return domain.Session{}, ErrNoSession
	}
	return rec.sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
