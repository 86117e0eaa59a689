package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is an issued admin session.
type Session struct {
	ID        string
	Email     string
	ExpiresAt time.Time
}

// SessionStore issues and resolves opaque session ids.
type SessionStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (*Session, error)
	// Lookup returns the email behind id, or ErrSessionNotFound.
	Lookup(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore keeps sessions in Redis; expiry is enforced by key TTL.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Create(ctx context.Context, email string, ttl time.Duration) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}
	ok, err := s.client.SetNX(ctx, sessionKeyPrefix+session.ID, email, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("session id collision")
	}
	return session, nil
}

func (s *redisSessionStore) Lookup(ctx context.Context, id string) (string, error) {
	email, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return email, err
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemorySessionStore keeps sessions in process. now may be nil.
func NewMemorySessionStore(now func() time.Time) SessionStore {
	if now == nil {
		now = time.Now
	}
	return &memorySessionStore{sessions: make(map[string]Session), now: now}
}

func (s *memorySessionStore) Create(_ context.Context, email string, ttl time.Duration) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := Session{ID: uuid.NewString(), Email: email, ExpiresAt: s.now().Add(ttl)}
	s.sessions[session.ID] = session
	return &session, nil
}

func (s *memorySessionStore) Lookup(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return "", ErrSessionNotFound
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, id)
		return "", ErrSessionNotFound
	}
	return session.Email, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
