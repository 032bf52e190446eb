package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	redisclient "github.com/muhammadheryan/scrapmarket/cmd/redis"
	"github.com/muhammadheryan/scrapmarket/model"
)

// Repository is the session capability: set, get and clear a login session
// keyed by the token's jti. Backed by Redis in production; when the Redis
// client was never initialized the repository falls back to an in-process
// store so login keeps working in local development, at the cost of sessions
// not surviving a restart.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionRepo struct {
	fallback *memoryStore
}

func NewRepository() Repository {
	return &sessionRepo{
		fallback: newMemoryStore(),
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *sessionRepo) SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		r.fallback.set(sessionID, session, ttl)
		return nil
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return client.Set(ctx, sessionKey(sessionID), raw, ttl).Err()
}

func (r *sessionRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	client := redisclient.Get()
	if client == nil {
		return r.fallback.get(sessionID), nil
	}
	raw, err := client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		r.fallback.delete(sessionID)
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

type memoryEntry struct {
	session   *model.Session
	expiresAt time.Time
}

// memoryStore is the in-process stand-in used when Redis is absent. Expiry is
// checked lazily on read.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
	}
}

func (m *memoryStore) set(sessionID string, session *model.Session, ttl time.Duration) {
	entry := memoryEntry{session: session}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = entry
}

func (m *memoryStore) get(sessionID string) *model.Session {
	m.mu.RLock()
	entry, ok := m.entries[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.delete(sessionID)
		return nil
	}
	return entry.session
}

func (m *memoryStore) delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
}
