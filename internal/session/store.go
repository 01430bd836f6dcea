// internal/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	"ekthaa-chatbot/internal/models"
)

// Store keeps the last parsed intent per user so follow-up messages can be
// merged with earlier context. Entries expire after the configured TTL.
type Store interface {
	Get(ctx context.Context, userID string) (models.ParsedIntent, error)
	Put(ctx context.Context, userID string, intent models.ParsedIntent) error
}

type memoryEntry struct {
	intent    models.ParsedIntent
	expiresAt time.Time
}

// MemoryStore is the in-process Store used by the terminal client and as the
// default backend when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (models.ParsedIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return models.ParsedIntent{}, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, userID)
		return models.ParsedIntent{}, nil
	}
	return entry.intent, nil
}

func (s *MemoryStore) Put(_ context.Context, userID string, intent models.ParsedIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// Sweep expired entries while we hold the lock anyway.
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[userID] = memoryEntry{
		intent:    intent,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}
