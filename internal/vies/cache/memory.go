package cache

import (
	"context"
	"sync"
	"time"

	"belegcheck/internal/domain"
)

// MemoryStore is the in-process cache: bounded TTL and size, suitable for a
// single instance. Use RedisStore when lookups should be shared across
// instances.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

type memoryEntry struct {
	info      domain.ViesValidationInfo
	expiresAt time.Time
}

// NewMemoryStore creates a memory cache with the given TTL and entry bound.
func NewMemoryStore(ttl time.Duration, maxEntries int) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the cached answer for uid, or (nil, nil) when absent or
// expired.
func (s *MemoryStore) Get(_ context.Context, uid string) (*domain.ViesValidationInfo, error) {
	s.mu.RLock()
	entry, ok := s.entries[uid]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return nil, nil
	}
	info := entry.info
	return &info, nil
}

// Set stores the answer for uid. When the store is full, expired entries are
// dropped first; if still full, the entry closest to expiry makes room.
func (s *MemoryStore) Set(_ context.Context, uid string, info *domain.ViesValidationInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[uid]; !exists && len(s.entries) >= s.maxEntries {
		s.evictLocked(now)
	}
	s.entries[uid] = memoryEntry{info: *info, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryStore) evictLocked(now time.Time) {
	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
			continue
		}
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}
	if len(s.entries) >= s.maxEntries && oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}

// Len reports the number of stored entries, including expired ones not yet
// evicted.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
