package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry tracks the open window for one key.
type memoryEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// MemoryStore is the process-local fallback store. The clock is injectable so
// window expiry is testable without sleeping.
type MemoryStore struct {
	entries   sync.Map
	now       func() time.Time
	done      chan struct{}
	sweepOnce sync.Once
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory store using the given clock.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		now:  now,
		done: make(chan struct{}),
	}
}

// Incr implements Store. The check-then-increment is serialized per key by
// the entry mutex so concurrent admissions cannot lose updates.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.sweepOnce.Do(func() { go s.sweep() })

	now := s.now()
	entryI, _ := s.entries.LoadOrStore(key, &memoryEntry{resetAt: now.Add(window)})
	entry := entryI.(*memoryEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}

	entry.count++
	return entry.count, entry.resetAt, nil
}

// Close stops the background sweep. Safe to call more than once; Incr keeps
// working afterwards, expired entries just stop being reclaimed.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// sweep drops expired entries so idle keys do not accumulate forever.
func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := s.now()
			s.entries.Range(func(key, value any) bool {
				entry := value.(*memoryEntry)
				entry.mu.Lock()
				expired := now.After(entry.resetAt)
				entry.mu.Unlock()
				if expired {
					s.entries.Delete(key)
				}
				return true
			})
		}
	}
}
