package registry

import (
	"context"
	"sync"
	"time"
)

// MemoryRegistry holds entries in process memory. It satisfies the same
// contract as the Redis-backed registry but entries are lost on restart, so it
// is meant for development and tests.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryRegistry(ttl time.Duration) *MemoryRegistry {
	return &MemoryRegistry{
		entries: map[string]time.Time{},
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (r *MemoryRegistry) SetClock(now func() time.Time) {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

func (r *MemoryRegistry) Register(_ context.Context, subjectID string) error {
	r.mu.Lock()
	r.entries[subjectID] = r.now().Add(r.ttl)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) Verify(_ context.Context, subjectID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expiry, exists := r.entries[subjectID]
	if !exists {
		return false, nil
	}
	return r.now().Before(expiry), nil
}

func (r *MemoryRegistry) Remove(_ context.Context, subjectID string) error {
	r.mu.Lock()
	delete(r.entries, subjectID)
	r.mu.Unlock()
	return nil
}
