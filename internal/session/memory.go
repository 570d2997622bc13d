package session

import (
	"context"
	"sync"
	"time"
)

// MemoryBackend keeps sessions in process memory. Records idle longer than
// the TTL are treated as gone and dropped on the next access.
type MemoryBackend struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memoryRecord
}

type memoryRecord struct {
	fields    map[string]string
	expiresAt time.Time
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	if ttl <= 0 {
		ttl = defaultIdleTimeout
	}
	return &MemoryBackend{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memoryRecord),
	}
}

// live returns the record for id if it has not expired. Caller holds mu.
func (m *MemoryBackend) live(id string) *memoryRecord {
	rec, ok := m.sessions[id]
	if !ok {
		return nil
	}
	if !m.now().Before(rec.expiresAt) {
		delete(m.sessions, id)
		return nil
	}
	return rec
}

func (m *MemoryBackend) Get(_ context.Context, id, field string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.live(id)
	if rec == nil {
		return "", false, nil
	}
	v, ok := rec.fields[field]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, id, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.live(id)
	if rec == nil {
		rec = &memoryRecord{fields: make(map[string]string)}
		m.sessions[id] = rec
	}
	rec.fields[field] = value
	rec.expiresAt = m.now().Add(m.ttl)
	return nil
}

func (m *MemoryBackend) Touch(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec := m.live(id)
	if rec == nil {
		return false, nil
	}
	rec.expiresAt = m.now().Add(m.ttl)
	return true, nil
}

func (m *MemoryBackend) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}
