package alert

import (
	"context"
	"sync"

	"github.com/fin-tools/finsight/pkg/models/store"
)

// MemoryStore holds the active alert set in process memory. Used when no
// durable store is configured, and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	active map[string][]store.AlertRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{active: make(map[string][]store.AlertRecord)}
}

func (m *MemoryStore) Replace(_ context.Context, companyID string, records []store.AlertRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[companyID] = append([]store.AlertRecord(nil), records...)
	return nil
}

func (m *MemoryStore) Active(_ context.Context, companyID string) ([]store.AlertRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]store.AlertRecord(nil), m.active[companyID]...), nil
}
