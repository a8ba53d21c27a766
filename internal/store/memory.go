package store

import (
	"context"
	"sync"

	"tatdocs/internal/core/apperror"
)

// MemoryStore keeps snapshots in process memory. It is the default
// backend when no database is configured; snapshots live as long as
// the process.
type MemoryStore struct {
	mu        sync.RWMutex
	shipments map[string]SavedShipment
	order     []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{shipments: make(map[string]SavedShipment)}
}

func (m *MemoryStore) Save(ctx context.Context, s SavedShipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.shipments[s.ID]; exists {
		return apperror.NewConflict("shipment already saved").WithDetail("id", s.ID)
	}
	s.FormData = s.FormData.Clone()
	m.shipments[s.ID] = s
	// Newest first.
	m.order = append([]string{s.ID}, m.order...)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]SavedShipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SavedShipment, 0, len(m.order))
	for _, shipmentID := range m.order {
		s := m.shipments[shipmentID]
		s.FormData = s.FormData.Clone()
		out = append(out, s)
	}
	return out, nil
}

func (m *MemoryStore) Load(ctx context.Context, shipmentID string) (SavedShipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.shipments[shipmentID]
	if !ok {
		return SavedShipment{}, apperror.NewNotFound("shipment", shipmentID)
	}
	s.FormData = s.FormData.Clone()
	return s, nil
}

func (m *MemoryStore) Delete(ctx context.Context, shipmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shipments[shipmentID]; !ok {
		return apperror.NewNotFound("shipment", shipmentID)
	}
	delete(m.shipments, shipmentID)
	for i, oid := range m.order {
		if oid == shipmentID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
