package shipment

import (
	"sync"
	"time"

	"tatdocs/internal/catalog"
)

// Session guards the live shipment form behind a mutex and memoizes the
// derived calculations: edits bump a revision counter and the
// projection is recomputed only when a caller asks for stale results.
type Session struct {
	mu sync.Mutex

	form ShipmentFormData
	rev  uint64

	calc    Calculations
	calcRev uint64

	catalog    *catalog.Catalog
	standards  catalog.PackagingStandards
	maxGrossKg float64
}

// NewSession creates a session holding a fresh default form.
func NewSession(cat *catalog.Catalog, std catalog.PackagingStandards, maxGrossKg float64) *Session {
	return &Session{
		form:       NewFormData(time.Now()),
		rev:        1,
		catalog:    cat,
		standards:  std,
		maxGrossKg: maxGrossKg,
	}
}

// Form returns a deep copy of the current form state.
func (s *Session) Form() ShipmentFormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Clone()
}

// Replace swaps the whole form, e.g. when loading a saved shipment.
func (s *Session) Replace(form ShipmentFormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form.Clone()
	s.rev++
}

// Reset discards the form and starts over with defaults.
func (s *Session) Reset() ShipmentFormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = NewFormData(time.Now())
	s.rev++
	return s.form.Clone()
}

// Update applies a mutation to the form under the lock. The revision is
// bumped only when the mutation succeeds, so a rejected edit leaves the
// memoized calculations valid.
func (s *Session) Update(fn func(*ShipmentFormData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.form); err != nil {
		return err
	}
	s.rev++
	return nil
}

// AddItem appends a new line item and returns it.
func (s *Session) AddItem() LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.form.AddItem()
	s.rev++
	return item
}

// RemoveItem deletes a line item, refusing to empty the shipment.
func (s *Session) RemoveItem(id string) error {
	return s.Update(func(f *ShipmentFormData) error {
		return f.RemoveItem(id)
	})
}

// UpdateItem applies a partial update to one line item.
func (s *Session) UpdateItem(id string, patch ItemPatch) error {
	return s.Update(func(f *ShipmentFormData) error {
		return f.UpdateItem(id, patch)
	})
}

// Calculations returns the derived projection of the current form,
// recomputing it only when the form changed since the last call.
func (s *Session) Calculations() Calculations {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calcRev != s.rev {
		s.calc = Calculate(s.form, s.catalog, s.standards, s.maxGrossKg)
		s.calcRev = s.rev
	}
	out := s.calc
	out.Items = make([]CalculatedLineItem, len(s.calc.Items))
	copy(out.Items, s.calc.Items)
	return out
}

// Snapshot returns matching copies of the form and its calculations,
// taken under one lock acquisition.
func (s *Session) Snapshot() (ShipmentFormData, Calculations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calcRev != s.rev {
		s.calc = Calculate(s.form, s.catalog, s.standards, s.maxGrossKg)
		s.calcRev = s.rev
	}
	calc := s.calc
	calc.Items = make([]CalculatedLineItem, len(s.calc.Items))
	copy(calc.Items, s.calc.Items)
	return s.form.Clone(), calc
}

// Catalog exposes the reference catalog the session computes against.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}
