package shipment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/catalog"
)

func newTestSession() *Session {
	return NewSession(catalog.Default(), catalog.DefaultPackagingStandards(), catalog.MaxGrossWeightKg)
}

func TestSessionRecomputesOnEdit(t *testing.T) {
	s := newTestSession()

	c := s.Calculations()
	assert.InDelta(t, 17220.0, c.TotalNetWeight, 1e-9)

	id := s.Form().Items[0].ID
	qty := Quantity(10)
	require.NoError(t, s.UpdateItem(id, ItemPatch{Quantity: &qty}))

	c = s.Calculations()
	assert.InDelta(t, 8610.0, c.TotalNetWeight, 1e-9)
}

func TestSessionFailedEditKeepsState(t *testing.T) {
	s := newTestSession()
	before := s.Calculations()

	err := s.RemoveItem(s.Form().Items[0].ID)
	require.Error(t, err)

	after := s.Calculations()
	assert.Equal(t, before.TotalNetWeight, after.TotalNetWeight)
	assert.Len(t, s.Form().Items, 1)
}

func TestSessionFormCopyIsDetached(t *testing.T) {
	s := newTestSession()

	f := s.Form()
	f.Items[0].Quantity = 999
	f.CustomerName = "scribble"

	assert.Equal(t, Quantity(20), s.Form().Items[0].Quantity)
	assert.Empty(t, s.Form().CustomerName)
}

func TestSessionReplaceAndReset(t *testing.T) {
	s := newTestSession()

	f := s.Form()
	f.CustomerName = "QUIMICOS DEL NORTE"
	f.Items[0].Quantity = 5
	s.Replace(f)

	form, calc := s.Snapshot()
	assert.Equal(t, "QUIMICOS DEL NORTE", form.CustomerName)
	assert.InDelta(t, 4305.0, calc.TotalNetWeight, 1e-9)

	s.Reset()
	form = s.Form()
	assert.Empty(t, form.CustomerName)
	assert.Equal(t, Quantity(20), form.Items[0].Quantity)
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := newTestSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AddItem()
				_ = s.Calculations()
				form := s.Form()
				_ = s.RemoveItem(form.Items[len(form.Items)-1].ID)
			}
		}()
	}
	wg.Wait()

	c := s.Calculations()
	assert.GreaterOrEqual(t, len(c.Items), 1)
}
