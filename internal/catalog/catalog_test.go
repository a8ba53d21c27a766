package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 22, c.Len())

	for _, p := range c.Products() {
		require.NoError(t, p.Validate(context.Background()), "product %s", p.ID)
		assert.Positive(t, p.KgPerTote, "product %s", p.ID)
		assert.Positive(t, p.KgPerDrum, "product %s", p.ID)
		assert.GreaterOrEqual(t, p.MaxSG, p.MinSG, "product %s", p.ID)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := Default()

	p13, ok := c.Lookup("P13")
	require.True(t, ok)
	assert.Equal(t, "TATI Y-07", p13.Name)
	assert.Equal(t, "UN1992", p13.UNNumber)
	assert.Equal(t, 0.86, p13.Density)
	assert.Equal(t, 861.0, p13.KgPerTote)
	assert.Equal(t, 5.0, p13.PH)
	assert.Equal(t, 0.84, p13.MinSG)
	assert.Equal(t, 0.90, p13.MaxSG)

	_, ok = c.Lookup("P99")
	assert.False(t, ok)
}

func TestCatalogResolveFailsOpen(t *testing.T) {
	c := Default()

	// Unknown ids resolve to the first entry instead of failing.
	p := c.Resolve("no-such-product")
	assert.Equal(t, "P01", p.ID)

	// Known ids resolve normally.
	assert.Equal(t, "P22", c.Resolve("P22").ID)
}

func TestDefaultSpecsDerivation(t *testing.T) {
	c := Default()

	// P01 has no measured lab specs: pH defaults, SG band is density ±2%.
	p01, ok := c.Lookup("P01")
	require.True(t, ok)
	assert.Equal(t, 7.5, p01.PH)
	assert.InDelta(t, 1.01*0.98, p01.MinSG, 1e-9)
	assert.InDelta(t, 1.01*1.02, p01.MaxSG, 1e-9)
}

func TestNewCatalogRejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.Error(t, err)

	_, err = NewCatalog([]Product{
		{ID: "X1", Name: "A", UNNumber: NotRegulated, Density: 1, KgPerTote: 1000, KgPerDrum: 200},
		{ID: "X1", Name: "B", UNNumber: NotRegulated, Density: 1, KgPerTote: 1000, KgPerDrum: 200},
	})
	assert.Error(t, err)
}

func TestHazmatClassification(t *testing.T) {
	c := Default()

	assert.False(t, c.Resolve("P01").IsHazmat())
	assert.True(t, c.Resolve("P13").IsHazmat())
	// NA-prefixed numbers are regulated too.
	assert.True(t, c.Resolve("P15").IsHazmat())
}

func TestRegulatoryLookups(t *testing.T) {
	erg, ok := ERGGuide("UN1992")
	require.True(t, ok)
	assert.Equal(t, "131", erg)

	_, ok = ERGGuide("UN0000")
	assert.False(t, ok)

	name, ok := ProperShippingName("UN1992")
	require.True(t, ok)
	assert.Equal(t, "Flammable liquid, toxic, n.o.s.", name.DOT)
	assert.Equal(t, "Líquido inflamable, tóxico, n.e.p.", name.NOM)
	assert.NotEmpty(t, name.Qualifier)

	_, ok = ProperShippingName("UN0000")
	assert.False(t, ok)
}

func TestPackagingStandards(t *testing.T) {
	s := DefaultPackagingStandards()
	require.NoError(t, s.Validate(context.Background()))
	assert.Equal(t, 25.0, s.DrumTareKg)
	assert.Equal(t, 60.0, s.ToteTareKg)
	assert.Equal(t, 4, s.DrumsPerPallet)
	assert.Equal(t, 1, s.TotesPerPallet)

	bad := s
	bad.DrumTareKg = 0
	assert.Error(t, bad.Validate(context.Background()))
}
