package shipment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/catalog"
)

func testForm(items ...LineItem) ShipmentFormData {
	f := NewFormData(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	f.Items = items
	return f
}

func calc(t *testing.T, f ShipmentFormData) Calculations {
	t.Helper()
	return Calculate(f, catalog.Default(), catalog.DefaultPackagingStandards(), catalog.MaxGrossWeightKg)
}

func TestCalculateToteShipment(t *testing.T) {
	// 20 totes of TATI Y-07 at $2,450: the reference scenario.
	c := calc(t, testForm(LineItem{
		ID: "i1", ProductID: "P13", Quantity: 20,
		UnitType: PackagingTotes, UnitPrice: NewMoney("2450.00"),
	}))

	require.Len(t, c.Items, 1)
	assert.Equal(t, "TATI Y-07", c.Items[0].Product.Name)
	assert.InDelta(t, 17220.0, c.TotalNetWeight, 1e-9)
	assert.InDelta(t, 1200.0, c.TotalTareWeight, 1e-9)
	assert.InDelta(t, 18420.0, c.TotalGrossWeight, 1e-9)
	assert.True(t, c.TotalValue.Equal(decimal.RequireFromString("49000.00")))
	assert.Equal(t, 20, c.TotalPallets)
	assert.True(t, c.HasHazmat)
	assert.False(t, c.IsOverweight)
}

func TestCalculateDrumShipment(t *testing.T) {
	// 10 drums of TATI ANTIFOAM-07 at $100: pallets round up, no hazmat.
	c := calc(t, testForm(LineItem{
		ID: "i1", ProductID: "P01", Quantity: 10,
		UnitType: PackagingDrums, UnitPrice: NewMoney("100.00"),
	}))

	assert.InDelta(t, 2080.0, c.TotalNetWeight, 1e-9)
	assert.InDelta(t, 250.0, c.TotalTareWeight, 1e-9)
	assert.InDelta(t, 2330.0, c.TotalGrossWeight, 1e-9)
	assert.True(t, c.TotalValue.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, 3, c.TotalPallets)
	assert.False(t, c.HasHazmat)
}

func TestCalculateWeightConservation(t *testing.T) {
	c := calc(t, testForm(
		LineItem{ID: "a", ProductID: "P13", Quantity: 7, UnitType: PackagingTotes, UnitPrice: NewMoney("2450.00")},
		LineItem{ID: "b", ProductID: "P01", Quantity: 13, UnitType: PackagingDrums, UnitPrice: NewMoney("87.50")},
		LineItem{ID: "c", ProductID: "P21", Quantity: 3, UnitType: PackagingDrums, UnitPrice: NewMoney("310.00")},
	))

	var net, tare float64
	value := decimal.Zero
	pallets := 0
	for _, item := range c.Items {
		assert.InDelta(t, item.NetWeight+item.TareWeight, item.GrossWeight, 1e-9)
		net += item.NetWeight
		tare += item.TareWeight
		value = value.Add(item.TotalValue)
		pallets += item.Pallets
	}
	assert.InDelta(t, net, c.TotalNetWeight, 1e-9)
	assert.InDelta(t, tare, c.TotalTareWeight, 1e-9)
	assert.InDelta(t, net+tare, c.TotalGrossWeight, 1e-9)
	assert.True(t, value.Equal(c.TotalValue))
	assert.Equal(t, pallets, c.TotalPallets)
}

func TestCalculatePalletRounding(t *testing.T) {
	cases := []struct {
		qty     Quantity
		unit    PackagingType
		pallets int
	}{
		{1, PackagingDrums, 1},
		{4, PackagingDrums, 1},
		{5, PackagingDrums, 2},
		{8, PackagingDrums, 2},
		{1, PackagingTotes, 1},
		{5, PackagingTotes, 5},
	}
	for _, tc := range cases {
		c := calc(t, testForm(LineItem{
			ID: "i1", ProductID: "P01", Quantity: tc.qty,
			UnitType: tc.unit, UnitPrice: NewMoney("1"),
		}))
		assert.Equal(t, tc.pallets, c.TotalPallets, "%v %v", tc.qty, tc.unit)
	}
}

func TestCalculateHazmatFlag(t *testing.T) {
	nonHaz := LineItem{ID: "a", ProductID: "P01", Quantity: 1, UnitType: PackagingTotes, UnitPrice: NewMoney("1")}
	haz := LineItem{ID: "b", ProductID: "P13", Quantity: 1, UnitType: PackagingTotes, UnitPrice: NewMoney("1")}

	assert.False(t, calc(t, testForm(nonHaz)).HasHazmat)
	assert.True(t, calc(t, testForm(nonHaz, haz)).HasHazmat)
	// NA-prefixed numbers are regulated as well.
	na := LineItem{ID: "c", ProductID: "P15", Quantity: 1, UnitType: PackagingTotes, UnitPrice: NewMoney("1")}
	assert.True(t, calc(t, testForm(na)).HasHazmat)
}

func TestCalculateOverweightBoundary(t *testing.T) {
	// 21 totes of TATI ANTIFOAM-07: net 21210 + tare 1260 is well over.
	over := calc(t, testForm(LineItem{
		ID: "i1", ProductID: "P01", Quantity: 21, UnitType: PackagingTotes, UnitPrice: NewMoney("1"),
	}))
	assert.True(t, over.IsOverweight)

	// Exactly at the limit is not overweight: the comparison is strict.
	exact := testForm(LineItem{
		ID: "i1", ProductID: "P13", Quantity: 20, UnitType: PackagingTotes, UnitPrice: NewMoney("1"),
	})
	c := Calculate(exact, catalog.Default(), catalog.DefaultPackagingStandards(), 18420.0)
	assert.False(t, c.IsOverweight)

	c = Calculate(exact, catalog.Default(), catalog.DefaultPackagingStandards(), 18419.999)
	assert.True(t, c.IsOverweight)
}

func TestCalculateUnknownProductFailsOpen(t *testing.T) {
	c := calc(t, testForm(LineItem{
		ID: "i1", ProductID: "deleted-product", Quantity: 2,
		UnitType: PackagingDrums, UnitPrice: NewMoney("50"),
	}))

	require.Len(t, c.Items, 1)
	assert.Equal(t, "P01", c.Items[0].Product.ID)
	assert.InDelta(t, 416.0, c.TotalNetWeight, 1e-9)
}

func TestCalculateZeroQuantity(t *testing.T) {
	c := calc(t, testForm(LineItem{
		ID: "i1", ProductID: "P13", Quantity: 0,
		UnitType: PackagingTotes, UnitPrice: NewMoney("2450.00"),
	}))

	assert.Zero(t, c.TotalNetWeight)
	assert.Zero(t, c.TotalTareWeight)
	assert.Zero(t, c.TotalGrossWeight)
	assert.True(t, c.TotalValue.IsZero())
	assert.Equal(t, 0, c.TotalPallets)
	// Hazmat classification does not depend on quantity.
	assert.True(t, c.HasHazmat)
}

func TestCalculateInvoiceNumberConcatenation(t *testing.T) {
	f := testForm(LineItem{ID: "i1", ProductID: "P13", Quantity: 1, UnitType: PackagingTotes, UnitPrice: NewMoney("1")})
	f.BaseInvoice = "9400"
	f.Sequence = "01"

	// String concatenation, not arithmetic: "01" stays "01".
	assert.Equal(t, "9400.01", calc(t, f).InvoiceNumber)

	f.Sequence = "12"
	assert.Equal(t, "9400.12", calc(t, f).InvoiceNumber)
}

func TestCalculateValueExactness(t *testing.T) {
	// Classic float trap: 0.1 + 0.2 style accumulation stays exact.
	items := make([]LineItem, 10)
	for i := range items {
		items[i] = LineItem{ID: string(rune('a' + i)), ProductID: "P01", Quantity: 1, UnitType: PackagingDrums, UnitPrice: NewMoney("0.10")}
	}
	c := calc(t, testForm(items...))
	assert.True(t, c.TotalValue.Equal(decimal.RequireFromString("1.00")), "got %s", c.TotalValue)
}
