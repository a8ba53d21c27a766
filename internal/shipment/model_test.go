package shipment

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/core/apperror"
)

func TestNewFormDataDefaults(t *testing.T) {
	f := NewFormData(time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC))

	require.Len(t, f.Items, 1)
	assert.Equal(t, "P13", f.Items[0].ProductID)
	assert.Equal(t, Quantity(20), f.Items[0].Quantity)
	assert.Equal(t, PackagingTotes, f.Items[0].UnitType)
	assert.True(t, f.Items[0].UnitPrice.Equal(NewMoney("2450.00").Decimal))
	assert.Regexp(t, regexp.MustCompile(`^LOT-\d{5}$`), f.Items[0].LotNumber)

	assert.Equal(t, "2026-08-28", f.ShipDate)
	assert.Equal(t, "ARMSTRONG", f.Carrier)
	assert.Equal(t, "BRAX LOGISTICS", f.Broker)
	assert.Equal(t, "9400.1", f.InvoiceNumber())
}

func TestLenientNumericDecoding(t *testing.T) {
	var item LineItem
	raw := `{"id":"x","productId":"P13","quantity":"not a number","unitType":"totes","unitPrice":"oops"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, Quantity(0), item.Quantity)
	assert.True(t, item.UnitPrice.IsZero())

	raw = `{"quantity":"15","unitPrice":"19.99"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, Quantity(15), item.Quantity)
	assert.True(t, item.UnitPrice.Equal(NewMoney("19.99").Decimal))

	raw = `{"quantity":null,"unitPrice":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, Quantity(0), item.Quantity)
	assert.True(t, item.UnitPrice.IsZero())
}

func TestRemoveLastItemRejected(t *testing.T) {
	f := NewFormData(time.Now())
	id := f.Items[0].ID

	err := f.RemoveItem(id)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeLastLineItem, appErr.Code)
	// The rejected removal leaves the form untouched.
	require.Len(t, f.Items, 1)
	assert.Equal(t, id, f.Items[0].ID)
}

func TestAddAndRemoveItems(t *testing.T) {
	f := NewFormData(time.Now())
	added := f.AddItem()
	require.Len(t, f.Items, 2)
	assert.NotEqual(t, f.Items[0].ID, added.ID)
	assert.NotEmpty(t, added.LotNumber)

	require.NoError(t, f.RemoveItem(f.Items[0].ID))
	require.Len(t, f.Items, 1)
	assert.Equal(t, added.ID, f.Items[0].ID)

	err := f.RemoveItem("no-such-item")
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateItemPatchSemantics(t *testing.T) {
	f := NewFormData(time.Now())
	id := f.Items[0].ID

	qty := Quantity(5)
	require.NoError(t, f.UpdateItem(id, ItemPatch{Quantity: &qty}))
	assert.Equal(t, Quantity(5), f.Items[0].Quantity)
	// Unpatched fields survive.
	assert.Equal(t, "P13", f.Items[0].ProductID)

	bad := PackagingType("crates")
	err := f.UpdateItem(id, ItemPatch{UnitType: &bad})
	require.Error(t, err)

	err = f.UpdateItem("missing", ItemPatch{Quantity: &qty})
	assert.True(t, apperror.IsNotFound(err))
}

func TestReplaceItems(t *testing.T) {
	f := NewFormData(time.Now())

	err := f.ReplaceItems(nil)
	require.Error(t, err)

	items := []LineItem{
		{ProductID: "P05", Quantity: 3, UnitType: PackagingDrums, UnitPrice: NewMoney("75")},
		{ProductID: "P13", Quantity: 2, UnitType: "", UnitPrice: NewMoney("2450")},
	}
	require.NoError(t, f.ReplaceItems(items))
	require.Len(t, f.Items, 2)
	for _, item := range f.Items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.LotNumber)
		assert.True(t, item.UnitType.Valid())
	}
	assert.Equal(t, PackagingTotes, f.Items[1].UnitType)
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewFormData(time.Now())
	snap := f.Clone()

	f.AddItem()
	f.CustomerName = "changed"

	assert.Len(t, snap.Items, 1)
	assert.Empty(t, snap.CustomerName)
}

func TestGenerateLotNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^LOT-\d{5}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenerateLotNumber())
	}
}
