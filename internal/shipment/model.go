// Package shipment holds the live shipment form and the calculation
// engine that derives every document-ready number from it. The form is
// the sole source of truth; derived values are recomputed, never patched.
package shipment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tatdocs/internal/core/apperror"
)

// PackagingType selects the container a line item ships in.
type PackagingType string

const (
	PackagingDrums PackagingType = "drums"
	PackagingTotes PackagingType = "totes"
)

// IsTote reports whether the item ships one-per-pallet in IBC totes.
func (t PackagingType) IsTote() bool {
	return t == PackagingTotes
}

// Valid reports whether the value is one of the two known packagings.
func (t PackagingType) Valid() bool {
	return t == PackagingDrums || t == PackagingTotes
}

// Quantity is a lenient numeric form field. Blank, null or non-numeric
// input coerces to zero: a mistyped quantity must surface as a visible
// zero on the documents, never as a failed recomputation or a NaN.
type Quantity float64

// Float64 returns the coerced numeric value.
func (q Quantity) Float64() float64 { return float64(q) }

// MarshalJSON encodes Quantity as a JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(q), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a JSON number, a quoted number, or garbage;
// anything unparseable becomes zero.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity(coerceFloat(data))
	return nil
}

// Money is a lenient decimal form field for unit prices. Unparseable
// input coerces to zero, and arithmetic stays exact through decimal.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money value from a decimal string, panicking on
// malformed constants. Use only for literals and tests.
func NewMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

// MoneyFromDecimal wraps an existing decimal value.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// UnmarshalJSON accepts a JSON number, a quoted number, or garbage;
// anything unparseable becomes zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// coerceFloat parses a JSON token (number or quoted number) as float64,
// returning 0 for anything unparseable.
func coerceFloat(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// LineItem is one row of the shipment form.
type LineItem struct {
	// ID is an opaque identity, unique within the shipment.
	ID string `json:"id"`

	// ProductID references the product catalog. Unknown ids are
	// resolved leniently by the engine, not rejected here.
	ProductID string `json:"productId"`

	Quantity  Quantity      `json:"quantity"`
	UnitType  PackagingType `json:"unitType"`
	UnitPrice Money         `json:"unitPrice"`

	// LotNumber is free text, generated on creation and independently
	// editable afterwards.
	LotNumber string `json:"lotNumber"`
}

// ItemPatch carries a partial line item update; nil fields are left
// untouched.
type ItemPatch struct {
	ProductID *string        `json:"productId"`
	Quantity  *Quantity      `json:"quantity"`
	UnitType  *PackagingType `json:"unitType"`
	UnitPrice *Money         `json:"unitPrice"`
	LotNumber *string        `json:"lotNumber"`
}

// ShipmentFormData is the mutable source of truth for one shipment.
type ShipmentFormData struct {
	Items []LineItem `json:"items"`

	CustomerName  string `json:"customerName"`
	MexicoAddress string `json:"mexicoAddress"`
	LaredoAddress string `json:"laredoAddress"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	// RFC is the customer's Mexican federal taxpayer id.
	RFC string `json:"rfc"`

	LaredoContactName  string `json:"laredoContactName"`
	LaredoContactPhone string `json:"laredoContactPhone"`

	// ShipDate is ISO yyyy-mm-dd.
	ShipDate string `json:"shipDate"`

	PONumber   string `json:"poNumber"`
	Carrier    string `json:"carrier"`
	Broker     string `json:"broker"`
	LoadNumber string `json:"loadNumber"`

	// ITNNumber is the AES Internal Transaction Number.
	ITNNumber string `json:"itnNumber"`

	// BaseInvoice and Sequence are free text; the displayed invoice
	// number is always recomputed as "base.sequence", never stored.
	BaseInvoice string `json:"baseInvoice"`
	Sequence    string `json:"sequence"`
}

// InvoiceNumber formats the displayed invoice number. This is string
// concatenation by contract: sequence "01" yields "9400.01" unchanged.
func (f ShipmentFormData) InvoiceNumber() string {
	return f.BaseInvoice + "." + f.Sequence
}

// NewFormData returns a fresh form with the reference default line item
// and logistics defaults.
func NewFormData(now time.Time) ShipmentFormData {
	return ShipmentFormData{
		Items: []LineItem{
			{
				ID:        newItemID(),
				ProductID: "P13",
				Quantity:  20,
				UnitType:  PackagingTotes,
				UnitPrice: NewMoney("2450.00"),
				LotNumber: GenerateLotNumber(),
			},
		},
		ShipDate:    now.UTC().Format("2006-01-02"),
		Carrier:     "ARMSTRONG",
		Broker:      "BRAX LOGISTICS",
		BaseInvoice: "9400",
		Sequence:    "1",
	}
}

// AddItem appends a new row with defaults and a generated lot number.
func (f *ShipmentFormData) AddItem() LineItem {
	item := LineItem{
		ID:        newItemID(),
		ProductID: "P01",
		Quantity:  1,
		UnitType:  PackagingTotes,
		UnitPrice: Money{decimal.Zero},
		LotNumber: GenerateLotNumber(),
	}
	f.Items = append(f.Items, item)
	return item
}

// RemoveItem deletes the row with the given id. Removing the last
// remaining item is rejected: a shipment always has at least one line.
func (f *ShipmentFormData) RemoveItem(id string) error {
	if len(f.Items) <= 1 {
		return apperror.NewLastLineItem(id)
	}
	for i, item := range f.Items {
		if item.ID == id {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("line item", id)
}

// UpdateItem applies a partial update to the row with the given id.
func (f *ShipmentFormData) UpdateItem(id string, patch ItemPatch) error {
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		if patch.ProductID != nil {
			f.Items[i].ProductID = *patch.ProductID
		}
		if patch.Quantity != nil {
			f.Items[i].Quantity = *patch.Quantity
		}
		if patch.UnitType != nil {
			if !patch.UnitType.Valid() {
				return apperror.NewValidation("unknown packaging type").
					WithDetail("unitType", string(*patch.UnitType))
			}
			f.Items[i].UnitType = *patch.UnitType
		}
		if patch.UnitPrice != nil {
			f.Items[i].UnitPrice = *patch.UnitPrice
		}
		if patch.LotNumber != nil {
			f.Items[i].LotNumber = *patch.LotNumber
		}
		return nil
	}
	return apperror.NewNotFound("line item", id)
}

// ReplaceItems swaps the whole line-item list, assigning ids and lot
// numbers to rows that lack them. An empty list is rejected.
func (f *ShipmentFormData) ReplaceItems(items []LineItem) error {
	if len(items) == 0 {
		return apperror.NewValidation("a shipment requires at least one line item")
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newItemID()
		}
		if items[i].LotNumber == "" {
			items[i].LotNumber = GenerateLotNumber()
		}
		if !items[i].UnitType.Valid() {
			items[i].UnitType = PackagingTotes
		}
	}
	f.Items = items
	return nil
}

// Clone returns a deep copy; snapshots must be independent of the live
// form after creation.
func (f ShipmentFormData) Clone() ShipmentFormData {
	out := f
	out.Items = make([]LineItem, len(f.Items))
	copy(out.Items, f.Items)
	return out
}

// GenerateLotNumber produces a LOT-##### batch number.
func GenerateLotNumber() string {
	return fmt.Sprintf("LOT-%05d", rand.Intn(100000))
}

var itemSeq = rand.New(rand.NewSource(time.Now().UnixNano()))

// newItemID produces an opaque row identity.
func newItemID() string {
	return fmt.Sprintf("%d-%04d", time.Now().UnixMilli(), itemSeq.Intn(10000))
}
