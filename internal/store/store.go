// Package store persists saved shipment snapshots. A snapshot freezes
// the form plus a few denormalized summary fields for listing; loading
// one replaces the live form wholesale.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tatdocs/internal/core/id"
	"tatdocs/internal/shipment"
)

// SavedShipment is one stored snapshot. The summary fields are copied
// from the calculations at save time; they are display data for the
// shipment list, not a second source of truth.
type SavedShipment struct {
	ID string `db:"id" json:"id"`

	InvoiceNumber string `db:"invoice_number" json:"invoiceNumber"`
	CustomerName  string `db:"customer_name" json:"customerName"`
	ShipDate      string `db:"ship_date" json:"shipDate"`

	TotalValue         decimal.Decimal `db:"total_value" json:"totalValue"`
	TotalGrossWeightKg float64         `db:"total_gross_weight_kg" json:"totalGrossWeightKg"`
	ItemCount          int             `db:"item_count" json:"itemCount"`
	Products           []string        `db:"products" json:"products"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	FormData shipment.ShipmentFormData `db:"-" json:"formData"`
}

// NewSavedShipment builds a snapshot from the live form and its
// calculations. The form is deep-copied; later edits to the live form
// must not leak into the stored snapshot.
func NewSavedShipment(form shipment.ShipmentFormData, calc shipment.Calculations, now time.Time) SavedShipment {
	products := make([]string, 0, len(calc.Items))
	for _, item := range calc.Items {
		products = append(products, item.Product.Name)
	}
	customer := form.CustomerName
	if customer == "" {
		customer = "Unknown Customer"
	}
	return SavedShipment{
		ID:                 id.New().String(),
		InvoiceNumber:      calc.InvoiceNumber,
		CustomerName:       customer,
		ShipDate:           form.ShipDate,
		TotalValue:         calc.TotalValue,
		TotalGrossWeightKg: calc.TotalGrossWeight,
		ItemCount:          len(calc.Items),
		Products:           products,
		CreatedAt:          now.UTC(),
		FormData:           form.Clone(),
	}
}

// Store is the shipment snapshot repository. Implementations must
// return snapshots newest first from List, and a CodeNotFound AppError
// from Load and Delete when the id is unknown.
type Store interface {
	Save(ctx context.Context, s SavedShipment) error
	List(ctx context.Context) ([]SavedShipment, error)
	Load(ctx context.Context, shipmentID string) (SavedShipment, error)
	Delete(ctx context.Context, shipmentID string) error
}
