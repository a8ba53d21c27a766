package shipment

import (
	"math"

	"github.com/shopspring/decimal"

	"tatdocs/internal/catalog"
)

// CalculatedLineItem is one form row enriched with its resolved product
// and derived weights, value and pallet count.
type CalculatedLineItem struct {
	LineItem

	Product catalog.Product `json:"product"`

	// Weights in kilograms. Gross is net plus tare by construction.
	NetWeight   float64 `json:"netWeight"`
	TareWeight  float64 `json:"tareWeight"`
	GrossWeight float64 `json:"grossWeight"`

	TotalValue decimal.Decimal `json:"totalValue"`
	Pallets    int             `json:"pallets"`
}

// Calculations is the full derived view of a shipment form. It is a
// pure projection: recomputing it from the same form, catalog and
// packaging standards always yields the same result.
type Calculations struct {
	Items []CalculatedLineItem `json:"items"`

	TotalQuantity    float64 `json:"totalQuantity"`
	TotalNetWeight   float64 `json:"totalNetWeight"`
	TotalTareWeight  float64 `json:"totalTareWeight"`
	TotalGrossWeight float64 `json:"totalGrossWeight"`

	TotalValue   decimal.Decimal `json:"totalValue"`
	TotalPallets int             `json:"totalPallets"`

	// HasHazmat is true when any resolved product carries a UN number;
	// it decides whether hazmat paperwork is produced at all.
	HasHazmat bool `json:"hasHazmat"`

	InvoiceNumber string `json:"invoiceNumber"`

	// IsOverweight flags a gross weight strictly above the truck limit.
	// Advisory only: an overweight shipment still produces documents.
	IsOverweight bool `json:"isOverweight"`
}

// Calculate derives all document-ready numbers from the form. Unknown
// product ids resolve to the catalog's first entry and malformed
// numeric input has already been coerced to zero, so the projection is
// total: it never fails.
func Calculate(form ShipmentFormData, cat *catalog.Catalog, std catalog.PackagingStandards, maxGrossKg float64) Calculations {
	out := Calculations{
		Items:         make([]CalculatedLineItem, 0, len(form.Items)),
		TotalValue:    decimal.Zero,
		InvoiceNumber: form.InvoiceNumber(),
	}

	for _, item := range form.Items {
		product := cat.Resolve(item.ProductID)
		qty := item.Quantity.Float64()

		var kgPerUnit, tarePerUnit float64
		var pallets int
		if item.UnitType.IsTote() {
			kgPerUnit = product.KgPerTote
			tarePerUnit = std.ToteTareKg
			pallets = int(math.Ceil(qty / float64(std.TotesPerPallet)))
		} else {
			kgPerUnit = product.KgPerDrum
			tarePerUnit = std.DrumTareKg
			pallets = int(math.Ceil(qty / float64(std.DrumsPerPallet)))
		}

		net := kgPerUnit * qty
		tare := tarePerUnit * qty
		value := item.UnitPrice.Decimal.Mul(decimal.NewFromFloat(qty))

		calc := CalculatedLineItem{
			LineItem:    item,
			Product:     product,
			NetWeight:   net,
			TareWeight:  tare,
			GrossWeight: net + tare,
			TotalValue:  value,
			Pallets:     pallets,
		}
		out.Items = append(out.Items, calc)

		out.TotalQuantity += qty
		out.TotalNetWeight += net
		out.TotalTareWeight += tare
		out.TotalValue = out.TotalValue.Add(value)
		out.TotalPallets += pallets
		if product.IsHazmat() {
			out.HasHazmat = true
		}
	}

	out.TotalGrossWeight = out.TotalNetWeight + out.TotalTareWeight
	out.IsOverweight = out.TotalGrossWeight > maxGrossKg
	return out
}
