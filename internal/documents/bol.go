package documents

import (
	"fmt"

	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// BOLLine is one freight row of the bill of lading.
type BOLLine struct {
	Quantity    float64 `json:"quantity"`
	Hazmat      bool    `json:"hazmat"`
	ProductName string  `json:"productName"`

	// Description is the regulated "UN number, proper shipping name,
	// class, packing group" string, or the not-regulated commodity
	// description.
	Description string `json:"description"`

	LotNumber     string  `json:"lotNumber"`
	Density       float64 `json:"density"`
	GrossWeightKg float64 `json:"grossWeightKg"`
}

// BOLParty is a shipper or consignee block.
type BOLParty struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city,omitempty"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// BillOfLading is the straight (non-negotiable) bill of lading to the
// Laredo transfer point.
type BillOfLading struct {
	BOLNumber string `json:"bolNumber"`
	Date      string `json:"date"`
	ITNNumber string `json:"itnNumber,omitempty"`

	Shipper     BOLParty `json:"shipper"`
	ConsignedTo BOLParty `json:"consignedTo"`

	// Emergency is present only when the shipment carries regulated
	// product.
	Emergency *catalog.EmergencyContact `json:"emergency,omitempty"`

	Lines              []BOLLine `json:"lines"`
	TotalGrossWeightKg float64   `json:"totalGrossWeightKg"`

	ShipperSignature string `json:"shipperSignature"`
	Carrier          string `json:"carrier"`
	LoadNumber       string `json:"loadNumber"`
}

// BillOfLading builds the BOL view. The BOL number is the invoice
// number; regulated rows carry the DOT description with an N/A
// sentinel for unknown shipping names.
func (p *Projector) BillOfLading(form shipment.ShipmentFormData, calc shipment.Calculations) BillOfLading {
	lines := make([]BOLLine, 0, len(calc.Items))
	for _, item := range calc.Items {
		desc := "Petroleum Chemical Additives, Not Regulated"
		if item.Product.IsHazmat() {
			dot := catalog.NotFound
			if name, ok := catalog.ProperShippingName(item.Product.UNNumber); ok {
				dot = name.DOT
			}
			desc = fmt.Sprintf("%s, %s, %s, %s",
				item.Product.UNNumber, dot, item.Product.HazardClass, item.Product.PackingGroup)
		}
		lines = append(lines, BOLLine{
			Quantity:      item.Quantity.Float64(),
			Hazmat:        item.Product.IsHazmat(),
			ProductName:   item.Product.Name,
			Description:   desc,
			LotNumber:     item.LotNumber,
			Density:       item.Product.Density,
			GrossWeightKg: item.GrossWeight,
		})
	}

	var emergency *catalog.EmergencyContact
	if calc.HasHazmat {
		e := p.emergency
		emergency = &e
	}

	return BillOfLading{
		BOLNumber: calc.InvoiceNumber,
		Date:      FormatDate(form.ShipDate, DateISO),
		ITNNumber: form.ITNNumber,
		Shipper: BOLParty{
			Name:        p.exporter.Name,
			Address:     p.exporter.Address,
			City:        p.exporter.City,
			ContactName: p.personnel.ShipperContact,
		},
		ConsignedTo: BOLParty{
			Name:         orDash(form.CustomerName),
			Address:      fallback(form.LaredoAddress, "Laredo, TX 78045"),
			ContactName:  fallback(form.LaredoContactName, "Receiving Dept"),
			ContactPhone: form.LaredoContactPhone,
		},
		Emergency:          emergency,
		Lines:              lines,
		TotalGrossWeightKg: calc.TotalGrossWeight,
		ShipperSignature:   p.personnel.ShipperContact,
		Carrier:            form.Carrier,
		LoadNumber:         form.LoadNumber,
	}
}
