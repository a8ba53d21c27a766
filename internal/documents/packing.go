package documents

import (
	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// PackingLine is one row of the packing list.
type PackingLine struct {
	ProductName   string  `json:"productName"`
	LotNumber     string  `json:"lotNumber"`
	Quantity      float64 `json:"quantity"`
	UnitType      string  `json:"unitType"`
	NetWeightKg   float64 `json:"netWeightKg"`
	GrossWeightKg float64 `json:"grossWeightKg"`
}

// PackingConsignee is the receiving party block.
type PackingConsignee struct {
	Name          string `json:"name"`
	MexicoAddress string `json:"mexicoAddress"`
}

// PackingList itemizes per-line and total weights for the carrier.
type PackingList struct {
	Shipper   catalog.Exporter `json:"shipper"`
	Consignee PackingConsignee `json:"consignee"`

	InvoiceNumber string `json:"invoiceNumber"`
	PONumber      string `json:"poNumber"`
	ShipDate      string `json:"shipDate"`

	Lines []PackingLine `json:"lines"`

	TotalNetWeightKg   float64 `json:"totalNetWeightKg"`
	TotalTareWeightKg  float64 `json:"totalTareWeightKg"`
	TotalGrossWeightKg float64 `json:"totalGrossWeightKg"`
	TotalPallets       int     `json:"totalPallets"`

	Carrier    string `json:"carrier"`
	LoadNumber string `json:"loadNumber"`
}

// PackingList builds the packing list view. The ship date stays in ISO
// form here; the carrier systems expect it unformatted.
func (p *Projector) PackingList(form shipment.ShipmentFormData, calc shipment.Calculations) PackingList {
	lines := make([]PackingLine, 0, len(calc.Items))
	for _, item := range calc.Items {
		lines = append(lines, PackingLine{
			ProductName:   item.Product.Name,
			LotNumber:     item.LotNumber,
			Quantity:      item.Quantity.Float64(),
			UnitType:      string(item.UnitType),
			NetWeightKg:   item.NetWeight,
			GrossWeightKg: item.GrossWeight,
		})
	}
	return PackingList{
		Shipper: p.exporter,
		Consignee: PackingConsignee{
			Name:          form.CustomerName,
			MexicoAddress: form.MexicoAddress,
		},
		InvoiceNumber:      calc.InvoiceNumber,
		PONumber:           orDash(form.PONumber),
		ShipDate:           FormatDate(form.ShipDate, DateISO),
		Lines:              lines,
		TotalNetWeightKg:   calc.TotalNetWeight,
		TotalTareWeightKg:  calc.TotalTareWeight,
		TotalGrossWeightKg: calc.TotalGrossWeight,
		TotalPallets:       calc.TotalPallets,
		Carrier:            form.Carrier,
		LoadNumber:         form.LoadNumber,
	}
}
