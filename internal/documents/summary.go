package documents

import (
	"github.com/shopspring/decimal"

	"tatdocs/internal/shipment"
)

// SummaryLine is one product row of the shipment summary.
type SummaryLine struct {
	Quantity    float64         `json:"quantity"`
	UnitType    string          `json:"unitType"`
	ProductName string          `json:"productName"`
	TotalValue  decimal.Decimal `json:"totalValue"`
}

// Summary is the internal one-page shipment overview.
type Summary struct {
	ExporterName string `json:"exporterName"`

	CustomerName  string `json:"customerName"`
	MexicoAddress string `json:"mexicoAddress"`
	RFC           string `json:"rfc"`

	InvoiceNumber string `json:"invoiceNumber"`
	PONumber      string `json:"poNumber"`
	ShipDate      string `json:"shipDate"`
	Carrier       string `json:"carrier"`

	Lines []SummaryLine `json:"lines"`

	TotalNetWeightKg   float64         `json:"totalNetWeightKg"`
	TotalGrossWeightKg float64         `json:"totalGrossWeightKg"`
	TotalValue         decimal.Decimal `json:"totalValue"`
	HasHazmat          bool            `json:"hasHazmat"`
}

// Summary builds the shipment summary view.
func (p *Projector) Summary(form shipment.ShipmentFormData, calc shipment.Calculations) Summary {
	lines := make([]SummaryLine, 0, len(calc.Items))
	for _, item := range calc.Items {
		lines = append(lines, SummaryLine{
			Quantity:    item.Quantity.Float64(),
			UnitType:    string(item.UnitType),
			ProductName: item.Product.Name,
			TotalValue:  item.TotalValue,
		})
	}
	return Summary{
		ExporterName:       p.exporter.Name,
		CustomerName:       fallback(form.CustomerName, "[Customer Name]"),
		MexicoAddress:      fallback(form.MexicoAddress, "[Mexico Address]"),
		RFC:                orDash(form.RFC),
		InvoiceNumber:      calc.InvoiceNumber,
		PONumber:           orDash(form.PONumber),
		ShipDate:           FormatDate(form.ShipDate, DateLong),
		Carrier:            form.Carrier,
		Lines:              lines,
		TotalNetWeightKg:   calc.TotalNetWeight,
		TotalGrossWeightKg: calc.TotalGrossWeight,
		TotalValue:         calc.TotalValue,
		HasHazmat:          calc.HasHazmat,
	}
}
