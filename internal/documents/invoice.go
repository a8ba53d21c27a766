package documents

import (
	"github.com/shopspring/decimal"

	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// Incoterms on every commercial invoice: seller pays freight to the
// Laredo transfer point, risk passes on handover.
const Incoterms = "CFR Laredo"

// InvoiceLine is one billed row of the commercial invoice.
type InvoiceLine struct {
	Quantity    float64         `json:"quantity"`
	ProductName string          `json:"productName"`
	HTSCode     string          `json:"htsCode"`
	LotNumber   string          `json:"lotNumber"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceBillTo is the Mexican customer billing block.
type InvoiceBillTo struct {
	CustomerName  string `json:"customerName"`
	MexicoAddress string `json:"mexicoAddress"`
	Phone         string `json:"phone,omitempty"`
	RFC           string `json:"rfc"`
}

// InvoiceShipTo is the Laredo transfer delivery block.
type InvoiceShipTo struct {
	CustomerName  string `json:"customerName"`
	LaredoAddress string `json:"laredoAddress"`
	ContactName   string `json:"contactName"`
	ContactPhone  string `json:"contactPhone,omitempty"`
}

// Invoice is the commercial invoice presented at the border.
type Invoice struct {
	Exporter catalog.Exporter `json:"exporter"`

	InvoiceNumber string `json:"invoiceNumber"`
	ExportDate    string `json:"exportDate"`

	BillTo InvoiceBillTo `json:"billTo"`
	ShipTo InvoiceShipTo `json:"shipTo"`

	Incoterms  string `json:"incoterms"`
	Carrier    string `json:"carrier"`
	Broker     string `json:"broker"`
	LoadNumber string `json:"loadNumber"`

	Lines []InvoiceLine `json:"lines"`

	Subtotal decimal.Decimal `json:"subtotal"`
	SalesTax decimal.Decimal `json:"salesTax"`
	TotalDue decimal.Decimal `json:"totalDue"`

	CertifiedBy    string `json:"certifiedBy"`
	CertifiedTitle string `json:"certifiedTitle"`
	ITNNumber      string `json:"itnNumber,omitempty"`
}

// Invoice builds the commercial invoice view. Subtotal and total are
// the engine's value sum; export sales carry no sales tax.
func (p *Projector) Invoice(form shipment.ShipmentFormData, calc shipment.Calculations) Invoice {
	lines := make([]InvoiceLine, 0, len(calc.Items))
	for _, item := range calc.Items {
		lines = append(lines, InvoiceLine{
			Quantity:    item.Quantity.Float64(),
			ProductName: item.Product.Name,
			HTSCode:     item.Product.HTSCode,
			LotNumber:   item.LotNumber,
			UnitPrice:   item.UnitPrice.Decimal,
			Total:       item.TotalValue,
		})
	}
	return Invoice{
		Exporter:      p.exporter,
		InvoiceNumber: calc.InvoiceNumber,
		ExportDate:    FormatDate(form.ShipDate, DateLong),
		BillTo: InvoiceBillTo{
			CustomerName:  fallback(form.CustomerName, "[Customer Name]"),
			MexicoAddress: fallback(form.MexicoAddress, "[Mexico Address]"),
			Phone:         form.CustomerPhone,
			RFC:           orDash(form.RFC),
		},
		ShipTo: InvoiceShipTo{
			CustomerName:  fallback(form.CustomerName, "[Customer Name]"),
			LaredoAddress: fallback(form.LaredoAddress, "Laredo, TX 78045"),
			ContactName:   fallback(form.LaredoContactName, "Logistics Desk"),
			ContactPhone:  form.LaredoContactPhone,
		},
		Incoterms:      Incoterms,
		Carrier:        orDash(form.Carrier),
		Broker:         orDash(form.Broker),
		LoadNumber:     orDash(form.LoadNumber),
		Lines:          lines,
		Subtotal:       calc.TotalValue,
		SalesTax:       decimal.Zero,
		TotalDue:       calc.TotalValue,
		CertifiedBy:    p.personnel.GeneralManager,
		CertifiedTitle: "General Manager",
		ITNNumber:      form.ITNNumber,
	}
}
