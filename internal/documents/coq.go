package documents

import (
	"strconv"
	"strings"

	"tatdocs/internal/shipment"
)

// Certificates of quality print the laboratory's street address, not
// the commercial office.
const (
	LabAddress = "6260 Westpark Drive, Suite 300N"
	LabCity    = "Houston, Texas – USA 77057"
)

// LabResult is one analysis row of the certificate. Numeric cells are
// pre-formatted Spanish-style strings with comma decimal separators;
// blank bounds print as the em dash placeholder.
type LabResult struct {
	Test   string `json:"test"`
	Method string `json:"method"`
	Min    string `json:"min"`
	Max    string `json:"max"`
	Result string `json:"result"`
}

// COQItem is the per-product certificate card.
type COQItem struct {
	ProductName    string      `json:"productName"`
	Manufacturer   string      `json:"manufacturer"`
	ProductionDate string      `json:"productionDate"`
	LotNumber      string      `json:"lotNumber"`
	LabID          string      `json:"labId"`
	Results        []LabResult `json:"results"`
}

// CertificateOfQuality is the Spanish-language certificado de calidad.
type CertificateOfQuality struct {
	LabAddress string `json:"labAddress"`
	LabCity    string `json:"labCity"`

	Items []COQItem `json:"items"`

	Attestation string `json:"attestation"`
	Technician  string `json:"technician"`
	Date        string `json:"date"`
}

// commaDecimal renders a float with a fixed number of decimals and a
// comma separator, e.g. 0.86 -> "0,86".
func commaDecimal(v float64, places int) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', places, 64), ".", ",", 1)
}

// CertificateOfQuality builds the Spanish certificate of quality, one
// card per line item with the standard four-row analysis table.
func (p *Projector) CertificateOfQuality(form shipment.ShipmentFormData, calc shipment.Calculations) CertificateOfQuality {
	labID := LabID(form.ShipDate)

	items := make([]COQItem, 0, len(calc.Items))
	for _, item := range calc.Items {
		prod := item.Product
		items = append(items, COQItem{
			ProductName:    prod.Name,
			Manufacturer:   p.exporter.Name,
			ProductionDate: FormatDate(form.ShipDate, DateSpanish),
			LotNumber:      item.LotNumber,
			LabID:          labID,
			Results: []LabResult{
				{Test: "Apariencia, Color", Method: "ASTM D1544", Min: "—", Max: "—", Result: "Amber"},
				{Test: "pH", Method: "ASTM E70", Min: "—", Max: commaDecimal(prod.MaxSG, 1), Result: commaDecimal(prod.PH, 1)},
				{Test: "Gravedad especifica @ 72F", Method: "ASTM D891B", Min: commaDecimal(prod.MinSG, 2), Max: commaDecimal(prod.MaxSG, 2), Result: commaDecimal(prod.Density, 2)},
				{Test: "Presencia de Silicio Organico", Method: "ID-142-7500", Min: "—", Max: "0,00", Result: "0,00"},
			},
		})
	}
	return CertificateOfQuality{
		LabAddress:  LabAddress,
		LabCity:     LabCity,
		Items:       items,
		Attestation: "Texas American Trade, Inc. certifica que el producto cumple o excede las especificaciones establecidas en este certificado de calidad y analisis.",
		Technician:  p.personnel.QATechnician,
		Date:        FormatDate(form.ShipDate, DateMMDDYYYY),
	}
}
