package documents

import (
	"fmt"
	"time"

	"tatdocs/internal/shipment"
)

// USMCAParty is one of the four name-and-address blocks on the
// certificate.
type USMCAParty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	RFC     string `json:"rfc,omitempty"`
}

// USMCALine is one certified goods row.
type USMCALine struct {
	Description      string `json:"description"`
	HSClassification string `json:"hsClassification"`

	// Criterion is always "A": goods wholly obtained or produced in a
	// USMCA country.
	Criterion string `json:"criterion"`

	Origin        string `json:"origin"`
	BlanketPeriod string `json:"blanketPeriod"`
}

// USMCACertificate is the certificate of origin for preferential
// tariff treatment.
type USMCACertificate struct {
	Certifier USMCAParty `json:"certifier"`
	Exporter  USMCAParty `json:"exporter"`
	Producer  USMCAParty `json:"producer"`
	Importer  USMCAParty `json:"importer"`

	Lines []USMCALine `json:"lines"`

	CertifierName  string `json:"certifierName"`
	CertifierTitle string `json:"certifierTitle"`
	SignatureDate  string `json:"signatureDate"`
}

// USMCA builds the certificate of origin. The blanket period covers
// the full calendar year of the ship date.
func (p *Projector) USMCA(form shipment.ShipmentFormData, calc shipment.Calculations, now time.Time) USMCACertificate {
	year := ShipYear(form.ShipDate, now)
	blanket := fmt.Sprintf("01/01/%d TO 12/31/%d", year, year)

	self := USMCAParty{
		Name:    p.exporter.Name,
		Address: p.exporter.Address,
		City:    p.exporter.City,
		TaxID:   p.exporter.TaxID,
	}
	producer := self
	producer.TaxID = ""

	lines := make([]USMCALine, 0, len(calc.Items))
	for _, item := range calc.Items {
		lines = append(lines, USMCALine{
			Description:      item.Product.Name + " (CHEMICAL ADDITIVE)",
			HSClassification: item.Product.HTSCode,
			Criterion:        "A",
			Origin:           "USA",
			BlanketPeriod:    blanket,
		})
	}
	return USMCACertificate{
		Certifier: self,
		Exporter:  self,
		Producer:  producer,
		Importer: USMCAParty{
			Name:    orDash(form.CustomerName),
			Address: orDash(form.MexicoAddress),
			RFC:     orDash(form.RFC),
		},
		Lines:          lines,
		CertifierName:  p.personnel.GeneralManager,
		CertifierTitle: "GENERAL MANAGER",
		SignatureDate:  FormatDate(form.ShipDate, DateLong),
	}
}
