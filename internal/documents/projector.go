package documents

import (
	"time"

	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// Tab identifies one document in the export packet.
type Tab string

const (
	TabSummary   Tab = "summary"
	TabInvoice   Tab = "invoice"
	TabPacking   Tab = "packing"
	TabUSMCA     Tab = "usmca"
	TabBOL       Tab = "bol"
	TabCOQ       Tab = "coq"
	TabHazmat    Tab = "hazmat"
	TabChecklist Tab = "checklist"
)

// TabInfo describes one entry of the document tab strip.
type TabInfo struct {
	ID    Tab    `json:"id"`
	Label string `json:"label"`
	Show  bool   `json:"show"`
}

// Projector builds the document views. It owns only static identity
// data; all shipment-specific numbers arrive pre-computed.
type Projector struct {
	exporter  catalog.Exporter
	personnel catalog.Personnel
	emergency catalog.EmergencyContact
}

// NewProjector creates a projector for the given exporter identity.
func NewProjector(exporter catalog.Exporter, personnel catalog.Personnel, emergency catalog.EmergencyContact) *Projector {
	return &Projector{exporter: exporter, personnel: personnel, emergency: emergency}
}

// Tabs returns the document tab strip. The hazmat declaration is shown
// only when the shipment actually carries regulated product.
func (p *Projector) Tabs(calc shipment.Calculations) []TabInfo {
	return []TabInfo{
		{ID: TabSummary, Label: "Summary", Show: true},
		{ID: TabInvoice, Label: "Invoice", Show: true},
		{ID: TabPacking, Label: "Packing List", Show: true},
		{ID: TabUSMCA, Label: "USMCA", Show: true},
		{ID: TabBOL, Label: "Bill of Lading", Show: true},
		{ID: TabCOQ, Label: "COQ (Spanish)", Show: true},
		{ID: TabHazmat, Label: "Hazmat", Show: calc.HasHazmat},
		{ID: TabChecklist, Label: "Reminders", Show: true},
	}
}

// Build returns the projection for one tab, or (nil, false) for an
// unknown tab or a hazmat request on a shipment without regulated
// product.
func (p *Projector) Build(tab Tab, form shipment.ShipmentFormData, calc shipment.Calculations) (any, bool) {
	switch tab {
	case TabSummary:
		return p.Summary(form, calc), true
	case TabInvoice:
		return p.Invoice(form, calc), true
	case TabPacking:
		return p.PackingList(form, calc), true
	case TabUSMCA:
		return p.USMCA(form, calc, time.Now()), true
	case TabBOL:
		return p.BillOfLading(form, calc), true
	case TabCOQ:
		return p.CertificateOfQuality(form, calc), true
	case TabHazmat:
		if !calc.HasHazmat {
			return nil, false
		}
		return p.HazmatDeclaration(form, calc), true
	case TabChecklist:
		return p.Checklist(form, calc), true
	default:
		return nil, false
	}
}

// orDash substitutes the em dash placeholder the templates print for
// blank optional fields.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// fallback substitutes a template default for a blank field.
func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
