package documents

import (
	"tatdocs/internal/shipment"
)

// DefaultHTSCode is the generic additives classification the catalog
// ships with; it triggers a broker-verification warning on the
// checklist.
const DefaultHTSCode = "3811.90.99"

// ChecklistItem is one workflow step.
type ChecklistItem struct {
	Text string `json:"text"`

	// Done marks steps the form already satisfies, e.g. an ITN number
	// being present.
	Done bool `json:"done"`

	// Critical marks hazmat-related steps.
	Critical bool `json:"critical"`
}

// Checklist is the border workflow reminder sheet. Item presence is
// conditional on the shipment: hazmat steps appear only for regulated
// loads, the HTS warning only when the default code is in use.
type Checklist struct {
	HTSWarning string `json:"htsWarning,omitempty"`

	BeforeShipment []ChecklistItem `json:"beforeShipment"`
	AtBorder       []ChecklistItem `json:"atBorder"`
	Accuracy       []ChecklistItem `json:"accuracy"`
}

// Checklist builds the Laredo border workflow checklist.
func (p *Projector) Checklist(form shipment.ShipmentFormData, calc shipment.Calculations) Checklist {
	var out Checklist

	for _, item := range calc.Items {
		if item.Product.HTSCode == DefaultHTSCode {
			out.HTSWarning = "Some products use the default HTS code (" + DefaultHTSCode + "). Please verify the correct HTS code with your customs broker before finalizing documents."
			break
		}
	}

	out.BeforeShipment = []ChecklistItem{
		{Text: "Verify customer's RFC number is correct"},
		{Text: "File EEI/AES to get ITN number"},
		{Text: "Add ITN number to Bill of Lading", Done: form.ITNNumber != ""},
		{Text: "Confirm US carrier to Laredo"},
		{Text: "Confirm customs broker has all documents in advance"},
	}
	if calc.HasHazmat {
		out.BeforeShipment = append(out.BeforeShipment,
			ChecklistItem{Text: "Verify Spanish SDS is with shipment", Critical: true})
	}
	out.BeforeShipment = append(out.BeforeShipment,
		ChecklistItem{Text: "Verify Certificate of Quality (Spanish) is with shipment"},
		ChecklistItem{Text: "Confirm pricing on Commercial Invoice"},
		ChecklistItem{Text: "Get authorized signature on Certificate of Origin"},
	)

	out.AtBorder = []ChecklistItem{
		{Text: "Weight accuracy is CRITICAL - Texas vs Mexico truck weight limits differ"},
		{Text: "All documents must be ready for border inspection"},
		{Text: "Commercial Invoice will be scrutinized - ensure 100% accuracy"},
		{Text: "Mexican carrier must have Carta Porte ready"},
		{Text: "Customs broker processes Numero de Pedimento and Clave Trafico"},
	}

	out.Accuracy = []ChecklistItem{
		{Text: "Customer name/address/RFC EXACTLY matches across all documents"},
		{Text: "Weights match between Invoice, Packing List, and BOL"},
		{Text: "Product description and HTS code consistent across all forms"},
		{Text: "Lot/Batch numbers match on all documents"},
	}
	if calc.HasHazmat {
		out.Accuracy = append(out.Accuracy,
			ChecklistItem{Text: "Hazmat info matches EXACTLY on all documents", Critical: true})
	}
	return out
}
