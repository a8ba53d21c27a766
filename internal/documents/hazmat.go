package documents

import (
	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// HazmatItem is the regulatory block for one regulated line item.
type HazmatItem struct {
	ProductName  string `json:"productName"`
	UNNumber     string `json:"unNumber"`
	HazardClass  string `json:"hazardClass"`
	PackingGroup string `json:"packingGroup"`

	// ERGGuide is the Emergency Response Guidebook number, or the N/A
	// sentinel when the UN number is not in the table.
	ERGGuide string `json:"ergGuide"`

	DOTShippingName string `json:"dotShippingName"`
	NOMShippingName string `json:"nomShippingName"`

	Quantity    float64 `json:"quantity"`
	UnitType    string  `json:"unitType"`
	NetWeightKg float64 `json:"netWeightKg"`
}

// HazmatDeclaration covers only the regulated line items, with the
// 24-hour emergency contact and the Mexican NOM-002-SCT requirements.
type HazmatDeclaration struct {
	Emergency catalog.EmergencyContact `json:"emergency"`

	Items []HazmatItem `json:"items"`

	MexicanRequirements []string `json:"mexicanRequirements"`
}

// HazmatDeclaration builds the hazmat information sheet. Unregulated
// line items are omitted entirely; regulatory lookup misses surface as
// N/A sentinels rather than substituted values.
func (p *Projector) HazmatDeclaration(form shipment.ShipmentFormData, calc shipment.Calculations) HazmatDeclaration {
	items := make([]HazmatItem, 0, len(calc.Items))
	for _, item := range calc.Items {
		if !item.Product.IsHazmat() {
			continue
		}
		erg := catalog.NotFound
		if g, ok := catalog.ERGGuide(item.Product.UNNumber); ok {
			erg = g
		}
		dot, nom := catalog.NotFound, catalog.NotFound
		if name, ok := catalog.ProperShippingName(item.Product.UNNumber); ok {
			dot, nom = name.DOT, name.NOM
		}
		items = append(items, HazmatItem{
			ProductName:     item.Product.Name,
			UNNumber:        item.Product.UNNumber,
			HazardClass:     item.Product.HazardClass,
			PackingGroup:    item.Product.PackingGroup,
			ERGGuide:        erg,
			DOTShippingName: dot,
			NOMShippingName: nom,
			Quantity:        item.Quantity.Float64(),
			UnitType:        string(item.UnitType),
			NetWeightKg:     item.NetWeight,
		})
	}
	return HazmatDeclaration{
		Emergency: p.emergency,
		Items:     items,
		MexicanRequirements: []string{
			"All hazmat information must appear in SPANISH on Mexican documents",
			"Spanish SDS (Hoja de Datos de Seguridad) required",
			"NOM-002-SCT compliant labeling required",
			"Mexican emergency contact number must be provided",
		},
	}
}
