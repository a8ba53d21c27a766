// Package catalog provides the static reference data every document is
// built from: the product database, packaging standards, regulatory
// lookup tables and the exporter identity. Loaded once at process start
// and immutable afterwards.
package catalog

import (
	"context"

	"tatdocs/internal/core/apperror"
)

// NotRegulated is the UN number sentinel for products without a
// hazardous-materials classification.
const NotRegulated = "Not regulated"

// Product is a catalog entry for one chemical additive.
type Product struct {
	// ID is the stable catalog key (P01..P22) referenced by line items
	// and document templates.
	ID string `db:"id" json:"id"`

	// Name is the commercial product name as printed on documents.
	Name string `db:"name" json:"name"`

	// UNNumber is the hazardous-materials number, or NotRegulated.
	UNNumber string `db:"un_number" json:"unNumber"`

	// HazardClass is the DOT hazard class ("-" when not regulated).
	HazardClass string `db:"hazard_class" json:"hazardClass"`

	// PackingGroup is the DOT packing group ("-" when not regulated).
	PackingGroup string `db:"packing_group" json:"packingGroup"`

	// Density is the specific gravity. Always > 0.
	Density float64 `db:"density" json:"density"`

	// KgPerTote is the net product weight of one full 1000 L tote.
	KgPerTote float64 `db:"kg_per_tote" json:"kgPerTote"`

	// KgPerDrum is the net product weight of one full 208 L drum.
	KgPerDrum float64 `db:"kg_per_drum" json:"kgPerDrum"`

	// HTSCode is the harmonized tariff classification.
	HTSCode string `db:"hts_code" json:"htsCode"`

	// Lab specification window for the certificate of quality.
	PH    float64 `db:"ph" json:"pH"`
	MinSG float64 `db:"min_sg" json:"minSG"`
	MaxSG float64 `db:"max_sg" json:"maxSG"`
}

// IsHazmat reports whether the product carries a UN number.
func (p Product) IsHazmat() bool {
	return p.UNNumber != NotRegulated
}

// Validate implements basic catalog entry invariants.
func (p Product) Validate(ctx context.Context) error {
	if p.ID == "" {
		return apperror.NewValidation("product id is required")
	}
	if p.Name == "" {
		return apperror.NewValidation("product name is required").
			WithDetail("id", p.ID)
	}
	if p.Density <= 0 {
		return apperror.NewValidation("product density must be positive").
			WithDetail("id", p.ID).
			WithDetail("density", p.Density)
	}
	return nil
}

// withDefaultSpecs fills the lab specification window for products that
// have no measured values: neutral-ish pH and a ±2% gravity band around
// the nominal density.
func withDefaultSpecs(p Product) Product {
	p.PH = 7.5
	p.MinSG = p.Density * 0.98
	p.MaxSG = p.Density * 1.02
	return p
}

// Catalog is the immutable product database with id lookup.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// NewCatalog builds a catalog from an ordered product list.
// The first entry doubles as the fail-open default for unknown ids.
func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, apperror.NewValidation("catalog requires at least one product")
	}
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if err := p.Validate(context.Background()); err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID]; dup {
			return nil, apperror.NewConflict("duplicate product id").
				WithDetail("id", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Default returns the built-in 22-product database.
func Default() *Catalog {
	c, err := NewCatalog(productDatabase())
	if err != nil {
		// The built-in table is validated by tests; failing here means
		// the binary itself is broken.
		panic(err)
	}
	return c
}

// Lookup returns the product for id, reporting whether it exists.
func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Resolve returns the product for id, falling back to the first catalog
// entry when the id is unknown. The form may briefly reference a removed
// or mistyped id; resolution must never fail a recomputation.
func (c *Catalog) Resolve(id string) Product {
	if p, ok := c.byID[id]; ok {
		return p
	}
	return c.products[0]
}

// Products returns the catalog entries in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// productDatabase returns the reference deployment's product table.
func productDatabase() []Product {
	return []Product{
		withDefaultSpecs(Product{ID: "P01", Name: "TATI ANTIFOAM-07", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.01, KgPerTote: 1010, KgPerDrum: 208, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P02", Name: "TATI CLEAN 100", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.01, KgPerTote: 1010, KgPerDrum: 208, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P03", Name: "TATI CYDE 900", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.02, KgPerTote: 1020, KgPerDrum: 212, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P04", Name: "TATI FLOC-07", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.01, KgPerTote: 1010, KgPerDrum: 210, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P05", Name: "TATI FOAM 311", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.07, KgPerTote: 1070, KgPerDrum: 223, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P06", Name: "TATI SCALE 327", UNNumber: NotRegulated, HazardClass: "-", PackingGroup: "-", Density: 1.04, KgPerTote: 1040, KgPerDrum: 216, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P07", Name: "TATI NOL 99", UNNumber: "UN1219", HazardClass: "3", PackingGroup: "II", Density: 0.785, KgPerTote: 785, KgPerDrum: 163, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P08", Name: "TATI FIN 91", UNNumber: "UN1268", HazardClass: "3", PackingGroup: "II", Density: 0.92, KgPerTote: 920, KgPerDrum: 191, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P09", Name: "TATI REZ 100", UNNumber: "UN1299", HazardClass: "3", PackingGroup: "II", Density: 0.865, KgPerTote: 865, KgPerDrum: 180, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P10", Name: "TATI CLR-07", UNNumber: "UN1992", HazardClass: "3 (6.1)", PackingGroup: "II", Density: 1.01, KgPerTote: 1000, KgPerDrum: 208, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P11", Name: "TATI IH-07", UNNumber: "UN1992", HazardClass: "3 (6.1)", PackingGroup: "II", Density: 0.83, KgPerTote: 830, KgPerDrum: 173, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P12", Name: "TATI FLOW-07", UNNumber: "UN1992", HazardClass: "3 (6.1)", PackingGroup: "II", Density: 1.02, KgPerTote: 1020, KgPerDrum: 212, HTSCode: "3811.90.99"}),
		{ID: "P13", Name: "TATI Y-07", UNNumber: "UN1992", HazardClass: "3 (6.1)", PackingGroup: "II", Density: 0.86, KgPerTote: 861, KgPerDrum: 179, HTSCode: "3811.90.99", PH: 5.0, MinSG: 0.84, MaxSG: 0.90},
		withDefaultSpecs(Product{ID: "P14", Name: "TATI EB-07", UNNumber: "UN1992", HazardClass: "3 (6.1)", PackingGroup: "II", Density: 0.9, KgPerTote: 900, KgPerDrum: 187, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P15", Name: "TATI AYA-07", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 0.861, KgPerTote: 861, KgPerDrum: 179, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P16", Name: "TATI HIB-77", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 0.92, KgPerTote: 920, KgPerDrum: 191, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P17", Name: "TATI HIB-07", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 0.87, KgPerTote: 870, KgPerDrum: 181, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P18", Name: "TATI SCORE-07", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 0.99, KgPerTote: 990, KgPerDrum: 206, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P19", Name: "TATI THIN 80", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 0.861, KgPerTote: 861, KgPerDrum: 179, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P20", Name: "TATI ECO H2S SECUESTRANTE", UNNumber: "NA1993", HazardClass: "3", PackingGroup: "III", Density: 1.02, KgPerTote: 1020, KgPerDrum: 212, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P21", Name: "TATI SECUESTRANTE H2S", UNNumber: "UN2735", HazardClass: "8", PackingGroup: "III", Density: 1.12, KgPerTote: 1120, KgPerDrum: 233, HTSCode: "3811.90.99"}),
		withDefaultSpecs(Product{ID: "P22", Name: "TATI CHEM 153", UNNumber: "UN2924", HazardClass: "8", PackingGroup: "II", Density: 1.01, KgPerTote: 1010, KgPerDrum: 210, HTSCode: "3811.90.99"}),
	}
}
