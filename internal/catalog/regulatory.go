package catalog

// Regulatory lookup tables keyed by UN number. These feed hazmat
// paperwork, so a miss must surface as "not found" to the caller and
// never substitute a neighboring entry.

// ShippingName is the proper shipping name pair for one UN number.
type ShippingName struct {
	// DOT is the English proper shipping name (49 CFR).
	DOT string `json:"dot"`

	// NOM is the Spanish proper shipping name (NOM-002-SCT).
	NOM string `json:"nom"`

	// Qualifier is an optional free-text technical name appended to
	// n.o.s. entries, e.g. " (Xylene, Methyl Alcohol)".
	Qualifier string `json:"qualifier,omitempty"`
}

// NotFound is rendered on hazmat paperwork when a regulatory lookup
// misses; missing data must be visible, not silently replaced.
const NotFound = "N/A"

var ergGuides = map[string]string{
	"UN1219": "127",
	"UN1268": "128",
	"UN1299": "128",
	"UN1992": "131",
	"NA1993": "128",
	"UN2735": "153",
	"UN2924": "154",
}

var shippingNames = map[string]ShippingName{
	"UN1219": {DOT: "Isopropanol", NOM: "Isopropanol"},
	"UN1268": {DOT: "Petroleum distillates, n.o.s.", NOM: "Destilados de petróleo, n.e.p."},
	"UN1299": {DOT: "Turpentine", NOM: "Trementina"},
	"UN1992": {DOT: "Flammable liquid, toxic, n.o.s.", NOM: "Líquido inflamable, tóxico, n.e.p.", Qualifier: " (Xylene, Methyl Alcohol)"},
	"NA1993": {DOT: "Combustible liquid, n.o.s.", NOM: "Líquido combustible, n.e.p."},
	"UN2735": {DOT: "Amines, liquid, corrosive, n.o.s.", NOM: "Aminas, líquidas, corrosivas, n.e.p."},
	"UN2924": {DOT: "Flammable liquid, corrosive, n.o.s.", NOM: "Líquido inflamable, corrosivo, n.e.p."},
}

// ERGGuide returns the Emergency Response Guidebook number for a UN
// number, reporting whether it is known.
func ERGGuide(unNumber string) (string, bool) {
	g, ok := ergGuides[unNumber]
	return g, ok
}

// ProperShippingName returns the DOT/NOM shipping names for a UN
// number, reporting whether they are known.
func ProperShippingName(unNumber string) (ShippingName, bool) {
	n, ok := shippingNames[unNumber]
	return n, ok
}
