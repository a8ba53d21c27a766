package catalog

// Exporter is the exporting company identity printed on every document.
type Exporter struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"taxId"`
}

// Personnel holds the named signatories and contacts the document
// templates reference.
type Personnel struct {
	GeneralManager  string `json:"generalManager"`
	ShipperContact  string `json:"shipperContact"`
	QATechnician    string `json:"qaTechnician"`
	ReceiverContact string `json:"receiverContact"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail"`
}

// EmergencyContact is the 24-hour hazmat incident contact block.
type EmergencyContact struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	CCN           string `json:"ccn"`
	International string `json:"international"`
}

// DefaultExporter returns the reference deployment exporter identity.
func DefaultExporter() Exporter {
	return Exporter{
		Name:    "Texas American Trade, Inc.",
		Address: "5075 Westheimer, Suite 799 W",
		City:    "Houston, Texas – USA 77056",
		Phone:   "+1 (832) 238-1103",
		Email:   "hernany@texasamericantrade.com",
		TaxID:   "74-3016496",
	}
}

// DefaultPersonnel returns the reference deployment signatories.
func DefaultPersonnel() Personnel {
	return Personnel{
		GeneralManager:  "Hernany Martinez",
		ShipperContact:  "Diego Yañez Fortoul",
		QATechnician:    "Rudy Montalvo",
		ReceiverContact: "Hernany Martinez",
		ContactPhone:    "(832) 671-9631",
		ContactEmail:    "hernany@texasamericantrade.com",
	}
}

// Chemtrec returns the CHEMTREC emergency contact block.
func Chemtrec() EmergencyContact {
	return EmergencyContact{
		Name:          "CHEMTREC",
		Phone:         "1-800-424-9300",
		CCN:           "792659",
		International: "+1 703-527-3887",
	}
}
