package dto

import (
	"tatdocs/internal/shipment"
)

// FormResponse wraps the live form together with its derived view, so
// every edit round-trips with fresh numbers in one response.
type FormResponse struct {
	Form         shipment.ShipmentFormData `json:"form"`
	Calculations shipment.Calculations     `json:"calculations"`
}

// SequenceSuggestion proposes the next invoice sequence for a base.
type SequenceSuggestion struct {
	BaseInvoice  string `json:"baseInvoice"`
	NextSequence string `json:"nextSequence"`
}
