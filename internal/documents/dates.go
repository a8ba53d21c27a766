// Package documents projects the shipment form and its derived
// calculations into the eight export documents. Projections are pure
// data shaping: no weight, value or pallet arithmetic happens here, so
// every document agrees with the engine by construction.
package documents

import (
	"fmt"
	"time"
)

// DateFormat selects one of the fixed renderings used across the
// document set.
type DateFormat string

const (
	// DateLong is the upper-case US long form, "MARCH 15, 2026".
	DateLong DateFormat = "long"

	// DateShort is the upper-case abbreviated form, "MAR 15, 2026".
	DateShort DateFormat = "short"

	// DateMMDDYY is "03/15/26".
	DateMMDDYY DateFormat = "mmddyy"

	// DateMMDDYYYY is "03/15/2026".
	DateMMDDYYYY DateFormat = "mmddyyyy"

	// DateSpanish is the Spanish long form, "15 de marzo de 2026".
	DateSpanish DateFormat = "spanish"

	// DateISO passes the stored yyyy-mm-dd value through unchanged.
	DateISO DateFormat = "iso"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// parseShipDate interprets the form's yyyy-mm-dd value at UTC midnight.
func parseShipDate(dateStr string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a yyyy-mm-dd ship date in the requested format.
// Blank or unparseable input renders as an empty string; a missing date
// must be visibly missing on the document, not replaced with today.
func FormatDate(dateStr string, format DateFormat) string {
	if dateStr == "" {
		return ""
	}
	if format == DateISO {
		return dateStr
	}
	t, ok := parseShipDate(dateStr)
	if !ok {
		return ""
	}
	switch format {
	case DateLong:
		return toUpper(t.Format("January 2, 2006"))
	case DateShort:
		return toUpper(t.Format("Jan 2, 2006"))
	case DateMMDDYY:
		return t.Format("01/02/06")
	case DateMMDDYYYY:
		return t.Format("01/02/2006")
	case DateSpanish:
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	default:
		return dateStr
	}
}

// ShipYear extracts the calendar year of the ship date, falling back to
// the current year when the date is unparseable. The USMCA blanket
// period depends on it.
func ShipYear(dateStr string, now time.Time) int {
	if t, ok := parseShipDate(dateStr); ok {
		return t.Year()
	}
	return now.UTC().Year()
}

// LabID derives the certificate-of-quality lab identifier, MMDDYY of
// the ship date.
func LabID(dateStr string) string {
	t, ok := parseShipDate(dateStr)
	if !ok {
		return ""
	}
	return t.Format("010206")
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
