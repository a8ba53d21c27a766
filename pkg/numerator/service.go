// Package numerator suggests invoice sequence numbers. The form's base
// and sequence stay free text; the numerator only proposes the next
// unused sequence for a base, seeded from saved shipments. Advisory
// only: the operator can type anything.
package numerator

import (
	"strconv"
	"strings"
	"sync"
)

// Config holds suggestion formatting.
type Config struct {
	// PadWidth is the minimum sequence width, zero-padded. Zero means
	// no padding.
	PadWidth int
}

// DefaultConfig returns the reference formatting: unpadded sequences.
func DefaultConfig() Config {
	return Config{PadWidth: 0}
}

// Service tracks the highest sequence seen per invoice base.
type Service struct {
	config Config

	mu      sync.Mutex
	highest map[string]int64
}

// New creates a numerator service.
func New(config Config) *Service {
	return &Service{
		config:  config,
		highest: make(map[string]int64),
	}
}

// Observe records an issued invoice number, e.g. while loading saved
// shipments at startup. Non-numeric sequences are ignored; free-text
// sequences never block suggestions.
func (s *Service) Observe(base, sequence string) {
	n, err := strconv.ParseInt(strings.TrimSpace(sequence), 10, 64)
	if err != nil || n < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > s.highest[base] {
		s.highest[base] = n
	}
}

// ObserveInvoice records a full "base.sequence" invoice number.
func (s *Service) ObserveInvoice(invoiceNumber string) {
	base, sequence, ok := strings.Cut(invoiceNumber, ".")
	if !ok {
		return
	}
	s.Observe(base, sequence)
}

// Suggest returns the next sequence for a base, one past the highest
// observed. A base never seen before suggests "1".
func (s *Service) Suggest(base string) string {
	s.mu.Lock()
	next := s.highest[base] + 1
	s.mu.Unlock()

	out := strconv.FormatInt(next, 10)
	if pad := s.config.PadWidth - len(out); pad > 0 {
		out = strings.Repeat("0", pad) + out
	}
	return out
}
