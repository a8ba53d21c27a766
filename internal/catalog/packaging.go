package catalog

import (
	"context"

	"tatdocs/internal/core/apperror"
)

// PackagingStandards holds the container tare weights and pallet-loading
// rules shared by every weight calculation.
type PackagingStandards struct {
	// DrumTareKg is the empty weight of one 208 L steel drum.
	DrumTareKg float64 `json:"drumTareKg"`

	// ToteTareKg is the empty weight of one 1000 L IBC tote.
	ToteTareKg float64 `json:"toteTareKg"`

	// DrumsPerPallet is how many drums share one pallet.
	DrumsPerPallet int `json:"drumsPerPallet"`

	// TotesPerPallet is always 1: a tote occupies its own pallet.
	TotesPerPallet int `json:"totesPerPallet"`
}

// DefaultPackagingStandards returns the reference deployment values.
func DefaultPackagingStandards() PackagingStandards {
	return PackagingStandards{
		DrumTareKg:     25,
		ToteTareKg:     60,
		DrumsPerPallet: 4,
		TotesPerPallet: 1,
	}
}

// Validate implements the all-positive invariant.
func (s PackagingStandards) Validate(ctx context.Context) error {
	if s.DrumTareKg <= 0 || s.ToteTareKg <= 0 {
		return apperror.NewValidation("tare weights must be positive")
	}
	if s.DrumsPerPallet <= 0 || s.TotesPerPallet <= 0 {
		return apperror.NewValidation("pallet loading factors must be positive")
	}
	return nil
}

// MaxGrossWeightKg is the border-crossing truck weight limit used for
// the advisory overweight flag.
const MaxGrossWeightKg = 21000.0
