package scenario

import (
	"fmt"
	"math"
)

// ValidationError reports a single invalid or missing scenario field,
// satisfying the "fail fast, report field name" policy for input
// validation errors.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scenario: invalid field %q: %s", e.Field, e.Reason)
}

// Validate checks the fail-fast preconditions: a positive
// horizon, a month number in range, finite nutrient needs, a seasonality
// vector that sums to 1, and the feed/biofuel delay ordering the reference
// model asserts (feed_shutoff_delay >= biofuel_delay; see the Open
// Questions note in DESIGN.md about whether the LP should also enforce
// this during solve).
func Validate(in *Inputs) error {
	if in.NMonths <= 0 {
		return &ValidationError{"NMONTHS", "must be positive"}
	}
	if in.StartingMonthNum < 1 || in.StartingMonthNum > 12 {
		return &ValidationError{"STARTING_MONTH_NUM", "must be in 1..12"}
	}
	if !finite(in.Population) || in.Population <= 0 {
		return &ValidationError{"POP", "must be a positive finite number"}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"NUTRITION.KCALS_DAILY", in.Nutrition.KcalsDaily},
		{"NUTRITION.FAT_DAILY", in.Nutrition.FatDaily},
		{"NUTRITION.PROTEIN_DAILY", in.Nutrition.ProteinDaily},
	} {
		if !finite(f.v) || f.v < 0 {
			return &ValidationError{f.name, "must be a non-negative finite number"}
		}
	}

	sum := 0.0
	for i, frac := range in.Seasonality {
		if !finite(frac) || frac < 0 {
			return &ValidationError{fmt.Sprintf("SEASONALITY[%d]", i), "must be a non-negative finite number"}
		}
		sum += frac
	}
	if math.Abs(sum-1) > 1e-9 {
		return &ValidationError{"SEASONALITY", fmt.Sprintf("must sum to 1, got %v", sum)}
	}

	for i, ratio := range in.DisruptionCropsYear {
		if !finite(ratio) {
			return &ValidationError{fmt.Sprintf("DISRUPTION_CROPS_YEAR%d", i+1), "must be finite"}
		}
	}

	if in.Delay.FeedShutoffMonths < in.Delay.BiofuelShutoffMonths {
		return &ValidationError{"DELAY.FEED_SHUTOFF_MONTHS",
			"must be >= DELAY.BIOFUEL_SHUTOFF_MONTHS (the reference model treats this as a required precondition, not merely advisory; see DESIGN.md)"}
	}

	if in.IncludeFat && in.Livestock.CullDuration < 0 {
		return &ValidationError{"LIVESTOCK.CULL_DURATION", "must be >= 0"}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
