package sources

import "github.com/mullach/allfed-integrated-model/scenario"

// industrialRampPercentOfNeed is the canonical step schedule the reference
// model tabulates for single-cell-protein and cellulosic-sugar ramp-up,
// expressed as percent of the industrial monthly kcal reference reached at
// each month after the ramp begins.
var industrialRampPercentOfNeed = []float64{
	0, 0, 1, 2, 4, 7, 11, 16, 22, 29, 37, 46, 56, 67, 79, 92, 100, 100, 100, 100,
}

// industrialWasteFraction is the fixed 12% fraction divided out of both
// methane SCP and cellulosic sugar: their ramp is scaled up by
// 1/(1 - 0.12), together with the slope multiplier and sugar waste.
const industrialWasteFraction = 0.12

// Industrial holds the derived monthly output and nutrient ratios for the
// methane single-cell-protein and cellulosic-sugar sources.
type Industrial struct {
	SCPKcals []float64
	CSKcals  []float64

	SCPFracProtein float64
	SCPFracFat     float64
	// cellulosic sugar carries no fat or protein, only kcals.
}

// DeriveIndustrial builds the delay-then-step-ramp kcal series for both
// industrial foods, scaled by the industrial monthly kcal reference and
// the configured slope multiplier, waste-adjusted.
func DeriveIndustrial(in *scenario.Inputs, industrialMonthlyKcalsReference, slopeMultiplier float64) *Industrial {
	ind := &Industrial{
		SCPKcals:       make([]float64, in.NMonths),
		CSKcals:        make([]float64, in.NMonths),
		SCPFracProtein: scenario.SCPFracProtein,
		SCPFracFat:     scenario.SCPFracFat,
	}

	sugarWasteFactor := 1 - in.Waste.Sugar/100
	scale := 1 / (1 - industrialWasteFraction) * slopeMultiplier * sugarWasteFactor

	for m := 0; m < in.NMonths; m++ {
		idx := m - in.Delay.IndustrialFoods
		if idx < 0 {
			continue
		}
		pct := rampPercent(idx)
		level := pct / 100 * industrialMonthlyKcalsReference * scale

		if in.AddMethaneSCP {
			ind.SCPKcals[m] = level
		}
		if in.AddCellulosicSugar {
			ind.CSKcals[m] = level
		}
	}
	return ind
}

func rampPercent(monthsSinceStart int) float64 {
	if monthsSinceStart < 0 {
		return 0
	}
	if monthsSinceStart >= len(industrialRampPercentOfNeed) {
		return industrialRampPercentOfNeed[len(industrialRampPercentOfNeed)-1]
	}
	return industrialRampPercentOfNeed[monthsSinceStart]
}
