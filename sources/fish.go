package sources

import "github.com/mullach/allfed-integrated-model/scenario"

// fishAnnualTons and fishKcalsPerTon are present-day global seafood supply
// figures from the FAO supply-utilization sheet.
const (
	fishAnnualTons  = 112e6
	fishKcalsPerTon = 1373 * 1000
)

// fishDeclineSchedule is the piecewise-linear decline to roughly 30% of
// baseline over several years, tabulated the way the reference model steps
// its industrial-food and fish disruption curves.
var fishDeclineSchedule = []float64{
	1.0, 0.97, 0.90, 0.80, 0.70, 0.60, 0.52, 0.46, 0.41, 0.37, 0.34, 0.32,
	0.31, 0.305, 0.30, 0.30,
}

// Fish holds the derived monthly fish-kcals production series.
type Fish struct {
	KcalsByMonth []float64
}

// DeriveFish computes the monthly baseline (annual tonnage * kcals/ton /
// 12, waste-adjusted) and applies the decline schedule when the scenario
// is a nuclear-winter-style disruption; otherwise holds flat baseline.
func DeriveFish(in *scenario.Inputs) *Fish {
	f := &Fish{KcalsByMonth: make([]float64, in.NMonths)}
	if !in.AddFish {
		return f
	}

	wasteFactor := 1 - in.Waste.Seafood/100
	baseline := fishAnnualTons * fishKcalsPerTon / 12 * wasteFactor / 1e9

	for m := 0; m < in.NMonths; m++ {
		if !in.IsNuclearWinter {
			f.KcalsByMonth[m] = baseline
			continue
		}
		idx := m
		if idx >= len(fishDeclineSchedule) {
			idx = len(fishDeclineSchedule) - 1
		}
		f.KcalsByMonth[m] = baseline * fishDeclineSchedule[idx]
	}
	return f
}
