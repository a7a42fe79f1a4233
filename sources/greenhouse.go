package sources

import "github.com/mullach/allfed-integrated-model/scenario"

// greenhouseRampMonths is the number of months the greenhouse build-out
// takes to go from first construction to full area, after its head start.
const greenhouseRampMonths = 37

// greenhouseHeadStartMonths is the fixed delay, beyond the configured
// onset delay, before any greenhouse area exists.
const greenhouseHeadStartMonths = 5

// Greenhouses holds the derived area buildout and per-ha yield schedule.
type Greenhouses struct {
	FractionArea []float64 // fraction of total crop area, 0..1, length NMONTHS
	KcalsPerHa   []float64
	FatPerHa     []float64
	ProteinPerHa []float64
}

// DeriveGreenhouses builds the area ramp (flat zero for delay+5 months,
// then linear to cap over 37 months, then flat) and the per-ha yield
// series, informed by the outdoor-crop disruption schedule and the
// gain percent.
func DeriveGreenhouses(in *scenario.Inputs, oc *OutdoorCrops) *Greenhouses {
	gh := &Greenhouses{
		FractionArea: make([]float64, in.NMonths),
		KcalsPerHa:   make([]float64, in.NMonths),
		FatPerHa:     make([]float64, in.NMonths),
		ProteinPerHa: make([]float64, in.NMonths),
	}
	if !in.AddGreenhouses {
		return gh
	}

	zeroMonths := in.Delay.Greenhouse + greenhouseHeadStartMonths
	rampEnd := zeroMonths + greenhouseRampMonths
	gain := 1 + in.GreenhouseGainPercent/100

	for m := 0; m < in.NMonths; m++ {
		switch {
		case m < zeroMonths:
			gh.FractionArea[m] = 0
		case m < rampEnd:
			gh.FractionArea[m] = float64(m-zeroMonths) / float64(greenhouseRampMonths)
		default:
			gh.FractionArea[m] = 1
		}

		reductionIdx := m + (in.StartingMonthNum - 1)
		if reductionIdx >= len(oc.AllMonthsReductions) {
			reductionIdx = len(oc.AllMonthsReductions) - 1
		}
		disruption := 1 - oc.AllMonthsReductions[reductionIdx]

		baselineKcalsPerHa := oc.AnnualYieldKcals * 4e6 / 1e9 / 12
		gh.KcalsPerHa[m] = baselineKcalsPerHa * (1 - disruption) * gain
		gh.FatPerHa[m] = gh.KcalsPerHa[m] * oc.RotationFractionFat
		gh.ProteinPerHa[m] = gh.KcalsPerHa[m] * oc.RotationFractionProtein
	}
	return gh
}
