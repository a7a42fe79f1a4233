// Package sources derives each per-source monthly production/capacity
// series (seaweed, outdoor crops, stored food, greenhouses, industrial
// foods, fish, and the livestock/feed cascades) from a frozen scenario and
// the process-wide nutrient Conversions.
package sources

import (
	"github.com/mullach/allfed-integrated-model/nutrient"
	"github.com/mullach/allfed-integrated-model/scenario"
)

// seedPercentOfBaseline is the present-day fraction of outdoor-crop output
// redirected to non-eaten seed stock, from the FAO supply-utilization
// sheet baked into the reference model.
const seedPercentOfBaseline = 100 * (92.0 / 3898.0)

// OutdoorCrops holds the derived monthly production series for outdoor
// crop growing, both with and without the post-transition rotation change.
type OutdoorCrops struct {
	AnnualYieldKcals float64 // tons dry carb equivalent per year, pre-waste
	FractionFat      float64 // 1000 tons fat per billion kcals
	FractionProtein  float64 // 1000 tons protein per billion kcals

	RotationFractionFat     float64
	RotationFractionProtein float64
	KcalRatioRotation       float64

	// AllMonthsReductions is the 132-month (12*11) piecewise-linear
	// disruption-ratio series; simulated month m reads index
	// m + STARTING_MONTH_NUM - 1.
	AllMonthsReductions []float64

	KcalsGrown      []float64 // with rotation, length NMONTHS
	NoRotKcalsGrown []float64 // without rotation, length NMONTHS
}

// DeriveOutdoorCrops computes the baseline yield, the rotation ratios, and
// the monthly grown-kcals series for the scenario's disruption schedule.
func DeriveOutdoorCrops(in *scenario.Inputs) *OutdoorCrops {
	oc := &OutdoorCrops{}

	annualYield := 0.96 * in.BaselineCropKcals * (1 - seedPercentOfBaseline/100)
	oc.AnnualYieldKcals = annualYield

	billionKcalsPerYear := annualYield * 4e6 / 1e9
	oc.FractionFat = 1.02 * (in.BaselineCropFat / 1e3) / billionKcalsPerYear
	oc.FractionProtein = 0.93 * (in.BaselineCropProtein / 1e3) / billionKcalsPerYear

	if in.OGUseBetterRotation {
		oc.KcalRatioRotation = 1
		oc.RotationFractionFat = oc.FractionFat * in.RotationImprovements.FatRatio
		oc.RotationFractionProtein = oc.FractionProtein * in.RotationImprovements.ProteinRatio
	} else {
		oc.KcalRatioRotation = 1
		oc.RotationFractionFat = oc.FractionFat
		oc.RotationFractionProtein = oc.FractionProtein
	}

	oc.AllMonthsReductions = allMonthsReductions(in.StartingMonthNum, in.DisruptionCropsYear)

	oc.deriveMonthlyGrowth(in)
	return oc
}

// allMonthsReductions builds the 132-month post-disaster ratio series: a
// flat head of length STARTING_MONTH_NUM at 1.0, then one piecewise-linear
// 12-point segment per annual ratio, walking from the previous ratio
// (1.0 for the first) to the next, cut off at 132 months.
func allMonthsReductions(startingMonthNum int, disruptionYear [11]float64) []float64 {
	ratio := [11]float64{}
	for i, d := range disruptionYear {
		ratio[i] = 1 - d
	}

	out := make([]float64, 0, 132)
	for i := 0; i < startingMonthNum; i++ {
		out = append(out, 1)
	}

	prev := 1.0
	for y := 0; y < 11; y++ {
		seg := linspace(prev, ratio[y], 13)[1:]
		out = append(out, seg...)
		prev = ratio[y]
	}

	if len(out) > 132 {
		out = out[:132]
	}
	for len(out) < 132 {
		out = append(out, prev)
	}
	return out
}

// linspace returns n evenly spaced points from start to end inclusive, the
// same convention numpy.linspace uses.
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func (oc *OutdoorCrops) deriveMonthlyGrowth(in *scenario.Inputs) {
	monthIndex := in.StartingMonthNum - 1

	monthlyCycle := make([]float64, 12)
	for i, frac := range in.Seasonality {
		monthlyCycle[i] = frac * oc.AnnualYieldKcals * 4e6 / 1e9
	}
	cycleFromStart := append(append([]float64{}, monthlyCycle[monthIndex:]...), monthlyCycle[:monthIndex]...)

	oc.KcalsGrown = make([]float64, in.NMonths)
	oc.NoRotKcalsGrown = make([]float64, in.NMonths)

	kcalReduced := 1.0
	if !in.OGUseBetterRotation {
		kcalReduced = 1
	} else {
		kcalReduced = in.RotationImprovements.KcalsReduction
	}

	for m := 0; m < in.NMonths; m++ {
		monthKcals := cycleFromStart[m%12]
		reductionIdx := m + monthIndex
		if reductionIdx >= len(oc.AllMonthsReductions) {
			reductionIdx = len(oc.AllMonthsReductions) - 1
		}
		reduction := oc.AllMonthsReductions[reductionIdx]

		oc.KcalsGrown[m] = monthKcals * (1 - kcalReduced*(1-reduction))
		oc.NoRotKcalsGrown[m] = monthKcals * reduction
	}
}

// CropsFoodProducedKcals returns the monthly outdoor-crop kcals output
// (billions of kcals), before rotation until hd = INITIAL_HARVEST_DURATION
// + ROTATION_CHANGE_DELAY months, after rotation from hd onward, with
// greenhouseFractionArea[m] subtracted out to avoid double-counting land.
func (oc *OutdoorCrops) CropsFoodProducedKcals(in *scenario.Inputs, greenhouseFractionArea []float64) []float64 {
	out := make([]float64, in.NMonths)
	if !in.AddOutdoorGrowing {
		return out
	}

	if !in.OGUseBetterRotation {
		for m := range out {
			out[m] = oc.NoRotKcalsGrown[m] * (1 - greenhouseFractionArea[m])
		}
		return out
	}

	hd := in.InitialHarvestDurationInMonths + in.Delay.RotationChangeMonths
	for m := range out {
		grown := oc.KcalsGrown[m]
		if m < hd {
			grown = oc.NoRotKcalsGrown[m]
		}
		out[m] = grown * (1 - greenhouseFractionArea[m])
	}
	return out
}

// NutrientRatiosBeforeRotation returns the (kcals, fat, protein) ratio
// Triple applied to no-rotation crop output.
func NutrientRatiosBeforeRotation(conv *nutrient.Conversions, oc *OutdoorCrops, nmonths int) nutrient.Triple {
	return nutrient.NewScalar(conv, 1, oc.FractionFat, oc.FractionProtein, "ratio", "ratio", "ratio")
}

// NutrientRatiosAfterRotation returns the ratio Triple applied to
// post-transition rotated crop output.
func NutrientRatiosAfterRotation(conv *nutrient.Conversions, oc *OutdoorCrops, nmonths int) nutrient.Triple {
	return nutrient.NewScalar(conv, oc.KcalRatioRotation, oc.RotationFractionFat, oc.RotationFractionProtein, "ratio", "ratio", "ratio")
}
