package sources

import (
	"github.com/mullach/allfed-integrated-model/scenario"
)

// Seaweed holds the derived farm buildout and per-unit nutrient
// contribution for the seaweed source.
type Seaweed struct {
	BuiltAreaByMonth []float64 // km^2, capped at MaximumArea, sampled monthly
	KcalsPerWetTon   float64
	FatPerWetTon     float64
	ProteinPerWetTon float64
}

// DeriveSeaweed builds the farm-area buildout schedule and the wet-ton
// nutrient density after wet->dry conversion and seaweed waste.
func DeriveSeaweed(in *scenario.Inputs) *Seaweed {
	sw := &Seaweed{}
	sw.BuiltAreaByMonth = buildSeaweedArea(in)

	wasteFraction := 1 - in.Waste.Seaweed/100
	// Seaweed's as-grown composition (dry basis) approximates 1500
	// kcal/kg, 0.1 fat, 0.2 protein by mass; converted through the wet/dry
	// ratio and waste the way the reference model's seaweed module does.
	sw.KcalsPerWetTon = 1500 * 1000 * scenario.WetToDryMassConversion * wasteFraction / 1e9
	sw.FatPerWetTon = 0.1 * 1000 * scenario.WetToDryMassConversion * wasteFraction / 1e3
	sw.ProteinPerWetTon = 0.2 * 1000 * scenario.WetToDryMassConversion * wasteFraction / 1e3
	return sw
}

// buildSeaweedArea accumulates NEW_AREA_PER_DAY for NDays days (after the
// onset delay), capped at MAXIMUM_AREA, then samples the result down to
// one value per month.
func buildSeaweedArea(in *scenario.Inputs) []float64 {
	ndays := in.NDays()
	delayDays := in.Delay.Seaweed * 30

	builtArea := make([]float64, ndays)
	area := in.Seaweed.InitialArea
	for d := 0; d < ndays; d++ {
		if d >= delayDays {
			area += in.Seaweed.NewAreaPerDay
		}
		if area > in.Seaweed.MaximumArea {
			area = in.Seaweed.MaximumArea
		}
		builtArea[d] = area
	}

	monthly := make([]float64, in.NMonths)
	for m := 0; m < in.NMonths; m++ {
		day := (m+1)*30 - 1
		if day >= ndays {
			day = ndays - 1
		}
		monthly[m] = builtArea[day]
	}
	return monthly
}

// MaxWetTonsAtArea returns the maximum wet-ton standing biomass a used
// area can hold, i.e. area * MAX_DENSITY.
func (sw *Seaweed) MaxWetTonsAtArea(in *scenario.Inputs, areaKm2 float64) float64 {
	return areaKm2 * in.Seaweed.MaxDensity
}

// GrowthFactor returns the fractional monthly growth multiplier
// (1 + rate/100) applied to standing seaweed biomass.
func (sw *Seaweed) GrowthFactor(in *scenario.Inputs) float64 {
	return 1 + in.Seaweed.ProductionRate/100
}
