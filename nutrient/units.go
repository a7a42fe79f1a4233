package nutrient

// SetUnits retags n with free-form unit strings, one per nutrient. Used
// when a derivation step changes representation (e.g. totals -> per-capita)
// without changing the underlying numbers.
func (n Triple) SetUnits(kcalsUnits, fatUnits, proteinUnits string) Triple {
	n.KcalsUnits, n.FatUnits, n.ProteinUnits = kcalsUnits, fatUnits, proteinUnits
	return n
}

// AsSeriesUnits appends " each month" to all three unit tags if not already
// present, converting an element-form tag to its series form.
func (n Triple) AsSeriesUnits() Triple {
	n.KcalsUnits = asSeriesUnits(n.KcalsUnits)
	n.FatUnits = asSeriesUnits(n.FatUnits)
	n.ProteinUnits = asSeriesUnits(n.ProteinUnits)
	return n
}

// AsElementUnits strips " each month" from all three unit tags, converting
// a series-form tag to its scalar element form.
func (n Triple) AsElementUnits() Triple {
	n.KcalsUnits = asElementUnits(n.KcalsUnits)
	n.FatUnits = asElementUnits(n.FatUnits)
	n.ProteinUnits = asElementUnits(n.ProteinUnits)
	return n
}

// ToPercentOfNeed converts an absolute monthly Triple into "ratio of need"
// form by dividing by the whole-population monthly requirement for each
// nutrient, then multiplying by 100. kcals is in billion kcals, fat/protein
// in thousand tons, matching the internal unit family used throughout the
// source models.
func (n Triple) ToPercentOfNeed(conv *Conversions) Triple {
	nmonths := n.NMonths()
	kcalsNeed := conv.PopulationKcalsMonthly()
	fatNeed := conv.FatMonthly()
	proteinNeed := conv.ProteinMonthly()

	k := mapSlice(n.Kcals, func(x float64) float64 { return 100 * x / kcalsNeed })
	f := mapSlice(n.Fat, func(x float64) float64 {
		if fatNeed == 0 {
			return 0
		}
		return 100 * x / fatNeed
	})
	p := mapSlice(n.Protein, func(x float64) float64 {
		if proteinNeed == 0 {
			return 0
		}
		return 100 * x / proteinNeed
	})
	units := "percent of need"
	if nmonths > 1 {
		units += " each month"
	}
	return NewSeries(conv, k, f, p, units, units, units)
}
