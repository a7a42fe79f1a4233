package sources

import (
	"math"

	"github.com/mullach/allfed-integrated-model/scenario"
)

// Livestock holds the derived dairy/cattle/chicken-pork cascades and the
// culled-animal one-shot reserve.
type Livestock struct {
	// DairyFromInedibleTons and CattleFromInedibleTons are monthly tonnage
	// routed from the human-inedible feed cascade.
	DairyFromInedibleTons  []float64
	CattleFromInedibleTons []float64

	// DairyFromEdibleTons, ChickenPorkFromEdibleTons, CattleFromEdibleTons
	// are monthly tonnage routed from the human-edible (excess-kcal)
	// cascade.
	DairyFromEdibleTons        []float64
	ChickenPorkFromEdibleTons  []float64
	CattleFromEdibleTons       []float64

	// CulledMeatKcalsByMonth is the one-shot culled-animal reserve release
	// schedule, in billion kcals.
	CulledMeatKcalsByMonth []float64
	CullDuration           int
}

// RunHumanInedibleCascade converts a monthly human-inedible feed tonnage
// series into dairy and cattle tonnage: dairy first, capped at DairyLimit,
// residual to cattle at the fixed conversion ratio.
func (lv *Livestock) RunHumanInedibleCascade(in *scenario.Inputs, inedibleFeedTons []float64, dairyAlreadyFromInedible []float64) {
	n := len(inedibleFeedTons)
	lv.DairyFromInedibleTons = make([]float64, n)
	lv.CattleFromInedibleTons = make([]float64, n)

	for m, feed := range inedibleFeedTons {
		dairyCap := scenario.DairyLimit
		if dairyAlreadyFromInedible != nil {
			dairyCap -= dairyAlreadyFromInedible[m]
		}
		dairy := math.Min(feed/scenario.InedibleToDairyConversion, math.Max(dairyCap, 0))
		lv.DairyFromInedibleTons[m] = dairy

		usedForDairy := dairy * scenario.InedibleToDairyConversion
		remaining := feed - usedForDairy
		if remaining < 0 {
			remaining = 0
		}
		lv.CattleFromInedibleTons[m] = remaining / scenario.InedibleToCattleConversion
	}
}

// RunHumanEdibleCascade converts a monthly series of excess human-edible
// kcals (billion kcals) into dairy, then chicken+pork, then cattle, each
// gated by its monthly cap.
func (lv *Livestock) RunHumanEdibleCascade(in *scenario.Inputs, excessKcalsBillion []float64, dairyAlreadyFromInedible []float64) {
	n := len(excessKcalsBillion)
	lv.DairyFromEdibleTons = make([]float64, n)
	lv.ChickenPorkFromEdibleTons = make([]float64, n)
	lv.CattleFromEdibleTons = make([]float64, n)

	for m, excess := range excessKcalsBillion {
		if excess < 0 {
			panic("sources: excess kcals for the human-edible feed cascade must be non-negative")
		}
		excessTons := excess * 1e9 / 4e6

		dairyCap := scenario.DairyLimit
		if dairyAlreadyFromInedible != nil {
			dairyCap -= dairyAlreadyFromInedible[m]
		}
		dairyCap = math.Max(dairyCap, 0)

		dairy := math.Min(excessTons/scenario.HumanEdibleToDairyConversion, dairyCap)
		lv.DairyFromEdibleTons[m] = dairy
		remainingTons := excessTons - dairy*scenario.HumanEdibleToDairyConversion
		if remainingTons < 0 {
			remainingTons = 0
		}

		chickenPork := math.Min(remainingTons/scenario.HumanEdibleToChickenPorkConversion, scenario.ChickenPorkLimit)
		lv.ChickenPorkFromEdibleTons[m] = chickenPork
		remainingTons -= chickenPork * scenario.HumanEdibleToChickenPorkConversion
		if remainingTons < 0 {
			remainingTons = 0
		}

		lv.CattleFromEdibleTons[m] = remainingTons / scenario.HumanEdibleToCattleConversion
	}
}

// RunCulledMeatReserve computes the one-shot culled-animal kcal reserve
// and its release schedule: INITIAL_MEAT spread evenly over CULL_DURATION
// months. CULL_DURATION is the scenario's value, or defaultCullDuration's
// fixed fallback when RecalculateCullDuration is set; no culled-meat-over-
// time curve is computed. A CULL_DURATION of zero releases no culled meat.
func (lv *Livestock) RunCulledMeatReserve(in *scenario.Inputs, nmonths int) {
	lv.CulledMeatKcalsByMonth = make([]float64, nmonths)
	if !in.AddCulledMeat {
		return
	}

	small := 1 - in.Livestock.RatioMaintained[0]
	medium := 1 - in.Livestock.RatioMaintained[1]
	large := 1 - in.Livestock.RatioMaintained[2]

	wasteFactor := 1 - in.Waste.Meat/100
	kg := func(culledFrac, initialCount, kgPerAnimal, kcalsPerKg float64) float64 {
		return culledFrac * initialCount * kgPerAnimal * kcalsPerKg * wasteFactor
	}
	initialMeatKcals := kg(small, in.Livestock.InitialSmallAnimals, in.Livestock.KgPerSmallAnimal, in.Livestock.SmallKcalsPerKg) +
		kg(medium, in.Livestock.InitialMediumAnimals, in.Livestock.KgPerMediumAnimal, in.Livestock.MediumKcalsPerKg) +
		kg(large, in.Livestock.InitialLargeAnimals, in.Livestock.KgPerLargeAnimal, in.Livestock.LargeKcalsPerKg)
	initialMeatKcals /= 1e9 // billion kcals

	duration := in.Livestock.CullDuration
	if in.Livestock.RecalculateCullDuration {
		duration = defaultCullDuration(nmonths)
	}
	lv.CullDuration = duration

	if duration <= 0 {
		return
	}
	perMonth := initialMeatKcals / float64(duration)
	for m := 0; m < nmonths && m < duration; m++ {
		lv.CulledMeatKcalsByMonth[m] = perMonth
	}
}

// defaultCullDuration is the cull duration used when
// RecalculateCullDuration is set: 12 months, or the whole horizon when it
// is shorter.
func defaultCullDuration(nmonths int) int {
	d := 12
	if nmonths < d {
		d = nmonths
	}
	return d
}
