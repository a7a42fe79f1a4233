// Package run wires scenario loading, source derivation, the
// feed/biofuel pre-allocation cascade, the LP builder, and the post-solve
// analyzer into a single end-to-end scenario run, the way the reference
// model's top-level optimizer.py orchestrates one call into all of the
// above.
package run

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mullach/allfed-integrated-model/analysis"
	"github.com/mullach/allfed-integrated-model/feedalloc"
	"github.com/mullach/allfed-integrated-model/lpmodel"
	"github.com/mullach/allfed-integrated-model/nutrient"
	"github.com/mullach/allfed-integrated-model/report"
	"github.com/mullach/allfed-integrated-model/scenario"
	"github.com/mullach/allfed-integrated-model/sources"
)

// Options controls how a single scenario run is observed.
type Options struct {
	Verbose  bool
	PlotFile string
}

// Result is the outcome of one scenario run: the raw LP solution and the
// post-solve analysis report built from it.
type Result struct {
	Solution *lpmodel.Solution
	Report   *analysis.Report
}

// MinPercentFed returns the minimum monthly percent-of-need-fed, which by
// construction equals the LP's optimized objective value (the LP's
// humans-fed variables are already percentages).
func (r *Result) MinPercentFed() float64 {
	min := r.Report.PercentFedByMonth[0]
	for _, v := range r.Report.PercentFedByMonth[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// industrialMonthlyKcalsReference is the present-day monthly industrial
// (non-agricultural) kcal reference the SCP/cellulosic-sugar ramp scales
// against.
const industrialMonthlyKcalsReference = 200.0 // billion kcals/month

// Run executes one full scenario: derive every source, pre-allocate feed
// and biofuel demand, build and solve the LP, analyze the solution, and
// notify the configured observers.
func Run(in *scenario.Inputs, opts Options) (*Result, error) {
	conv := nutrient.NewConversions(in.Nutrition.KcalsDaily, in.Nutrition.FatDaily, in.Nutrition.ProteinDaily,
		in.Population, in.IncludeFat, in.IncludeProtein, in.ExcludeFat, in.ExcludeProtein)
	conv.Seal()

	oc := sources.DeriveOutdoorCrops(in)
	sf := sources.DeriveStoredFood(in, oc)
	gh := sources.DeriveGreenhouses(in, oc)
	sw := sources.DeriveSeaweed(in)
	industrial := sources.DeriveIndustrial(in, industrialMonthlyKcalsReference, 1)
	fish := sources.DeriveFish(in)

	cropsProduced := oc.CropsFoodProducedKcals(in, gh.FractionArea)

	feedDemand := feedalloc.DemandSeries(in.NMonths, in.Delay.FeedShutoffMonths, in.FeedBiofuel.FeedMonthlyUsageKcals)
	biofuelDemand := feedalloc.DemandSeries(in.NMonths, in.Delay.BiofuelShutoffMonths, in.FeedBiofuel.BiofuelMonthlyUsageKcals)

	biofuelResult, err := feedalloc.Allocate(in, biofuelDemand, industrial.CSKcals, industrial.SCPKcals, cropsProduced,
		in.FeedBiofuel.MaxFractionBiofuelAsCS, in.FeedBiofuel.MaxFractionBiofuelAsSCP, sf.InitialKcals)
	if err != nil {
		return nil, fmt.Errorf("run: biofuel allocation: %w", err)
	}

	feedResult, err := feedalloc.Allocate(in, feedDemand, biofuelResult.RemainingCS, biofuelResult.RemainingSCP, biofuelResult.RemainingCrops,
		in.FeedBiofuel.MaxFractionFeedAsCS, in.FeedBiofuel.MaxFractionFeedAsSCP, sf.InitialKcals)
	if err != nil {
		return nil, fmt.Errorf("run: feed allocation: %w", err)
	}

	livestock := &sources.Livestock{}
	// the scale of human-inedible feed routed to dairy/cattle is an
	// external livestock demographic input in a full deployment; approximated
	// here as the feed demand the cascade above drew from non-stored sources.
	inedibleFeedTons := make([]float64, in.NMonths)
	for m := range inedibleFeedTons {
		consumedByFeed := feedDemand[m] - feedResult.UnmetDemand[m] - feedResult.UsedStoredFood[m]
		inedibleFeedTons[m] = consumedByFeed * 1e9 / 4e6
	}
	livestock.RunHumanInedibleCascade(in, inedibleFeedTons, nil)
	livestock.RunCulledMeatReserve(in, in.NMonths)
	// the human-edible cascade runs on the gross feed demand (biofuel kcals
	// are burned, not fed to animals), routed dairy-first to stay under the
	// same present-day ceiling the inedible cascade draws against.
	livestock.RunHumanEdibleCascade(in, feedDemand, livestock.DairyFromInedibleTons)

	nonhumanKcals := make([]float64, in.NMonths)
	for m := range nonhumanKcals {
		nonhumanKcals[m] = (feedDemand[m] - feedResult.UnmetDemand[m]) + (biofuelDemand[m] - biofuelResult.UnmetDemand[m])
	}

	dairyKcals := make([]float64, in.NMonths)
	cattleKcals := make([]float64, in.NMonths)
	meatKcals := make([]float64, in.NMonths)
	for m := 0; m < in.NMonths; m++ {
		if in.AddMilk {
			dairyKcals[m] = (livestock.DairyFromInedibleTons[m] + livestock.DairyFromEdibleTons[m]) *
				scenario.MilkKcalsPerKg * 1000 / 1e9
		}
		if in.AddMaintainedMeat {
			cattleKcals[m] = livestock.CattleFromInedibleTons[m] * in.Livestock.LargeKcalsPerKg * 1000 / 1e9
			meatKcals[m] = livestock.ChickenPorkFromEdibleTons[m]*in.Livestock.MediumKcalsPerKg*1000/1e9 +
				livestock.CattleFromEdibleTons[m]*in.Livestock.LargeKcalsPerKg*1000/1e9
		}
		meatKcals[m] += livestock.CulledMeatKcalsByMonth[m]
	}

	greenhouseKcals := make([]float64, in.NMonths)
	for m := 0; m < in.NMonths; m++ {
		greenhouseKcals[m] = gh.FractionArea[m] * gh.KcalsPerHa[m]
	}

	ex := &lpmodel.ExogenousMonthly{
		BuiltAreaKm2:          sw.BuiltAreaByMonth,
		NonhumanKcals:         nonhumanKcals,
		SeaweedKcalsPerTon:    sw.KcalsPerWetTon,
		SeaweedFatPerTon:      sw.FatPerWetTon,
		SeaweedProteinPerTon:  sw.ProteinPerWetTon,
		// the LP's storage-balance equations take the gross production
		// figure; nonhuman consumption is deducted exactly once, by
		// NonhumanKcals, in addNutrientAccounting/addConsistencyConstraint.
		CropsNoRotationSupply: cropsProduced,
		CropsRotationSupply:   make([]float64, in.NMonths),
		RotKcalRatio:          oc.KcalRatioRotation,
		DairyMilkKcals:        dairyKcals,
		CattleMaintainedKcals: cattleKcals,
		MeatKcals:             meatKcals,
		ProductionKcalsCS:     feedResult.RemainingCS,
		ProductionKcalsSCP:    feedResult.RemainingSCP,
		GreenhouseKcals:       greenhouseKcals,
		FishKcals:             fish.KcalsByMonth,
		HumanEdibleCreatedKcals: make([]float64, in.NMonths),
		CropWasteFraction:       1 - in.Waste.Crops/100,
		InitialStoredFoodKcals:  sf.InitialKcals,
		InitialSeaweedWetTons:   in.Seaweed.InitialSeaweed,
		InitialAreaKm2:          in.Seaweed.InitialArea,
		HarvestDurationMonths:   in.InitialHarvestDurationInMonths + in.Delay.RotationChangeMonths,
	}

	hd := ex.HarvestDurationMonths
	for m := hd; m < in.NMonths; m++ {
		ex.CropsRotationSupply[m] = cropsProduced[m]
		ex.CropsNoRotationSupply[m] = 0
	}

	problem, info, err := lpmodel.Build(in, ex)
	if err != nil {
		return nil, fmt.Errorf("run: building LP: %w", err)
	}

	solution, err := problem.Solve()
	if err != nil {
		return nil, fmt.Errorf("run: solving LP: %w", err)
	}

	humansFedKcals := make([]float64, in.NMonths)
	for m, idx := range info.HumansFedKcals {
		humansFedKcals[m] = solution.ValueOf(idx)
	}

	w := ex.CropWasteFraction
	sources2 := []analysis.SourceContribution{
		{Name: "stored_food", KcalsByMonth: scaledValuesOf(solution, info.StoredFoodEaten, w)},
		{Name: "crops_no_rotation", KcalsByMonth: scaledValuesOf(solution, info.CropsEatenNoRot, w)},
		{Name: "crops_rotation", KcalsByMonth: scaledValuesOf(solution, info.CropsEatenRot, w*ex.RotKcalRatio)},
		{Name: "seaweed", KcalsByMonth: scaledValuesOf(solution, info.SeaweedFoodProduced, ex.SeaweedKcalsPerTon)},
		{Name: "dairy", KcalsByMonth: dairyKcals},
		{Name: "cattle", KcalsByMonth: cattleKcals},
		{Name: "meat", KcalsByMonth: meatKcals},
		{Name: "cellulosic_sugar", KcalsByMonth: ex.ProductionKcalsCS},
		{Name: "methane_scp", KcalsByMonth: ex.ProductionKcalsSCP},
		{Name: "greenhouse", KcalsByMonth: greenhouseKcals},
		{Name: "fish", KcalsByMonth: fish.KcalsByMonth},
	}

	var stockResiduals []float64
	for _, cr := range problem.Residuals(solution) {
		if cr.Relation == lpmodel.EQ {
			stockResiduals = append(stockResiduals, cr.Residual)
		}
	}

	billionKcalsNeeded := in.Population * in.Nutrition.KcalsDaily * nutrient.DaysPerMonth / 1e9
	report2 := analysis.Analyze(solution.ObjectiveValue, humansFedKcals,
		billionKcalsNeeded, sources2, stockResiduals, solution.Optimal)

	result := &Result{Solution: solution, Report: report2}
	notifyObservers(in, result, opts)
	return result, nil
}

func notifyObservers(in *scenario.Inputs, result *Result, opts Options) {
	logObserver := report.NewLogObserver()
	if opts.Verbose {
		logObserver.Logger.SetLevel(logrus.DebugLevel)
	}
	observers := report.Multi{logObserver}

	if opts.PlotFile != "" {
		f, err := os.Create(opts.PlotFile)
		if err == nil {
			defer f.Close()
			observers = append(observers, report.NewPlotObserver(f))
		}
	}

	observers.ObserveReport(scenarioLabel(in), result.Report)
}

// scaledValuesOf reads back a solved LP column for every month and scales
// it by a constant factor (crop/stored-food waste, the rotation kcal
// ratio, or the seaweed kcal density), turning an LP decision variable
// back into a source's recomputed kcal contribution.
func scaledValuesOf(sol *lpmodel.Solution, idx []int, factor float64) []float64 {
	out := make([]float64, len(idx))
	for m, vi := range idx {
		out[m] = sol.ValueOf(vi) * factor
	}
	return out
}

func scenarioLabel(in *scenario.Inputs) string {
	if in.IsNuclearWinter {
		return "nuclear-winter"
	}
	return "business-as-usual"
}
