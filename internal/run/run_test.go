package run

import (
	"math"
	"testing"

	"github.com/mullach/allfed-integrated-model/scenario"
)

func closeEnough(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// storedFoodOnlyScenario isolates the stored-food reserve as the only
// enabled source, with every cascade and waste term zeroed out, so its
// outcome is computable by hand: a fixed total stock split evenly across
// every month by the max-min objective.
func storedFoodOnlyScenario(tons float64) *scenario.Inputs {
	in := scenario.Default()
	in.NMonths = 12
	in.IsNuclearWinter = true
	in.Seasonality = scenario.DefaultSeasonality(true)

	in.AddFish, in.AddSeaweed, in.AddOutdoorGrowing, in.AddGreenhouses = false, false, false, false
	in.AddMethaneSCP, in.AddCellulosicSugar = false, false
	in.AddMaintainedMeat, in.AddCulledMeat, in.AddMilk = false, false, false
	in.AddStoredFood = true

	in.BaselineCropKcals = tons
	in.Waste = scenario.Waste{}
	in.FeedBiofuel = scenario.FeedBiofuel{}
	in.Smoothing = scenario.Smoothing{}
	return in
}

// TestRunStoredFoodOnlyMatchesHandComputedObjective builds the
// stored-food-only scenario and checks the LP's objective against the
// closed-form value: total stock divided evenly across the horizon.
func TestRunStoredFoodOnlyMatchesHandComputedObjective(t *testing.T) {
	in := storedFoodOnlyScenario(500e6)

	totalStockBillionKcals := in.BaselineCropKcals * 4e6 / 1e9
	monthlyNeed := in.Population * in.Nutrition.KcalsDaily * 30 / 1e9
	want := totalStockBillionKcals / (monthlyNeed * float64(in.NMonths)) * 100

	result, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Solution.Optimal {
		t.Fatal("expected an optimal LP solution")
	}
	if !result.Report.ObjectiveTight {
		t.Error("expected the objective to equal the minimum monthly percent-fed")
	}
	if !result.Report.StockBalanced {
		t.Errorf("expected every stock balance to close, warnings: %v", result.Report.Warnings)
	}
	if !closeEnough(result.MinPercentFed(), want, 0.01) {
		t.Errorf("want objective %.6f, got %.6f", want, result.MinPercentFed())
	}
}

// TestRunStoredFoodOnlyExhaustionLowersObjective checks that halving the
// reserve halves the achievable percent-fed, confirming the LP actually
// draws the stock down rather than reporting a constant value.
func TestRunStoredFoodOnlyExhaustionLowersObjective(t *testing.T) {
	full, err := Run(storedFoodOnlyScenario(500e6), Options{})
	if err != nil {
		t.Fatalf("Run (full): %v", err)
	}
	half, err := Run(storedFoodOnlyScenario(250e6), Options{})
	if err != nil {
		t.Fatalf("Run (half): %v", err)
	}
	if !closeEnough(half.MinPercentFed(), full.MinPercentFed()/2, 0.01) {
		t.Errorf("want half the stock to roughly halve the objective: full=%.6f half=%.6f",
			full.MinPercentFed(), half.MinPercentFed())
	}
}

// TestRunBusinessAsUsualSolvesCleanly exercises the full source mix (crops,
// stored food, seaweed, greenhouses, industrial foods, fish, and every
// livestock cascade) over a short horizon and checks the solver converges
// to a self-consistent, fully analyzed solution.
func TestRunBusinessAsUsualSolvesCleanly(t *testing.T) {
	in := scenario.Default()
	in.NMonths = 12
	in.IsNuclearWinter = false
	in.Seasonality = scenario.DefaultSeasonality(false)

	result, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Solution.Optimal {
		t.Fatal("expected an optimal LP solution")
	}
	if !result.Report.ObjectiveTight {
		t.Error("expected the objective to equal the minimum monthly percent-fed")
	}
	if !result.Report.StockBalanced {
		t.Errorf("expected every stock balance to close, warnings: %v", result.Report.Warnings)
	}
	for m, pct := range result.Report.PercentFedByMonth {
		if pct < 0 {
			t.Errorf("month %d: negative percent-fed %v", m, pct)
		}
	}
}

// TestRunSeaweedOnlySolvesOptimally isolates seaweed growth (initial area
// 1, 100 km^2 of new area per day, 10% growth, an 800 t/km^2 density cap)
// and checks that the LP solves to an optimal status.
func TestRunSeaweedOnlySolvesOptimally(t *testing.T) {
	in := scenario.Default()
	in.NMonths = 12
	in.IsNuclearWinter = true
	in.Seasonality = scenario.DefaultSeasonality(true)

	in.AddFish, in.AddOutdoorGrowing, in.AddGreenhouses = false, false, false
	in.AddMethaneSCP, in.AddCellulosicSugar = false, false
	in.AddMaintainedMeat, in.AddCulledMeat, in.AddMilk = false, false, false
	in.AddStoredFood = false
	in.AddSeaweed = true
	in.FeedBiofuel = scenario.FeedBiofuel{}

	in.Seaweed.InitialArea = 1
	in.Seaweed.NewAreaPerDay = 100
	in.Seaweed.ProductionRate = 10
	in.Seaweed.MaxDensity = 800

	result, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Solution.Optimal {
		t.Fatal("expected an optimal LP solution")
	}
}
