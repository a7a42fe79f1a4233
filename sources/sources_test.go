package sources

import (
	"math"
	"testing"

	"github.com/mullach/allfed-integrated-model/scenario"
)

func closeEnough(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestAllMonthsReductionsLength(t *testing.T) {
	in := scenario.Default()
	oc := DeriveOutdoorCrops(in)
	if len(oc.AllMonthsReductions) != 132 {
		t.Fatalf("want 132 months of reductions, got %d", len(oc.AllMonthsReductions))
	}
	for i := 0; i < in.StartingMonthNum; i++ {
		if oc.AllMonthsReductions[i] != 1 {
			t.Errorf("expected flat head of 1.0 at index %d, got %v", i, oc.AllMonthsReductions[i])
		}
	}
}

func TestCropsFoodProducedUsesNoRotationBeforeHarvestDuration(t *testing.T) {
	in := scenario.Default()
	oc := DeriveOutdoorCrops(in)
	greenhouseFractionArea := make([]float64, in.NMonths)

	produced := oc.CropsFoodProducedKcals(in, greenhouseFractionArea)
	if len(produced) != in.NMonths {
		t.Fatalf("want %d months, got %d", in.NMonths, len(produced))
	}
	if !closeEnough(produced[0], oc.NoRotKcalsGrown[0], 1e-9) {
		t.Errorf("month 0 should use no-rotation series: want %v got %v", oc.NoRotKcalsGrown[0], produced[0])
	}
}

func TestGreenhouseAreaRampsToCapThenFlat(t *testing.T) {
	in := scenario.Default()
	oc := DeriveOutdoorCrops(in)
	gh := DeriveGreenhouses(in, oc)

	zeroMonths := in.Delay.Greenhouse + greenhouseHeadStartMonths
	if gh.FractionArea[0] != 0 {
		t.Errorf("expected zero greenhouse area at month 0, got %v", gh.FractionArea[0])
	}
	last := in.NMonths - 1
	if zeroMonths+greenhouseRampMonths <= last && gh.FractionArea[last] != 1 {
		t.Errorf("expected full greenhouse area by the final month, got %v", gh.FractionArea[last])
	}
}

func TestHumanInedibleCascadeCapsDairyThenRoutesCattle(t *testing.T) {
	in := scenario.Default()
	lv := &Livestock{}
	feed := make([]float64, 3)
	for i := range feed {
		feed[i] = scenario.DairyLimit * scenario.InedibleToDairyConversion * 2
	}
	lv.RunHumanInedibleCascade(in, feed, nil)
	for m := range feed {
		if lv.DairyFromInedibleTons[m] > scenario.DairyLimit+1e-6 {
			t.Errorf("month %d: dairy exceeded its cap: %v", m, lv.DairyFromInedibleTons[m])
		}
		if lv.CattleFromInedibleTons[m] <= 0 {
			t.Errorf("month %d: expected residual feed routed to cattle", m)
		}
	}
}

func TestHumanEdibleCascadePanicsOnNegativeExcess(t *testing.T) {
	in := scenario.Default()
	lv := &Livestock{}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative excess kcals")
		}
	}()
	lv.RunHumanEdibleCascade(in, []float64{-1}, nil)
}

func TestCulledMeatReserveReleasesOverCullDuration(t *testing.T) {
	in := scenario.Default()
	in.Livestock.RatioMaintained = [3]float64{0.5, 0.5, 0.5}
	lv := &Livestock{}
	lv.RunCulledMeatReserve(in, in.NMonths)
	if lv.CullDuration <= 0 {
		t.Fatalf("expected a positive cull duration, got %d", lv.CullDuration)
	}
	var total float64
	for _, v := range lv.CulledMeatKcalsByMonth {
		total += v
	}
	if total <= 0 {
		t.Error("expected a positive total culled-meat reserve")
	}
}

func TestCulledMeatReserveZeroWhenDisabled(t *testing.T) {
	in := scenario.Default()
	in.AddCulledMeat = false
	lv := &Livestock{}
	lv.RunCulledMeatReserve(in, in.NMonths)
	for _, v := range lv.CulledMeatKcalsByMonth {
		if v != 0 {
			t.Error("expected zero culled meat when AddCulledMeat is false")
		}
	}
}

func TestFishDeclinesUnderNuclearWinter(t *testing.T) {
	in := scenario.Default()
	in.IsNuclearWinter = true
	f := DeriveFish(in)
	if f.KcalsByMonth[len(f.KcalsByMonth)-1] >= f.KcalsByMonth[0] {
		t.Error("expected fish production to decline under a nuclear winter scenario")
	}
}

func TestIndustrialZeroDuringDelay(t *testing.T) {
	in := scenario.Default()
	in.Delay.IndustrialFoods = 3
	ind := DeriveIndustrial(in, 100, 1)
	for m := 0; m < in.Delay.IndustrialFoods; m++ {
		if ind.SCPKcals[m] != 0 || ind.CSKcals[m] != 0 {
			t.Errorf("expected zero industrial output during the delay, month %d", m)
		}
	}
}

func TestSeaweedAreaCapsAtMaximum(t *testing.T) {
	in := scenario.Default()
	in.Seaweed.MaximumArea = 10
	in.Seaweed.NewAreaPerDay = 5
	sw := DeriveSeaweed(in)
	for _, a := range sw.BuiltAreaByMonth {
		if a > in.Seaweed.MaximumArea+1e-9 {
			t.Errorf("built area %v exceeds maximum %v", a, in.Seaweed.MaximumArea)
		}
	}
}
