package feedalloc

import (
	"math"
	"testing"
)

func closeEnough(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestDemandSeriesConstantThenZero(t *testing.T) {
	d := DemandSeries(6, 3, 10)
	want := []float64{10, 10, 10, 0, 0, 0}
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("month %d: want %v got %v", i, want[i], d[i])
		}
	}
}

func TestShiftAndSubtractConservesTotal(t *testing.T) {
	supply := []float64{10, 10, 10, 10, 10}
	demand := []float64{0, 0, 5, 0, 0}
	before := sumOf(supply)

	used := shiftAndSubtract(supply, demand, 2)
	after := sumOf(supply) + sumOf(used)

	if !closeEnough(before, after, 1e-9) {
		t.Errorf("conservation violated: before=%v after=%v", before, after)
	}
	if used[2] != 5 {
		t.Errorf("want month 2 demand satisfied from month 0 supply: got %v", used[2])
	}
}

func TestShiftAndSubtractNoShiftBeyondHorizon(t *testing.T) {
	supply := []float64{1, 1, 1}
	demand := []float64{1, 1, 1}
	used := shiftAndSubtract(supply, demand, 5)
	for _, v := range used {
		if v != 0 {
			t.Error("a shift at or beyond the horizon length should move nothing")
		}
	}
}

func TestAllocateSatisfiesDemandFromCascade(t *testing.T) {
	n := 4
	demand := []float64{5, 5, 5, 5}
	cs := []float64{2, 2, 2, 2}
	scp := []float64{1, 1, 1, 1}
	crops := []float64{100, 100, 100, 100}

	res, err := Allocate(nil, demand, cs, scp, crops, 1, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for m := 0; m < n; m++ {
		if res.UnmetDemand[m] > 1e-9 {
			t.Errorf("month %d: demand should be fully satisfied by crops, got unmet=%v", m, res.UnmetDemand[m])
		}
	}
}

func TestAllocateFallsBackToStoredFoodAndFlagsExhaustion(t *testing.T) {
	demand := []float64{100}
	cs := []float64{0}
	scp := []float64{0}
	crops := []float64{0}

	res, err := Allocate(nil, demand, cs, scp, crops, 1, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.StoredFoodExhausted {
		t.Error("expected stored food to be reported as exhausted")
	}
	if res.UsedStoredFood[0] != 10 {
		t.Errorf("want all 10 units of stored food used, got %v", res.UsedStoredFood[0])
	}
}
