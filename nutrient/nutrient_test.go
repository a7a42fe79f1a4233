package nutrient

import (
	"math"
	"testing"
)

func testConv() *Conversions {
	c := NewConversions(2100, 47, 51, 7.8e9, true, true, false, false)
	c.Seal()
	return c
}

func closeEnough(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestAddSubIdentity(t *testing.T) {
	conv := testConv()
	a := NewSeries(conv, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9},
		"billion kcals each month", "thousand tons each month", "thousand tons each month")
	b := NewSeries(conv, []float64{0.5, 1, 1.5}, []float64{1, 1, 1}, []float64{2, 2, 2},
		"billion kcals each month", "thousand tons each month", "thousand tons each month")

	got := a.Add(b).Sub(b)
	for i := range a.Kcals {
		if !closeEnough(got.Kcals[i], a.Kcals[i], 1e-9) {
			t.Errorf("kcals[%d]: want %v got %v", i, a.Kcals[i], got.Kcals[i])
		}
		if !closeEnough(got.Fat[i], a.Fat[i], 1e-9) {
			t.Errorf("fat[%d]: want %v got %v", i, a.Fat[i], got.Fat[i])
		}
		if !closeEnough(got.Protein[i], a.Protein[i], 1e-9) {
			t.Errorf("protein[%d]: want %v got %v", i, a.Protein[i], got.Protein[i])
		}
	}
}

func TestMulRatioOneIsIdentity(t *testing.T) {
	conv := testConv()
	a := NewSeries(conv, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9},
		"billion kcals each month", "thousand tons each month", "thousand tons each month")
	one := RatioOne(conv, 3)
	got := a.Mul(one)
	for i := range a.Kcals {
		if got.Kcals[i] != a.Kcals[i] || got.Fat[i] != a.Fat[i] || got.Protein[i] != a.Protein[i] {
			t.Errorf("month %d: ratio-one multiplication changed values: got %v want %v", i, got, a)
		}
	}
}

func TestMulRatioZeroAnnihilates(t *testing.T) {
	conv := testConv()
	a := NewSeries(conv, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9},
		"billion kcals each month", "thousand tons each month", "thousand tons each month")
	zero := RatioZero(conv, 3)
	got := a.Mul(zero)
	if !got.AllEqualsZero() {
		t.Errorf("ratio-zero multiplication did not annihilate: %v", got)
	}
}

func TestUnitMismatchPanics(t *testing.T) {
	conv := testConv()
	a := NewScalar(conv, 1, 2, 3, "billion kcals", "thousand tons", "thousand tons")
	b := NewScalar(conv, 1, 2, 3, "percent of need", "percent of need", "percent of need")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unit mismatch")
		}
	}()
	a.Add(b)
}

func TestGetMinMaxNutrient(t *testing.T) {
	conv := testConv()
	a := NewScalar(conv, 90, 60, 110, "percent of need", "percent of need", "percent of need")
	min := a.GetMinNutrient()
	max := a.GetMaxNutrient()
	if min.Kcals[0] != 60 {
		t.Errorf("want min 60, got %v", min.Kcals[0])
	}
	if max.Kcals[0] != 110 {
		t.Errorf("want max 110, got %v", max.Kcals[0])
	}
	if !a.AllGreaterThanOrEqualTo(min) {
		t.Error("min nutrient should be <= every individual nutrient")
	}
	if !max.AllGreaterThanOrEqualTo(a) {
		t.Error("max nutrient should be >= every individual nutrient")
	}
}

func TestSealedConversionsPanicsOnMutation(t *testing.T) {
	c := testConv()
	defer func() {
		if recover() == nil {
			t.Error("expected panic mutating a sealed Conversions")
		}
	}()
	c.mustNotBeSealed()
}

func TestExcludeFatBypassesComparison(t *testing.T) {
	conv := NewConversions(2100, 47, 51, 7.8e9, true, true, true, false)
	conv.Seal()
	a := NewScalar(conv, 10, 1, 10, "percent of need", "percent of need", "percent of need")
	b := NewScalar(conv, 5, 100, 5, "percent of need", "percent of need", "percent of need")

	if !a.AllGreaterThan(b) {
		t.Error("ExcludeFat should let the failing fat comparison pass vacuously")
	}
}

func TestFatProteinZeroInvariant(t *testing.T) {
	conv := testConv()
	bad := NewSeries(conv, []float64{0, 5}, []float64{1, 2}, []float64{0, 3},
		"billion kcals each month", "thousand tons each month", "thousand tons each month")
	defer func() {
		if recover() == nil {
			t.Error("expected panic: fat nonzero when kcals is zero")
		}
	}()
	bad.AssertFatProteinZeroIfKcalsZero()
}
