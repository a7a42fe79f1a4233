// Package feedalloc implements the pre-solve feed/biofuel allocation
// cascade: before the LP runs, nonhuman demand is satisfied from
// cellulosic sugar, then methane SCP, then current-month outdoor crops,
// then outdoor crops shifted forward in time from earlier months, and
// finally stored food.
package feedalloc

import (
	"fmt"
	"math"

	"github.com/mullach/allfed-integrated-model/scenario"
)

// DemandSeries returns the constant-then-zero monthly demand series for
// feed or biofuel: baseline for `delayMonths` months, then zero, per the
// delayed-shutoff rule shared with the livestock cascades.
func DemandSeries(nmonths, delayMonths int, monthlyUsage float64) []float64 {
	out := make([]float64, nmonths)
	for m := 0; m < nmonths && m < delayMonths; m++ {
		out[m] = monthlyUsage
	}
	return out
}

// Result holds the post-cascade state: demand still unmet after exhausting
// every source (should be all zero on success), the reduced supply series
// for cellulosic sugar, methane SCP, and outdoor crops, and the amount
// drawn from stored food.
type Result struct {
	UnmetDemand []float64

	RemainingCS    []float64
	RemainingSCP   []float64
	RemainingCrops []float64

	UsedStoredFood []float64

	// StoredFoodExhausted is set when the cascade could not fully satisfy
	// demand even after stored food: the LP is then
	// left to report an infeasibly low percent-fed.
	StoredFoodExhausted bool
}

// Allocate runs the priority cascade for a single demand stream (either
// feed or biofuel; call twice, once per stream, reducing the shared
// source series between calls so the second stream sees what the first
// consumed).
func Allocate(in *scenario.Inputs, demand []float64, csSupply, scpSupply, cropsSupply []float64,
	maxFractionCS, maxFractionSCP float64, storedFoodAvailable float64) (*Result, error) {

	n := len(demand)
	res := &Result{
		RemainingCS:    append([]float64{}, csSupply...),
		RemainingSCP:   append([]float64{}, scpSupply...),
		RemainingCrops: append([]float64{}, cropsSupply...),
		UsedStoredFood: make([]float64, n),
	}

	remaining := append([]float64{}, demand...)

	for m := 0; m < n; m++ {
		capCS := maxFractionCS * demand[m]
		take := math.Min(remaining[m], math.Min(capCS, res.RemainingCS[m]))
		res.RemainingCS[m] -= take
		remaining[m] -= take
	}

	for m := 0; m < n; m++ {
		capSCP := maxFractionSCP * demand[m]
		take := math.Min(remaining[m], math.Min(capSCP, res.RemainingSCP[m]))
		res.RemainingSCP[m] -= take
		remaining[m] -= take
	}

	for m := 0; m < n; m++ {
		take := math.Min(remaining[m], res.RemainingCrops[m])
		res.RemainingCrops[m] -= take
		remaining[m] -= take
	}

	for shift := 1; shift <= 11; shift++ {
		before := sumOf(res.RemainingCrops)
		used := shiftAndSubtract(res.RemainingCrops, remaining, shift)
		for m := range remaining {
			remaining[m] -= used[m]
		}
		after := sumOf(res.RemainingCrops) + sumOf(used)
		if math.Abs(before-after) > 1e-4 {
			panic(fmt.Sprintf("feedalloc: calorie conservation violated at shift=%d: before=%v after=%v", shift, before, after))
		}
	}

	remainingStoredFood := storedFoodAvailable
	for m := 0; m < n; m++ {
		take := math.Min(remaining[m], remainingStoredFood)
		res.UsedStoredFood[m] = take
		remainingStoredFood -= take
		remaining[m] -= take
	}

	// Stored food is the last resort in the cascade; any demand still
	// unmet here means it ran out before every month's demand was
	// covered.
	if sumOf(remaining) > 1e-9 {
		res.StoredFoodExhausted = true
	}

	res.UnmetDemand = remaining
	return res, nil
}

func sumOf(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v
	}
	return s
}

