package nutrient

import (
	"fmt"
	"math"
	"strings"
)

// RatioUnits and RatioSeriesUnits mark a Triple as dimensionless: the
// "ratio" unit tag that Mul/Div recognize specially, per the multiplication
// rule that a dimensionless operand adopts the other operand's units.
const (
	RatioUnits       = "ratio"
	RatioSeriesUnits = "ratio each month"
)

// Triple carries a (kcals, fat, protein) value, either as a scalar (one
// value per nutrient) or as a monthly series (NMONTHS values per nutrient).
// The distinction is carried in the unit tags: a series tag always ends in
// "each month". All three nutrient slices in a series Triple share length.
type Triple struct {
	Kcals, Fat, Protein                []float64
	KcalsUnits, FatUnits, ProteinUnits string

	conv *Conversions
}

// NewScalar builds a scalar Triple from bare values and unit tags.
func NewScalar(conv *Conversions, kcals, fat, protein float64, kcalsUnits, fatUnits, proteinUnits string) Triple {
	return Triple{
		Kcals: []float64{kcals}, Fat: []float64{fat}, Protein: []float64{protein},
		KcalsUnits: kcalsUnits, FatUnits: fatUnits, ProteinUnits: proteinUnits,
		conv: conv,
	}
}

// NewSeries builds a monthly-series Triple. All three slices must share
// length; NewSeries panics otherwise, per invariant (a) in the data model.
func NewSeries(conv *Conversions, kcals, fat, protein []float64, kcalsUnits, fatUnits, proteinUnits string) Triple {
	n := Triple{Kcals: kcals, Fat: fat, Protein: protein,
		KcalsUnits: kcalsUnits, FatUnits: fatUnits, ProteinUnits: proteinUnits, conv: conv}
	if err := n.checkLengths(); err != nil {
		panic(err)
	}
	return n
}

// ZeroSeries returns an all-zero monthly series Triple of the given length,
// tagged in the conventional internal units.
func ZeroSeries(conv *Conversions, nmonths int) Triple {
	return NewSeries(conv, make([]float64, nmonths), make([]float64, nmonths), make([]float64, nmonths),
		"billion kcals each month", "thousand tons each month", "thousand tons each month")
}

func (n Triple) checkLengths() error {
	if len(n.Fat) != len(n.Kcals) || len(n.Protein) != len(n.Kcals) {
		return fmt.Errorf("nutrient: mismatched lengths kcals=%d fat=%d protein=%d", len(n.Kcals), len(n.Fat), len(n.Protein))
	}
	return nil
}

// IsSeries reports whether n is a monthly series, as opposed to a scalar.
func (n Triple) IsSeries() bool { return strings.HasSuffix(n.KcalsUnits, "each month") }

// NMonths returns the series length (1 for a scalar Triple).
func (n Triple) NMonths() int { return len(n.Kcals) }

// MonthAt returns the scalar value of each nutrient at month i.
func (n Triple) MonthAt(i int) Triple {
	return NewScalar(n.conv, n.Kcals[i], n.Fat[i], n.Protein[i],
		asElementUnits(n.KcalsUnits), asElementUnits(n.FatUnits), asElementUnits(n.ProteinUnits))
}

func asElementUnits(u string) string { return strings.TrimSuffix(u, " each month") }
func asSeriesUnits(u string) string {
	if strings.HasSuffix(u, " each month") {
		return u
	}
	return u + " each month"
}

// isRatioUnits reports whether u is one of the dimensionless ratio tags.
func isRatioUnits(u string) bool { return u == RatioUnits || u == RatioSeriesUnits }

func (n Triple) requireSameUnits(other Triple, op string) {
	if n.KcalsUnits != other.KcalsUnits || n.FatUnits != other.FatUnits || n.ProteinUnits != other.ProteinUnits {
		panic(fmt.Sprintf("nutrient: unit mismatch in %s: (%s,%s,%s) vs (%s,%s,%s)",
			op, n.KcalsUnits, n.FatUnits, n.ProteinUnits, other.KcalsUnits, other.FatUnits, other.ProteinUnits))
	}
}

func elementwise(a, b []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func mapSlice(a []float64, f func(x float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i])
	}
	return out
}

// Add returns n + other. The two Triples must carry identical unit tags.
func (n Triple) Add(other Triple) Triple {
	n.requireSameUnits(other, "add")
	return Triple{
		Kcals: elementwise(n.Kcals, other.Kcals, func(x, y float64) float64 { return x + y }),
		Fat:   elementwise(n.Fat, other.Fat, func(x, y float64) float64 { return x + y }),
		Protein: elementwise(n.Protein, other.Protein, func(x, y float64) float64 { return x + y }),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

// Sub returns n - other. The two Triples must carry identical unit tags.
func (n Triple) Sub(other Triple) Triple {
	n.requireSameUnits(other, "sub")
	return Triple{
		Kcals: elementwise(n.Kcals, other.Kcals, func(x, y float64) float64 { return x - y }),
		Fat:   elementwise(n.Fat, other.Fat, func(x, y float64) float64 { return x - y }),
		Protein: elementwise(n.Protein, other.Protein, func(x, y float64) float64 { return x - y }),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

// Neg returns -n.
func (n Triple) Neg() Triple {
	return Triple{
		Kcals: mapSlice(n.Kcals, func(x float64) float64 { return -x }),
		Fat:   mapSlice(n.Fat, func(x float64) float64 { return -x }),
		Protein: mapSlice(n.Protein, func(x float64) float64 { return -x }),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

// unitsAfterMul resolves the unit tags produced by multiplying a by b,
// honoring the rule that a dimensionless ("ratio") operand adopts the
// other operand's units.
func unitsAfterMul(aUnits, bUnits string) string {
	switch {
	case isRatioUnits(aUnits):
		return bUnits
	case isRatioUnits(bUnits):
		return aUnits
	default:
		panic(fmt.Sprintf("nutrient: multiplication requires one ratio operand, got %q and %q", aUnits, bUnits))
	}
}

// Mul returns the elementwise product of n and other. One of the two must
// carry a "ratio"/"ratio each month" unit tag; the result adopts the other
// operand's units.
func (n Triple) Mul(other Triple) Triple {
	return Triple{
		Kcals:   elementwise(n.Kcals, other.Kcals, func(x, y float64) float64 { return x * y }),
		Fat:     elementwise(n.Fat, other.Fat, func(x, y float64) float64 { return x * y }),
		Protein: elementwise(n.Protein, other.Protein, func(x, y float64) float64 { return x * y }),
		KcalsUnits:   unitsAfterMul(n.KcalsUnits, other.KcalsUnits),
		FatUnits:     unitsAfterMul(n.FatUnits, other.FatUnits),
		ProteinUnits: unitsAfterMul(n.ProteinUnits, other.ProteinUnits),
		conv: n.conv,
	}
}

// MulScalar multiplies every nutrient by a bare dimensionless factor,
// leaving units unchanged.
func (n Triple) MulScalar(factor float64) Triple {
	return Triple{
		Kcals:   mapSlice(n.Kcals, func(x float64) float64 { return x * factor }),
		Fat:     mapSlice(n.Fat, func(x float64) float64 { return x * factor }),
		Protein: mapSlice(n.Protein, func(x float64) float64 { return x * factor }),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

// Div returns n / other, elementwise. Units follow the same rule as Mul,
// with other required to be the ratio operand in practice (dividing by a
// ratio Triple).
func (n Triple) Div(other Triple) Triple {
	return Triple{
		Kcals:   elementwise(n.Kcals, other.Kcals, func(x, y float64) float64 { return x / y }),
		Fat:     elementwise(n.Fat, other.Fat, func(x, y float64) float64 { return x / y }),
		Protein: elementwise(n.Protein, other.Protein, func(x, y float64) float64 { return x / y }),
		KcalsUnits:   n.KcalsUnits,
		FatUnits:     n.FatUnits,
		ProteinUnits: n.ProteinUnits,
		conv:         n.conv,
	}
}

// DivScalar divides every nutrient by a bare factor, leaving units unchanged.
func (n Triple) DivScalar(factor float64) Triple { return n.MulScalar(1 / factor) }

// RatioOne returns the multiplicative identity ratio Triple of the given
// length ("ratio each month" if series, "ratio" if scalar).
func RatioOne(conv *Conversions, nmonths int) Triple { return ratioConst(conv, nmonths, 1) }

// RatioZero returns the annihilating ratio Triple of the given length.
func RatioZero(conv *Conversions, nmonths int) Triple { return ratioConst(conv, nmonths, 0) }

func ratioConst(conv *Conversions, nmonths int, v float64) Triple {
	k, f, p := make([]float64, nmonths), make([]float64, nmonths), make([]float64, nmonths)
	for i := range k {
		k[i], f[i], p[i] = v, v, v
	}
	units := RatioUnits
	if nmonths > 1 {
		units = RatioSeriesUnits
	}
	return NewSeries(conv, k, f, p, units, units, units)
}

// Min returns the elementwise minimum of n and other.
func (n Triple) Min(other Triple) Triple {
	n.requireSameUnits(other, "min")
	return Triple{
		Kcals:   elementwise(n.Kcals, other.Kcals, math.Min),
		Fat:     elementwise(n.Fat, other.Fat, math.Min),
		Protein: elementwise(n.Protein, other.Protein, math.Min),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

// Max returns the elementwise maximum of n and other.
func (n Triple) Max(other Triple) Triple {
	n.requireSameUnits(other, "max")
	return Triple{
		Kcals:   elementwise(n.Kcals, other.Kcals, math.Max),
		Fat:     elementwise(n.Fat, other.Fat, math.Max),
		Protein: elementwise(n.Protein, other.Protein, math.Max),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv,
	}
}

func sum(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v
	}
	return s
}

// SumOverMonths collapses a series Triple to a scalar Triple, the sum of
// each nutrient across all months.
func (n Triple) SumOverMonths() Triple {
	return NewScalar(n.conv, sum(n.Kcals), sum(n.Fat), sum(n.Protein),
		asElementUnits(n.KcalsUnits), asElementUnits(n.FatUnits), asElementUnits(n.ProteinUnits))
}

// RunningSum returns the cumulative sum of each nutrient through each month.
func (n Triple) RunningSum() Triple {
	runner := func(a []float64) []float64 {
		out := make([]float64, len(a))
		var running float64
		for i, v := range a {
			running += v
			out[i] = running
		}
		return out
	}
	return Triple{Kcals: runner(n.Kcals), Fat: runner(n.Fat), Protein: runner(n.Protein),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv}
}

// ClipNegativeToZero replaces any negative nutrient value with zero.
func (n Triple) ClipNegativeToZero() Triple {
	clip := func(a []float64) []float64 { return mapSlice(a, func(x float64) float64 { return math.Max(0, x) }) }
	return Triple{Kcals: clip(n.Kcals), Fat: clip(n.Fat), Protein: clip(n.Protein),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv}
}

// RoundTo rounds every nutrient value to the given number of decimal places.
func (n Triple) RoundTo(decimals int) Triple {
	mult := math.Pow(10, float64(decimals))
	round := func(a []float64) []float64 {
		return mapSlice(a, func(x float64) float64 { return math.Round(x*mult) / mult })
	}
	return Triple{Kcals: round(n.Kcals), Fat: round(n.Fat), Protein: round(n.Protein),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv}
}

// AssertNotNaN panics with the offending field name if any nutrient value
// is NaN, per invariant (e) and the fail-fast numeric-NaN error policy.
func (n Triple) AssertNotNaN(context string) {
	check := func(name string, a []float64) {
		for i, v := range a {
			if math.IsNaN(v) {
				panic(fmt.Sprintf("nutrient: %s: %s[%d] is NaN", context, name, i))
			}
		}
	}
	check("kcals", n.Kcals)
	check("fat", n.Fat)
	check("protein", n.Protein)
}

// AssertFatProteinZeroIfKcalsZero enforces invariant (d): whenever kcals is
// zero at a month, fat and protein must also be zero there, unless the
// corresponding nutrient is globally excluded.
func (n Triple) AssertFatProteinZeroIfKcalsZero() {
	for i, k := range n.Kcals {
		if k != 0 {
			continue
		}
		if n.conv == nil || n.conv.IncludeFat {
			if n.Fat[i] != 0 {
				panic(fmt.Sprintf("nutrient: kcals[%d]==0 but fat[%d]=%v", i, i, n.Fat[i]))
			}
		}
		if n.conv == nil || n.conv.IncludeProtein {
			if n.Protein[i] != 0 {
				panic(fmt.Sprintf("nutrient: kcals[%d]==0 but protein[%d]=%v", i, i, n.Protein[i]))
			}
		}
	}
}

// String renders a compact human-readable summary, following the same
// each-nutrient-on-one-line convention the reference model used for
// logging intermediate Food values.
func (n Triple) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "kcals (%s): %v\n", n.KcalsUnits, n.Kcals)
	if n.conv == nil || n.conv.IncludeFat {
		fmt.Fprintf(&b, "fat (%s): %v\n", n.FatUnits, n.Fat)
	}
	if n.conv == nil || n.conv.IncludeProtein {
		fmt.Fprintf(&b, "protein (%s): %v\n", n.ProteinUnits, n.Protein)
	}
	return b.String()
}
