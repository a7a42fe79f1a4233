package nutrient

import "fmt"

// predicate families below mirror the reference model's all_*/any_* family
// of comparisons. Each skips fat or protein when the corresponding
// inclusion flag is off, or when the corresponding exclude flag is on --
// exclude is a per-comparison bypass, distinct from and layered on top of
// the inclusion flag, matching the data model's nutrient-algebra contract.

type cmp func(x, y float64) bool

func (n Triple) skipFat() bool {
	return n.conv != nil && (!n.conv.IncludeFat || n.conv.ExcludeFat)
}

func (n Triple) skipProtein() bool {
	return n.conv != nil && (!n.conv.IncludeProtein || n.conv.ExcludeProtein)
}

func (n Triple) includeFat() bool     { return !n.skipFat() }
func (n Triple) includeProtein() bool { return !n.skipProtein() }

func (n Triple) all(other Triple, c cmp) bool {
	for i := range n.Kcals {
		if !c(n.Kcals[i], other.Kcals[i]) {
			return false
		}
		if !n.skipFat() && !c(n.Fat[i], other.Fat[i]) {
			return false
		}
		if !n.skipProtein() && !c(n.Protein[i], other.Protein[i]) {
			return false
		}
	}
	return true
}

func (n Triple) any(other Triple, c cmp) bool {
	for i := range n.Kcals {
		if c(n.Kcals[i], other.Kcals[i]) {
			return true
		}
		if !n.skipFat() && c(n.Fat[i], other.Fat[i]) {
			return true
		}
		if !n.skipProtein() && c(n.Protein[i], other.Protein[i]) {
			return true
		}
	}
	return false
}

func gt(x, y float64) bool  { return x > y }
func lt(x, y float64) bool  { return x < y }
func ge(x, y float64) bool  { return x >= y }
func le(x, y float64) bool  { return x <= y }
func eq(x, y float64) bool  { return x == y }

// AllGreaterThan reports whether every included nutrient of n exceeds the
// corresponding value in other, at every month.
func (n Triple) AllGreaterThan(other Triple) bool { return n.all(other, gt) }

// AllLessThan reports whether every included nutrient of n is less than
// the corresponding value in other, at every month.
func (n Triple) AllLessThan(other Triple) bool { return n.all(other, lt) }

// AnyGreaterThan reports whether some included nutrient-month of n exceeds
// the corresponding value in other.
func (n Triple) AnyGreaterThan(other Triple) bool { return n.any(other, gt) }

// AnyLessThan reports whether some included nutrient-month of n is less
// than the corresponding value in other.
func (n Triple) AnyLessThan(other Triple) bool { return n.any(other, lt) }

// AllGreaterThanOrEqualTo reports whether every included nutrient-month of
// n is >= the corresponding value in other.
func (n Triple) AllGreaterThanOrEqualTo(other Triple) bool { return n.all(other, ge) }

// AllLessThanOrEqualTo reports whether every included nutrient-month of n
// is <= the corresponding value in other.
func (n Triple) AllLessThanOrEqualTo(other Triple) bool { return n.all(other, le) }

// AnyGreaterThanOrEqualTo reports whether some included nutrient-month of n
// is >= the corresponding value in other.
func (n Triple) AnyGreaterThanOrEqualTo(other Triple) bool { return n.any(other, ge) }

// AnyLessThanOrEqualTo reports whether some included nutrient-month of n is
// <= the corresponding value in other.
func (n Triple) AnyLessThanOrEqualTo(other Triple) bool { return n.any(other, le) }

func zeroOf(n Triple) Triple {
	return Triple{Kcals: make([]float64, len(n.Kcals)), Fat: make([]float64, len(n.Fat)), Protein: make([]float64, len(n.Protein)),
		KcalsUnits: n.KcalsUnits, FatUnits: n.FatUnits, ProteinUnits: n.ProteinUnits, conv: n.conv}
}

// AllEqualsZero reports whether every included nutrient-month of n is zero.
func (n Triple) AllEqualsZero() bool { return n.all(zeroOf(n), eq) }

// AnyEqualsZero reports whether some included nutrient-month of n is zero.
func (n Triple) AnyEqualsZero() bool { return n.any(zeroOf(n), eq) }

// AllGreaterThanZero reports whether every included nutrient-month of n is
// strictly positive.
func (n Triple) AllGreaterThanZero() bool { return n.all(zeroOf(n), gt) }

// AnyGreaterThanZero reports whether some included nutrient-month of n is
// strictly positive.
func (n Triple) AnyGreaterThanZero() bool { return n.any(zeroOf(n), gt) }

// AllGreaterThanOrEqualToZero reports whether every included nutrient-month
// of n is non-negative.
func (n Triple) AllGreaterThanOrEqualToZero() bool { return n.all(zeroOf(n), ge) }

// GetMinNutrient returns the minimum across the included nutrients of a
// single-month Triple, as a scalar Triple where all three entries equal
// that minimum value. Requires the three unit tags be equal; panics on a
// multi-month series (take MonthAt first).
func (n Triple) GetMinNutrient() Triple {
	n.requireComparable()
	m := n.Kcals[0]
	if len(n.Kcals) > 1 {
		panic("nutrient: GetMinNutrient expects a per-month scalar-producing Triple; call MonthAt first")
	}
	if n.includeFat() && n.Fat[0] < m {
		m = n.Fat[0]
	}
	if n.includeProtein() && n.Protein[0] < m {
		m = n.Protein[0]
	}
	return NewScalar(n.conv, m, m, m, n.KcalsUnits, n.KcalsUnits, n.KcalsUnits)
}

// GetMaxNutrient is the maximum-valued analog of GetMinNutrient.
func (n Triple) GetMaxNutrient() Triple {
	n.requireComparable()
	m := n.Kcals[0]
	if len(n.Kcals) > 1 {
		panic("nutrient: GetMaxNutrient expects a per-month scalar-producing Triple; call MonthAt first")
	}
	if n.includeFat() && n.Fat[0] > m {
		m = n.Fat[0]
	}
	if n.includeProtein() && n.Protein[0] > m {
		m = n.Protein[0]
	}
	return NewScalar(n.conv, m, m, m, n.KcalsUnits, n.KcalsUnits, n.KcalsUnits)
}

// requireComparable enforces that kcals, fat, and protein carry identical
// unit tags before a cross-nutrient comparison like GetMinNutrient: the
// three tags must be equal.
func (n Triple) requireComparable() {
	if n.KcalsUnits != n.FatUnits || n.KcalsUnits != n.ProteinUnits {
		panic(fmt.Sprintf("nutrient: GetMin/MaxNutrient requires matching units, got (%s,%s,%s)", n.KcalsUnits, n.FatUnits, n.ProteinUnits))
	}
}
