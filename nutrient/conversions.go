// Package nutrient implements the (kcals, fat, protein) value type that
// threads through parameter derivation, feed/biofuel pre-allocation, and
// the LP builder, along with the process-wide per-capita need configuration
// that every Triple predicate dispatches through.
package nutrient

import "fmt"

// DaysPerMonth is the number of days assumed in every simulated month.
const DaysPerMonth = 30

// KcalsPerDryCaloricTon is the kcal content of one ton of dry caloric
// equivalent food (4,000 kcal/kg).
const KcalsPerDryCaloricTon = 4e6

// Conversions is the process-wide, immutable-after-seal configuration that
// every Triple operation dispatches nutrient-inclusion decisions through. It
// is constructed once during parameter derivation and is read-only for the
// rest of the run; Seal enforces the one-shot lifecycle.
type Conversions struct {
	// KcalsDaily, FatDaily, and ProteinDaily are per-capita daily needs as
	// given in the scenario inputs.
	KcalsDaily   float64
	FatDaily     float64
	ProteinDaily float64

	// Population is the number of humans the scenario feeds.
	Population float64

	// IncludeFat and IncludeProtein gate whether fat/protein take part in
	// Triple predicates at all. The LP objective covers kcals only and does
	// not read them.
	IncludeFat     bool
	IncludeProtein bool

	// ExcludeFat and ExcludeProtein let an individual comparison bypass a
	// nutrient regardless of IncludeFat/IncludeProtein: every Triple
	// comparison in predicates.go vacuously passes the fat or protein term
	// when the corresponding exclude flag is set, rather than comparing it.
	ExcludeFat     bool
	ExcludeProtein bool

	sealed bool
}

// NewConversions derives the monthly per-capita nutrient requirements from
// daily scenario inputs. The returned value is not yet sealed.
func NewConversions(kcalsDaily, fatDaily, proteinDaily, population float64,
	includeFat, includeProtein, excludeFat, excludeProtein bool) *Conversions {
	return &Conversions{
		KcalsDaily:     kcalsDaily,
		FatDaily:       fatDaily,
		ProteinDaily:   proteinDaily,
		Population:     population,
		IncludeFat:     includeFat,
		IncludeProtein: includeProtein,
		ExcludeFat:     excludeFat,
		ExcludeProtein: excludeProtein,
	}
}

// Seal freezes the configuration. Any call to a mutating method afterward
// panics; this is the "constructed -> sealed" lifecycle required because
// the conversions object is read by every Triple built during the run.
func (c *Conversions) Seal() { c.sealed = true }

// Sealed reports whether the configuration has been frozen.
func (c *Conversions) Sealed() bool { return c.sealed }

func (c *Conversions) mustNotBeSealed() {
	if c.sealed {
		panic("nutrient: conversions object is sealed and can no longer be modified")
	}
}

// KcalsMonthly is the per-capita monthly kcal need.
func (c *Conversions) KcalsMonthly() float64 { return c.KcalsDaily * DaysPerMonth }

// FatMonthly is the whole-population monthly fat need, in thousand tons
// (billion-kcals-equivalent unit family).
func (c *Conversions) FatMonthly() float64 { return c.FatDaily * DaysPerMonth / 1e9 * c.Population }

// ProteinMonthly is the whole-population monthly protein need, in thousand
// tons.
func (c *Conversions) ProteinMonthly() float64 {
	return c.ProteinDaily * DaysPerMonth / 1e9 * c.Population
}

// PopulationKcalsMonthly is the whole-population monthly kcal need in
// billion kcals.
func (c *Conversions) PopulationKcalsMonthly() float64 {
	return c.KcalsMonthly() * c.Population / 1e9
}

// includeNutrient reports whether the named nutrient ("fat" or "protein")
// should participate in predicates and accounting.
func (c *Conversions) includeNutrient(name string) bool {
	switch name {
	case "fat":
		return c.IncludeFat
	case "protein":
		return c.IncludeProtein
	default:
		panic(fmt.Sprintf("nutrient: unknown nutrient name %q", name))
	}
}
