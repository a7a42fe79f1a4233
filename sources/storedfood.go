package sources

import "github.com/mullach/allfed-integrated-model/scenario"

// StoredFood holds the single initial reserve the LP draws down over the
// simulation horizon. Its fat/protein fractions track the outdoor-crop
// ratios: fat and protein fractions equal outdoor-crop fractions.
type StoredFood struct {
	InitialKcals    float64 // billion kcals
	FractionFat     float64
	FractionProtein float64
}

// DeriveStoredFood ties the initial stock to the scenario's baseline crop
// composition via the already-derived OutdoorCrops ratios.
func DeriveStoredFood(in *scenario.Inputs, oc *OutdoorCrops) *StoredFood {
	sf := &StoredFood{
		FractionFat:     oc.FractionFat,
		FractionProtein: oc.FractionProtein,
	}
	if in.AddStoredFood {
		// Initial stockpile approximated as one year of present-day
		// global crop production, converted to billion kcals.
		sf.InitialKcals = in.BaselineCropKcals * 4e6 / 1e9
	}
	return sf
}
