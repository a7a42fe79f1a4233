package scenario

// Default derives values that the reference scenario hardcodes as global
// constants rather than reading from the configuration file (livestock
// nutrition-per-kg figures, seaweed composition, dairy/meat conversion
// ratios). Default returns a fully populated Inputs with these baked in,
// which callers then override from a loaded configuration file.
func Default() *Inputs {
	in := &Inputs{
		NMonths:          72,
		StartingMonthNum: 5,
		Population:       7.8e9,

		Nutrition: Nutrition{KcalsDaily: 2100, FatDaily: 47, ProteinDaily: 51},
		IncludeFat: false, IncludeProtein: false,
		ExcludeFat: false, ExcludeProtein: false,

		AddFish: true, AddSeaweed: true, AddStoredFood: true, AddOutdoorGrowing: true,
		AddGreenhouses: true, AddMethaneSCP: true, AddCellulosicSugar: true,
		AddMaintainedMeat: true, AddCulledMeat: true, AddMilk: true,

		IsNuclearWinter: true,

		Waste: Waste{Crops: 10, Seafood: 14, Meat: 4, Dairy: 4, Seaweed: 7, Sugar: 0},
		Delay: Delay{Seaweed: 1, Greenhouse: 2, IndustrialFoods: 3, RotationChangeMonths: 0, FeedShutoffMonths: 4, BiofuelShutoffMonths: 1},

		MaxSeaweedAsPercentKcals:          10,
		MaxFractionCulledSlaughterToBaseline: 5,

		Seaweed: Seaweed{
			NewAreaPerDay: 4.153e6, ProductionRate: 10,
			MinDensity: 400, MaxDensity: 800,
			MaximumArea: 1e6, InitialArea: 1, InitialSeaweed: 1,
			HarvestLossFraction: 1,
		},

		OGUseBetterRotation: true,
		RotationImprovements: RotationImprovements{KcalsReduction: 1, FatRatio: 1, ProteinRatio: 1},
		InitialHarvestDurationInMonths: 8,

		// Tonnes dry carb equivalent, millions of tons fat and protein per
		// year at present-day production, from the FAO supply-utilization
		// sheet baked into the reference model's constants.
		BaselineCropKcals: 3898e6, BaselineCropFat: 322e3, BaselineCropProtein: 350e3,

		GreenhouseGainPercent: 0,

		FeedBiofuel: FeedBiofuel{
			FeedMonthlyUsageKcals:    1385e6 / 12 * 4e6 / 1e9,
			FeedMonthlyUsageFat:      60.0 / 12 * 1e3,
			FeedMonthlyUsageProtein:  147.0 / 12 * 1e3,
			BiofuelMonthlyUsageKcals: 623e6 / 12 * 4e6 / 1e9,
			BiofuelMonthlyUsageFat:   124.0 / 12 * 1e3,
			BiofuelMonthlyUsageProtein: 32.0 / 12 * 1e3,

			MaxFractionBiofuelAsCS: 1, MaxFractionFeedAsCS: 1,
			MaxFractionBiofuelAsSCP: 1, MaxFractionFeedAsSCP: 1,
			MaxFractionHumanFoodAsSCP: 1, MaxFractionHumanFoodAsCS: 1,
		},

		Livestock: Livestock{
			InitialSmallAnimals: 24.1e9, InitialMediumAnimals: 1.4e9, InitialLargeAnimals: 1.5e9,
			KgPerSmallAnimal: 2.36, KgPerMediumAnimal: 24.6, KgPerLargeAnimal: 269.7,
			SmallKcalsPerKg: 1525, SmallFatPerKg: 0.076, SmallProteinPerKg: 0.196,
			MediumKcalsPerKg: 3590, MediumFatPerKg: 0.34, MediumProteinPerKg: 0.11,
			LargeKcalsPerKg: 2750, LargeFatPerKg: 0.182, LargeProteinPerKg: 0.257,
			RatioMaintained: [3]float64{0.1, 0.1, 0.1},
			CullDuration: 0, RecalculateCullDuration: true,
		},

		Smoothing: Smoothing{KcalSmoothing: true, StoredFoodSmoothing: true, FluctuationLimit: 1.05},

		Verbose: false, CheckConstraints: true,
	}
	for i := range in.DisruptionCropsYear {
		in.DisruptionCropsYear[i] = 0
	}
	in.Seasonality = DefaultSeasonality(in.IsNuclearWinter)
	return in
}

// DefaultSeasonality returns the present-day global seasonality cycle used
// when a scenario doesn't specify its own, switching between the tropics
// (nuclear winter) and temperate (business-as-usual) averages the
// reference model hardcodes.
func DefaultSeasonality(isNuclearWinter bool) [12]float64 {
	if isNuclearWinter {
		return [12]float64{0.1564, 0.0461, 0.0650, 0.1017, 0.0772, 0.0785, 0.0667, 0.0256, 0.0163, 0.1254, 0.1183, 0.1228}
	}
	return [12]float64{0.1121, 0.0178, 0.0241, 0.0344, 0.0338, 0.0411, 0.0882, 0.0791, 0.1042, 0.1911, 0.1377, 0.1365}
}

// DairyLimit is the present-day monthly milk production ceiling, in tons,
// used to cap both the human-inedible-feed and human-edible-feed dairy
// cascades.
const DairyLimit = 879e6 / 12

// ChickenPorkLimit is the present-day monthly chicken+pork production
// ceiling, in tons, for the human-edible-feed cascade.
const ChickenPorkLimit = 250e6 / 12

// Conversion ratios for the livestock/feed cascades, in tons of
// input per ton of output.
const (
	InedibleToDairyConversion  = 1.44
	InedibleToCattleConversion = 92.6
	HumanEdibleToDairyConversion       = 0.7
	HumanEdibleToChickenPorkConversion = 4.8
	HumanEdibleToCattleConversion      = 9.8
)

// Nutrient profiles for methane single-cell protein and cellulosic sugar.
const (
	SCPKcalsPerKg  = 5350.0
	SCPFracProtein = 0.65
	SCPFracFat     = 0.09

	WetToDryMassConversion = 1.0 / 6
)

// MilkKcalsPerKg is the present-day dairy milk kcal density, shared by the
// human-inedible and human-edible dairy cascades. Chicken+pork and cattle
// reuse the medium/large-animal-category profiles already carried on
// Livestock.
const MilkKcalsPerKg = 610.0
