// Package scenario holds the immutable, scenario-wide inputs that
// parameter derivation reads once and freezes, plus the viper-backed
// loader that turns a YAML/TOML/JSON configuration file into an Inputs
// value.
package scenario

// Waste holds per-source waste fractions, as percentages (0-100).
type Waste struct {
	Crops   float64 `mapstructure:"CROPS"`
	Seafood float64 `mapstructure:"SEAFOOD"`
	Meat    float64 `mapstructure:"MEAT"`
	Dairy   float64 `mapstructure:"DAIRY"`
	Seaweed float64 `mapstructure:"SEAWEED"`
	Sugar   float64 `mapstructure:"SUGAR"`
}

// Delay holds onset delays, in months, for various sources and shutoffs.
type Delay struct {
	Seaweed             int `mapstructure:"SEAWEED"`
	Greenhouse          int `mapstructure:"GREENHOUSE"`
	IndustrialFoods     int `mapstructure:"INDUSTRIAL_FOODS"`
	RotationChangeMonths int `mapstructure:"ROTATION_CHANGE_IN_MONTHS"`
	FeedShutoffMonths   int `mapstructure:"FEED_SHUTOFF_MONTHS"`
	BiofuelShutoffMonths int `mapstructure:"BIOFUEL_SHUTOFF_MONTHS"`
}

// RotationImprovements holds the post-transition crop-mix ratios applied
// when OGUseBetterRotation is enabled.
type RotationImprovements struct {
	KcalsReduction float64 `mapstructure:"KCALS_REDUCTION"`
	FatRatio       float64 `mapstructure:"FAT_RATIO"`
	ProteinRatio   float64 `mapstructure:"PROTEIN_RATIO"`
}

// Nutrition holds the daily per-capita nutrient needs.
type Nutrition struct {
	KcalsDaily   float64 `mapstructure:"KCALS_DAILY"`
	FatDaily     float64 `mapstructure:"FAT_DAILY"`
	ProteinDaily float64 `mapstructure:"PROTEIN_DAILY"`
}

// Livestock holds herd-demographic constants and initial inventories. In a
// full deployment these initial counts and per-month feed demand/slaughter
// counts are produced by an external livestock demographic simulator; the
// core here only consumes the resulting series (see FeedBiofuel).
type Livestock struct {
	InitialSmallAnimals  float64 `mapstructure:"INITIAL_SMALL_ANIMALS"`
	InitialMediumAnimals float64 `mapstructure:"INITIAL_MEDIUM_ANIMALS"`
	InitialLargeAnimals  float64 `mapstructure:"INITIAL_LARGE_ANIMALS"`

	KgPerSmallAnimal  float64 `mapstructure:"KG_PER_SMALL_ANIMAL"`
	KgPerMediumAnimal float64 `mapstructure:"KG_PER_MEDIUM_ANIMAL"`
	KgPerLargeAnimal  float64 `mapstructure:"KG_PER_LARGE_ANIMAL"`

	SmallKcalsPerKg, SmallFatPerKg, SmallProteinPerKg    float64
	MediumKcalsPerKg, MediumFatPerKg, MediumProteinPerKg float64
	LargeKcalsPerKg, LargeFatPerKg, LargeProteinPerKg    float64

	// RatioMaintained is the fraction of each category's herd kept alive
	// (not culled) through the shock, one entry per category
	// (small, medium, large).
	RatioMaintained [3]float64

	CullDuration          int  `mapstructure:"CULL_DURATION"`
	RecalculateCullDuration bool `mapstructure:"RECALCULATE_CULL_DURATION"`
}

// Smoothing holds the LP fluctuation-limit toggles.
type Smoothing struct {
	KcalSmoothing      bool    `mapstructure:"KCAL_SMOOTHING"`
	StoredFoodSmoothing bool   `mapstructure:"STORED_FOOD_SMOOTHING"`
	FluctuationLimit   float64 `mapstructure:"FLUCTUATION_LIMIT"`
}

// Seaweed holds farm buildout parameters.
type Seaweed struct {
	NewAreaPerDay        float64 `mapstructure:"NEW_AREA_PER_DAY"`
	ProductionRate       float64 `mapstructure:"SEAWEED_PRODUCTION_RATE"`
	MinDensity           float64
	MaxDensity           float64
	MaximumArea          float64
	InitialArea          float64
	InitialSeaweed       float64
	HarvestLossFraction  float64
}

// FeedBiofuel holds nonhuman demand series inputs and the industrial-food
// usage caps on the feed/biofuel cascade.
type FeedBiofuel struct {
	FeedMonthlyUsageKcals, FeedMonthlyUsageFat, FeedMonthlyUsageProtein       float64
	BiofuelMonthlyUsageKcals, BiofuelMonthlyUsageFat, BiofuelMonthlyUsageProtein float64

	MaxFractionBiofuelAsCS, MaxFractionFeedAsCS   float64
	MaxFractionBiofuelAsSCP, MaxFractionFeedAsSCP float64
	MaxFractionHumanFoodAsSCP, MaxFractionHumanFoodAsCS float64
}

// Inputs is the full, frozen-at-load scenario configuration.
type Inputs struct {
	NMonths          int     `mapstructure:"NMONTHS"`
	StartingMonthNum int     `mapstructure:"STARTING_MONTH_NUM"`
	Population       float64 `mapstructure:"POP"`

	Nutrition      Nutrition `mapstructure:"NUTRITION"`
	IncludeFat     bool      `mapstructure:"INCLUDE_FAT"`
	IncludeProtein bool      `mapstructure:"INCLUDE_PROTEIN"`
	// ExcludeFat and ExcludeProtein bypass a nutrient in every Triple
	// comparison regardless of IncludeFat/IncludeProtein; see
	// nutrient.Conversions.
	ExcludeFat     bool `mapstructure:"EXCLUDE_FAT"`
	ExcludeProtein bool `mapstructure:"EXCLUDE_PROTEIN"`

	AddFish           bool `mapstructure:"ADD_FISH"`
	AddSeaweed        bool `mapstructure:"ADD_SEAWEED"`
	AddStoredFood     bool `mapstructure:"ADD_STORED_FOOD"`
	AddOutdoorGrowing bool `mapstructure:"ADD_OUTDOOR_GROWING"`
	AddGreenhouses    bool `mapstructure:"ADD_GREENHOUSES"`
	AddMethaneSCP     bool `mapstructure:"ADD_METHANE_SCP"`
	AddCellulosicSugar bool `mapstructure:"ADD_CELLULOSIC_SUGAR"`
	AddMaintainedMeat bool `mapstructure:"ADD_MAINTAINED_MEAT"`
	AddCulledMeat     bool `mapstructure:"ADD_CULLED_MEAT"`
	AddMilk           bool `mapstructure:"ADD_MILK"`

	IsNuclearWinter     bool       `mapstructure:"IS_NUCLEAR_WINTER"`
	DisruptionCropsYear [11]float64
	Seasonality         [12]float64 `mapstructure:"SEASONALITY"`

	Waste Waste `mapstructure:"WASTE"`
	Delay Delay `mapstructure:"DELAY"`

	MaxSeaweedAsPercentKcals          float64 `mapstructure:"MAX_SEAWEED_AS_PERCENT_KCALS"`
	MaxFractionCulledSlaughterToBaseline float64 `mapstructure:"MAX_FRACTION_CULLED_SLAUGHTER_TO_BASELINE"`

	Seaweed Seaweed

	OGUseBetterRotation            bool                 `mapstructure:"OG_USE_BETTER_ROTATION"`
	RotationImprovements           RotationImprovements `mapstructure:"ROTATION_IMPROVEMENTS"`
	InitialHarvestDurationInMonths int                  `mapstructure:"INITIAL_HARVEST_DURATION_IN_MONTHS"`

	BaselineCropKcals, BaselineCropFat, BaselineCropProtein float64

	GreenhouseGainPercent float64

	FeedBiofuel FeedBiofuel
	Livestock   Livestock `mapstructure:"LIVESTOCK"`
	Smoothing   Smoothing `mapstructure:"SMOOTHING"`

	Verbose          bool `mapstructure:"VERBOSE"`
	CheckConstraints bool `mapstructure:"CHECK_CONSTRAINTS"`
}

// NDays is the simulation horizon expressed in days.
func (in *Inputs) NDays() int { return in.NMonths * 30 }
