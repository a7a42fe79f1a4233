package scenario

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// Cfg wraps a viper instance: the scenario-wide knobs in Inputs are
// readable individually as well as decodable as a whole, and bound
// flags override file contents. This is a thin adapter over an
// established configuration library, not a hand-rolled parser.
type Cfg struct {
	*viper.Viper
}

// NewCfg returns a Cfg with the reference scenario defaults pre-loaded, so
// that a partial configuration file only needs to override what it cares
// about.
func NewCfg() *Cfg {
	v := viper.New()
	c := &Cfg{v}
	c.loadDefaults(Default())
	return c
}

// loadDefaults seeds viper's default layer from a fully populated Inputs,
// so that any field the configuration file omits falls back sensibly.
func (c *Cfg) loadDefaults(in *Inputs) {
	c.SetDefault("NMONTHS", in.NMonths)
	c.SetDefault("STARTING_MONTH_NUM", in.StartingMonthNum)
	c.SetDefault("POP", in.Population)
	c.SetDefault("NUTRITION.KCALS_DAILY", in.Nutrition.KcalsDaily)
	c.SetDefault("NUTRITION.FAT_DAILY", in.Nutrition.FatDaily)
	c.SetDefault("NUTRITION.PROTEIN_DAILY", in.Nutrition.ProteinDaily)
	c.SetDefault("INCLUDE_FAT", in.IncludeFat)
	c.SetDefault("INCLUDE_PROTEIN", in.IncludeProtein)
	c.SetDefault("EXCLUDE_FAT", in.ExcludeFat)
	c.SetDefault("EXCLUDE_PROTEIN", in.ExcludeProtein)
	c.SetDefault("ADD_FISH", in.AddFish)
	c.SetDefault("ADD_SEAWEED", in.AddSeaweed)
	c.SetDefault("ADD_STORED_FOOD", in.AddStoredFood)
	c.SetDefault("ADD_OUTDOOR_GROWING", in.AddOutdoorGrowing)
	c.SetDefault("ADD_GREENHOUSES", in.AddGreenhouses)
	c.SetDefault("ADD_METHANE_SCP", in.AddMethaneSCP)
	c.SetDefault("ADD_CELLULOSIC_SUGAR", in.AddCellulosicSugar)
	c.SetDefault("ADD_MAINTAINED_MEAT", in.AddMaintainedMeat)
	c.SetDefault("ADD_CULLED_MEAT", in.AddCulledMeat)
	c.SetDefault("ADD_MILK", in.AddMilk)
	c.SetDefault("IS_NUCLEAR_WINTER", in.IsNuclearWinter)
	c.SetDefault("SEASONALITY", in.Seasonality[:])
	for i, v := range in.DisruptionCropsYear {
		c.SetDefault(fmt.Sprintf("DISRUPTION_CROPS_YEAR%d", i+1), v)
	}
	c.SetDefault("WASTE.CROPS", in.Waste.Crops)
	c.SetDefault("WASTE.SEAFOOD", in.Waste.Seafood)
	c.SetDefault("WASTE.MEAT", in.Waste.Meat)
	c.SetDefault("WASTE.DAIRY", in.Waste.Dairy)
	c.SetDefault("WASTE.SEAWEED", in.Waste.Seaweed)
	c.SetDefault("WASTE.SUGAR", in.Waste.Sugar)
	c.SetDefault("DELAY.SEAWEED", in.Delay.Seaweed)
	c.SetDefault("DELAY.GREENHOUSE", in.Delay.Greenhouse)
	c.SetDefault("DELAY.INDUSTRIAL_FOODS", in.Delay.IndustrialFoods)
	c.SetDefault("DELAY.ROTATION_CHANGE_IN_MONTHS", in.Delay.RotationChangeMonths)
	c.SetDefault("DELAY.FEED_SHUTOFF_MONTHS", in.Delay.FeedShutoffMonths)
	c.SetDefault("DELAY.BIOFUEL_SHUTOFF_MONTHS", in.Delay.BiofuelShutoffMonths)
	c.SetDefault("MAX_SEAWEED_AS_PERCENT_KCALS", in.MaxSeaweedAsPercentKcals)
	c.SetDefault("MAX_FRACTION_CULLED_SLAUGHTER_TO_BASELINE", in.MaxFractionCulledSlaughterToBaseline)
	c.SetDefault("OG_USE_BETTER_ROTATION", in.OGUseBetterRotation)
	c.SetDefault("ROTATION_IMPROVEMENTS.KCALS_REDUCTION", in.RotationImprovements.KcalsReduction)
	c.SetDefault("ROTATION_IMPROVEMENTS.FAT_RATIO", in.RotationImprovements.FatRatio)
	c.SetDefault("ROTATION_IMPROVEMENTS.PROTEIN_RATIO", in.RotationImprovements.ProteinRatio)
	c.SetDefault("INITIAL_HARVEST_DURATION_IN_MONTHS", in.InitialHarvestDurationInMonths)
	c.SetDefault("VERBOSE", in.Verbose)
	c.SetDefault("CHECK_CONSTRAINTS", in.CheckConstraints)
	c.SetDefault("LIVESTOCK.CULL_DURATION", in.Livestock.CullDuration)
	c.SetDefault("LIVESTOCK.RECALCULATE_CULL_DURATION", in.Livestock.RecalculateCullDuration)
	c.SetDefault("SMOOTHING.KCAL_SMOOTHING", in.Smoothing.KcalSmoothing)
	c.SetDefault("SMOOTHING.STORED_FOOD_SMOOTHING", in.Smoothing.StoredFoodSmoothing)
	c.SetDefault("SMOOTHING.FLUCTUATION_LIMIT", in.Smoothing.FluctuationLimit)
}

// ReadConfigFile loads a scenario file (YAML, TOML, or JSON, auto-detected
// by extension) and decodes it on top of the reference defaults.
func ReadConfigFile(path string) (*Inputs, error) {
	c := NewCfg()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("scenario: configuration file does not exist: %v", err)
		}
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("scenario: problem reading configuration file: %v", err)
		}
	}
	return c.Decode()
}

// Decode materializes the current viper state (defaults overridden by any
// loaded file and bound flags) into an Inputs value.
func (c *Cfg) Decode() (*Inputs, error) {
	in := Default()
	if err := c.Unmarshal(in); err != nil {
		return nil, fmt.Errorf("scenario: failed to decode configuration: %v", err)
	}

	disruption := [11]float64{}
	for i := range disruption {
		key := fmt.Sprintf("disruption_crops_year%d", i+1)
		disruption[i] = cast.ToFloat64(c.Get(key))
	}
	in.DisruptionCropsYear = disruption

	seasonality := c.GetFloat64Slice("seasonality")
	if len(seasonality) == 12 {
		copy(in.Seasonality[:], seasonality)
	}

	if err := Validate(in); err != nil {
		return nil, err
	}
	return in, nil
}
