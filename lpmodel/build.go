package lpmodel

import (
	"github.com/mullach/allfed-integrated-model/nutrient"
	"github.com/mullach/allfed-integrated-model/scenario"
)

// ExogenousMonthly holds every per-month quantity the LP treats as a
// known constant rather than a decision variable: everything computed
// ahead of time by the sources and feedalloc packages (only stored
// food, seaweed, crops, humans-fed, and the objective are LP variables).
type ExogenousMonthly struct {
	BuiltAreaKm2        []float64 // seaweed built area per month
	NonhumanKcals       []float64 // feed+biofuel kcals demand, post-cascade netting
	SeaweedKcalsPerTon  float64
	SeaweedFatPerTon    float64
	SeaweedProteinPerTon float64

	CropsNoRotationSupply []float64 // billion kcals available to eat/store, no-rotation pool
	CropsRotationSupply   []float64 // billion kcals available to eat/store, rotation pool
	RotKcalRatio          float64

	DairyMilkKcals       []float64
	CattleMaintainedKcals []float64
	MeatKcals            []float64 // culled + human-edible-cascade meat, combined
	ProductionKcalsCS    []float64
	ProductionKcalsSCP   []float64
	GreenhouseKcals      []float64 // greenhouse_area * greenhouse_kcals_per_ha, precomputed
	FishKcals            []float64
	HumanEdibleCreatedKcals []float64

	CropWasteFraction float64 // W = 1 - crop_waste/100

	InitialStoredFoodKcals float64
	InitialSeaweedWetTons  float64
	InitialAreaKm2         float64
	HarvestDurationMonths  int
}

// variableSet holds every LP variable index for one food model build, the
// way the reference optimizer tracks one named column per quantity.
type variableSet struct {
	storedFoodStart, storedFoodEnd, storedFoodEaten []int
	seaweedWetOnFarm, usedArea, seaweedFoodProduced []int
	cropsStorageNoRot, cropsStorageRot              []int
	cropsEatenNoRot, cropsEatenRot                  []int
	humansFedKcals                                  []int
	objective                                       int
}

// BuildInfo exposes the variable indices a caller needs to read back out
// of a solved Problem: which column holds each month's humans-fed-kcals
// value, which columns hold each consumption-side flow a post-solve
// analysis recomputes per source, and which column holds the scalar
// objective.
type BuildInfo struct {
	HumansFedKcals []int
	Objective      int

	StoredFoodEaten     []int
	CropsEatenNoRot     []int
	CropsEatenRot       []int
	SeaweedFoodProduced []int
}

// Build assembles the full month-indexed LP: stock
// dynamics for stored food, seaweed, and the two outdoor-crop pools;
// kcal nutrient accounting; the consistency constraint; the seaweed
// human-food cap; optional kcal/stored-food smoothing; and the max-min
// objective.
func Build(in *scenario.Inputs, ex *ExogenousMonthly) (*Problem, *BuildInfo, error) {
	p := NewProblem()
	n := in.NMonths
	vs := variableSet{
		storedFoodStart: make([]int, n), storedFoodEnd: make([]int, n), storedFoodEaten: make([]int, n),
		seaweedWetOnFarm: make([]int, n), usedArea: make([]int, n), seaweedFoodProduced: make([]int, n),
		cropsStorageNoRot: make([]int, n), cropsStorageRot: make([]int, n),
		cropsEatenNoRot: make([]int, n), cropsEatenRot: make([]int, n),
		humansFedKcals: make([]int, n),
	}

	for m := 0; m < n; m++ {
		vs.storedFoodStart[m] = p.AddVar(varName("stored_food_start", m), 0, ex.InitialStoredFoodKcals)
		vs.storedFoodEnd[m] = p.AddVar(varName("stored_food_end", m), 0, ex.InitialStoredFoodKcals)
		vs.storedFoodEaten[m] = p.AddVar(varName("stored_food_eaten", m), 0, ex.InitialStoredFoodKcals)

		vs.seaweedWetOnFarm[m] = p.AddVar(varName("seaweed_wet_on_farm", m), ex.InitialSeaweedWetTons, 1e18)
		vs.usedArea[m] = p.AddVar(varName("used_area", m), ex.InitialAreaKm2, ex.BuiltAreaKm2[m])
		vs.seaweedFoodProduced[m] = p.AddVar(varName("seaweed_food_produced", m), 0, 1e18)

		vs.cropsStorageNoRot[m] = p.AddVar(varName("crops_storage_no_rot", m), 0, 1e18)
		vs.cropsStorageRot[m] = p.AddVar(varName("crops_storage_rot", m), 0, 1e18)
		vs.cropsEatenNoRot[m] = p.AddVar(varName("crops_eaten_no_rot", m), 0, 1e18)
		vs.cropsEatenRot[m] = p.AddVar(varName("crops_eaten_rot", m), 0, 1e18)

		vs.humansFedKcals[m] = p.AddVar(varName("humans_fed_kcals", m), 0, 1e18)
	}
	vs.objective = p.AddVar("objective", 0, 1e18)

	addStoredFoodDynamics(p, &vs, in, ex)
	addSeaweedDynamics(p, &vs, in, ex)
	addCropDynamics(p, &vs, in, ex)
	addNutrientAccounting(p, &vs, in, ex)
	addConsistencyConstraint(p, &vs, in, ex)
	addSeaweedCap(p, &vs, in, ex)
	if in.Smoothing.KcalSmoothing {
		addKcalSmoothing(p, &vs, in)
	}
	addObjectiveConstraints(p, &vs, in)

	p.SetObjective(Expr{{VarIndex: vs.objective, Coef: 1}}, true)
	return p, &BuildInfo{
		HumansFedKcals:      vs.humansFedKcals,
		Objective:           vs.objective,
		StoredFoodEaten:     vs.storedFoodEaten,
		CropsEatenNoRot:     vs.cropsEatenNoRot,
		CropsEatenRot:       vs.cropsEatenRot,
		SeaweedFoodProduced: vs.seaweedFoodProduced,
	}, nil
}

func varName(prefix string, m int) string { return prefixMonth(prefix, m) }

func prefixMonth(prefix string, m int) string {
	return prefix + "[" + itoa(m) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func addStoredFoodDynamics(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	for m := 0; m < in.NMonths; m++ {
		// stored_food_end[m] = stored_food_start[m] - stored_food_eaten[m]
		p.AddConstraint(prefixMonth("sf_balance", m),
			Expr{{vs.storedFoodEnd[m], 1}, {vs.storedFoodStart[m], -1}, {vs.storedFoodEaten[m], 1}}, EQ, 0)

		if m == 0 {
			p.AddConstraint(prefixMonth("sf_initial", m), Expr{{vs.storedFoodStart[m], 1}}, EQ, ex.InitialStoredFoodKcals)
		} else {
			// stored_food_start[m] = stored_food_end[m-1]
			p.AddConstraint(prefixMonth("sf_carryover", m),
				Expr{{vs.storedFoodStart[m], 1}, {vs.storedFoodEnd[m-1], -1}}, EQ, 0)
		}

		if in.Smoothing.StoredFoodSmoothing && m > 0 {
			f := in.Smoothing.FluctuationLimit
			// eaten[m] <= F * eaten[m-1]
			p.AddConstraint(prefixMonth("sf_smooth_upper", m),
				Expr{{vs.storedFoodEaten[m], 1}, {vs.storedFoodEaten[m-1], -f}}, LE, 0)
			// eaten[m] >= (1/F) * eaten[m-1]
			p.AddConstraint(prefixMonth("sf_smooth_lower", m),
				Expr{{vs.storedFoodEaten[m], 1}, {vs.storedFoodEaten[m-1], -1 / f}}, GE, 0)
		}
	}
}

func addSeaweedDynamics(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	if !in.AddSeaweed {
		for m := 0; m < in.NMonths; m++ {
			p.AddConstraint(prefixMonth("seaweed_disabled", m), Expr{{vs.seaweedFoodProduced[m], 1}}, EQ, 0)
		}
		return
	}
	growth := 1 + in.Seaweed.ProductionRate/100
	for m := 0; m < in.NMonths; m++ {
		// seaweed_wet_on_farm[m] <= used_area[m] * MAX_DENSITY
		p.AddConstraint(prefixMonth("seaweed_density_cap", m),
			Expr{{vs.seaweedWetOnFarm[m], 1}, {vs.usedArea[m], -in.Seaweed.MaxDensity}}, LE, 0)

		if m == 0 {
			p.AddConstraint(prefixMonth("seaweed_initial", m), Expr{{vs.seaweedWetOnFarm[m], 1}}, EQ, in.Seaweed.InitialSeaweed)
			continue
		}
		// wet_on_farm[m] = wet_on_farm[m-1]*(1+growth) - food_produced[m] -
		// (used_area[m]-used_area[m-1])*MIN_DENSITY*harvest_loss_fraction
		loss := in.Seaweed.MinDensity * in.Seaweed.HarvestLossFraction
		p.AddConstraint(prefixMonth("seaweed_balance", m),
			Expr{
				{vs.seaweedWetOnFarm[m], 1},
				{vs.seaweedWetOnFarm[m-1], -growth},
				{vs.seaweedFoodProduced[m], 1},
				{vs.usedArea[m], loss},
				{vs.usedArea[m - 1], -loss},
			}, EQ, 0)
	}
}

func addCropDynamics(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	hd := ex.HarvestDurationMonths
	for m := 0; m < in.NMonths; m++ {
		switch {
		case m < hd:
			// only no-rotation flows; rotation pinned to zero.
			p.AddConstraint(prefixMonth("crops_rot_pinned", m), Expr{{vs.cropsStorageRot[m], 1}}, EQ, 0)
			p.AddConstraint(prefixMonth("crops_rot_eaten_pinned", m), Expr{{vs.cropsEatenRot[m], 1}}, EQ, 0)
			addStoragePool(p, vs.cropsStorageNoRot, vs.cropsEatenNoRot, ex.CropsNoRotationSupply, m, "no_rot")
		case m < in.NMonths-1:
			// production routes to rotation; no-rotation only drains.
			addStoragePool(p, vs.cropsStorageRot, vs.cropsEatenRot, ex.CropsRotationSupply, m, "rot")
			drainOnly(p, vs.cropsStorageNoRot, vs.cropsEatenNoRot, m)
		default:
			// terminal month: both storages forced to zero.
			p.AddConstraint(prefixMonth("crops_terminal_no_rot", m), Expr{{vs.cropsStorageNoRot[m], 1}}, EQ, 0)
			p.AddConstraint(prefixMonth("crops_terminal_rot", m), Expr{{vs.cropsStorageRot[m], 1}}, EQ, 0)
		}
	}
}

func addStoragePool(p *Problem, storageVars, eatenVars []int, supply []float64, m int, label string) {
	if m == 0 {
		p.AddConstraint(prefixMonth("crops_"+label+"_init", m),
			Expr{{storageVars[m], 1}, {eatenVars[m], 1}}, EQ, supply[m])
		return
	}
	// storage[m] = storage[m-1] + supply[m] - eaten[m]
	p.AddConstraint(prefixMonth("crops_"+label+"_balance", m),
		Expr{{storageVars[m], 1}, {storageVars[m-1], -1}, {eatenVars[m], 1}}, EQ, supply[m])
}

func drainOnly(p *Problem, storageVars, eatenVars []int, m int) {
	if m == 0 {
		return
	}
	// storage[m] = storage[m-1] - eaten[m], no new production.
	p.AddConstraint(prefixMonth("crops_no_rot_drain", m),
		Expr{{storageVars[m], 1}, {storageVars[m-1], -1}, {eatenVars[m], 1}}, EQ, 0)
}

func addNutrientAccounting(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	w := ex.CropWasteFraction
	for m := 0; m < in.NMonths; m++ {
		constant := -ex.NonhumanKcals[m]*w + ex.DairyMilkKcals[m] + ex.CattleMaintainedKcals[m] +
			ex.MeatKcals[m] + ex.ProductionKcalsCS[m] + ex.ProductionKcalsSCP[m] +
			ex.GreenhouseKcals[m] + ex.FishKcals[m] + ex.HumanEdibleCreatedKcals[m]

		// humans_fed_kcals[m] = (stored_eaten*W + crops_no_rot*W +
		// crops_rot*ROT_RATIO*W + seaweed*KCALS_PER_TON + constant) /
		// BILLION_KCALS_NEEDED * 100, rearranged to keep the LP linear:
		// humans_fed_kcals[m]*BILLION_KCALS_NEEDED/100 - stored_eaten*W -
		// crops_no_rot*W - crops_rot*ROT_RATIO*W - seaweed*KCALS_PER_TON = constant
		billionKcalsNeeded := in.Population * in.Nutrition.KcalsDaily * nutrient.DaysPerMonth / 1e9
		p.AddConstraint(prefixMonth("nutrient_kcals", m), Expr{
			{vs.humansFedKcals[m], billionKcalsNeeded / 100},
			{vs.storedFoodEaten[m], -w},
			{vs.cropsEatenNoRot[m], -w},
			{vs.cropsEatenRot[m], -w * ex.RotKcalRatio},
			{vs.seaweedFoodProduced[m], -ex.SeaweedKcalsPerTon},
		}, EQ, constant)
	}
}

func addConsistencyConstraint(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	for m := 0; m < in.NMonths; m++ {
		// stored_food_eaten[m] + crops_eaten_no_rot[m] + crops_eaten_rot[m] >= nonhuman_kcals[m]
		p.AddConstraint(prefixMonth("consistency", m), Expr{
			{vs.storedFoodEaten[m], 1},
			{vs.cropsEatenNoRot[m], 1},
			{vs.cropsEatenRot[m], 1},
		}, GE, ex.NonhumanKcals[m])
	}
}

func addSeaweedCap(p *Problem, vs *variableSet, in *scenario.Inputs, ex *ExogenousMonthly) {
	if !in.AddSeaweed {
		return
	}
	cap := in.MaxSeaweedAsPercentKcals / 100 * in.Population * in.Nutrition.KcalsDaily * nutrient.DaysPerMonth / 1e9
	for m := 0; m < in.NMonths; m++ {
		p.AddConstraint(prefixMonth("seaweed_human_food_cap", m),
			Expr{{vs.seaweedFoodProduced[m], ex.SeaweedKcalsPerTon}}, LE, cap)
	}
}

func addKcalSmoothing(p *Problem, vs *variableSet, in *scenario.Inputs) {
	f := in.Smoothing.FluctuationLimit
	for m := 1; m < in.NMonths; m++ {
		p.AddConstraint(prefixMonth("kcal_smooth_upper", m),
			Expr{{vs.humansFedKcals[m], 1}, {vs.humansFedKcals[m-1], -f}}, LE, 0)
		p.AddConstraint(prefixMonth("kcal_smooth_lower", m),
			Expr{{vs.humansFedKcals[m], 1}, {vs.humansFedKcals[m-1], -1 / f}}, GE, 0)
	}
}

func addObjectiveConstraints(p *Problem, vs *variableSet, in *scenario.Inputs) {
	for m := 0; m < in.NMonths; m++ {
		p.AddConstraint(prefixMonth("objective_le_kcals", m),
			Expr{{vs.objective, 1}, {vs.humansFedKcals[m], -1}}, LE, 0)
	}
}
