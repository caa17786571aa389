package consumption

// Conversion constants for standard drinks and nicotine equivalence.
//
//	standard_drinks = volume_mL * abv / GramsAlcoholDivisor
//	packs_per_day   = daily_mg / NicotineMgPerPackDay
const (
	// GramsAlcoholDivisor turns mL of pure alcohol into standard drinks.
	GramsAlcoholDivisor = 17.05

	// NicotinePercentToMgPerMl converts a nicotine percentage to mg/mL (5% = 50 mg/mL).
	NicotinePercentToMgPerMl = 10.0

	// NicotineMgPerPackDay is the daily nicotine intake of one pack a day.
	NicotineMgPerPackDay = 21.0
)

// Volume unit factors to milliliters.
const (
	MillilitersToMl = 1.0
	LitersToMl      = 1000.0
	FluidOuncesToMl = 29.5735
)

// Input limits shared by the calculators, the CLI and the HTTP API.
const (
	MinABV             = 0.0
	MaxABV             = 1.0
	MinQuantity        = 1
	MinNicotinePercent = 0.0
	MaxNicotinePercent = 50.0
)

// Presentation defaults.
const (
	DefaultVolumeMl          = 330.0
	DefaultVolumeLiters      = 0.33
	DefaultVolumeFluidOunces = 12.0
	DefaultQuantity          = 1

	DefaultNicotinePercent = 5.0
	DefaultCapacityMl      = 18.0
	DefaultDaysToFinish    = 7.0
)

// ShortUsagePeriodDays is the period below which a nicotine result is
// flagged as a short usage period. Such inputs are valid but extrapolate
// a sub-day window to a full day.
const ShortUsagePeriodDays = 1.0

// Visual rendering limits.
const (
	// MaxIcons is the largest whole count drawn as repeated icons.
	MaxIcons = 20

	// PartialIconThreshold is the fractional part at which a half icon is drawn.
	PartialIconThreshold = 0.5
)
