// Package consumption converts beverage and vape parameters into standard
// drinks and daily nicotine intake.
//
// The two calculators are pure functions over small value types:
//
//	drinks, err := consumption.ComputeStandardDrinks(330, 0.05, 1)
//	nic, err := consumption.ComputeNicotineConsumption(5, 18, 7)
//
// Unit normalization, beverage defaults, number formatting, icon strings and
// the static reference tables live alongside them for the presentation layers.
package consumption

// DrinkInput holds the normalized parameters of one drink size.
type DrinkInput struct {
	// VolumeMilliliters is the volume of a single drink in mL.
	VolumeMilliliters float64 `json:"volume_ml"`

	// ABVFraction is alcohol by volume as a decimal (0.05 = 5%).
	ABVFraction float64 `json:"abv"`

	// Quantity is the number of drinks of this size.
	Quantity int `json:"quantity"`
}

// DrinkResult is the outcome of ComputeStandardDrinks.
type DrinkResult struct {
	Input DrinkInput `json:"input"`

	// StandardDrinksPerUnit is VolumeMilliliters * ABVFraction / 17.05.
	StandardDrinksPerUnit float64 `json:"standard_drinks_per_unit"`

	// TotalStandardDrinks is StandardDrinksPerUnit * Quantity.
	TotalStandardDrinks float64 `json:"total_standard_drinks"`
}

// NicotineInput holds the parameters of one vape.
type NicotineInput struct {
	// NicotinePercent is the nicotine strength in percent (5 = 5%).
	NicotinePercent float64 `json:"nicotine_percent"`

	// CapacityMilliliters is the liquid capacity of the vape.
	CapacityMilliliters float64 `json:"capacity_ml"`

	// DaysToFinish is how long the vape lasts. Must be positive.
	DaysToFinish float64 `json:"days_to_finish"`
}

// NicotineResult is the outcome of ComputeNicotineConsumption.
type NicotineResult struct {
	Input NicotineInput `json:"input"`

	MgPerMilliliter         float64 `json:"mg_per_ml"`
	TotalNicotineMilligrams float64 `json:"total_nicotine_mg"`
	DailyNicotineMilligrams float64 `json:"daily_nicotine_mg"`
	PacksPerDayEquivalent   float64 `json:"packs_per_day"`
}

// ShortUsagePeriod reports whether the vape is finished in under a day.
// The daily figure is then an extrapolation and surfaces flag it.
func (r NicotineResult) ShortUsagePeriod() bool {
	return r.Input.DaysToFinish < ShortUsagePeriodDays
}
