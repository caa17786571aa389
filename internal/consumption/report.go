package consumption

import "fmt"

// Detail is a labelled display value.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DrinkRequest is a drink as entered by a user, before unit normalization.
type DrinkRequest struct {
	Beverage Beverage   `json:"beverage"`
	Volume   float64    `json:"volume"`
	Unit     VolumeUnit `json:"unit"`
	ABV      float64    `json:"abv"`
	Quantity int        `json:"quantity"`
}

// DrinkReport is a computed drink result plus its display strings.
type DrinkReport struct {
	Request DrinkRequest `json:"request"`
	Result  DrinkResult  `json:"result"`

	// Headline is the main display line, e.g. "0.97 total standard drinks".
	Headline    string   `json:"headline"`
	Details     []Detail `json:"details"`
	Calculation string   `json:"calculation"`
	// Breakdown is only set when more than one drink was entered.
	Breakdown []Detail `json:"breakdown,omitempty"`
	Visual    string   `json:"visual,omitempty"`
}

// EstimateDrinks normalizes the request volume, computes standard drinks and
// builds the display report. Errors wrap ErrInvalidInput.
func EstimateDrinks(req DrinkRequest) (DrinkReport, error) {
	if req.Unit == "" {
		req.Unit = UnitMilliliters
	}
	if req.Beverage == "" {
		req.Beverage = BeverageCustom
	}

	volumeML, err := NormalizeToMilliliters(req.Volume, req.Unit)
	if err != nil {
		return DrinkReport{}, err
	}

	result, err := ComputeStandardDrinks(volumeML, req.ABV, req.Quantity)
	if err != nil {
		return DrinkReport{}, err
	}

	report := DrinkReport{
		Request:  req,
		Result:   result,
		Headline: FormatDrinks(result.TotalStandardDrinks) + " total standard drinks",
		Details: []Detail{
			{Label: "Beverage", Value: req.Beverage.Title()},
			{Label: "Volume per drink", Value: fmt.Sprintf("%s %s (%s mL)",
				formatPlain(req.Volume), req.Unit, FormatFloat(volumeML, VolumePrecision))},
			{Label: "ABV", Value: FormatABV(req.ABV)},
			{Label: "Number of drinks", Value: FormatNumber(int64(req.Quantity))},
			{Label: "Standard drinks per unit", Value: FormatDrinks(result.StandardDrinksPerUnit)},
		},
		Calculation: fmt.Sprintf("(%s mL × %.*f ÷ %g) × %d = %s",
			FormatFloat(volumeML, VolumePrecision), ABVPrecision, req.ABV, GramsAlcoholDivisor,
			req.Quantity, FormatDrinks(result.TotalStandardDrinks)),
		Visual: DrinkIcons(result.TotalStandardDrinks),
	}

	if req.Quantity > 1 {
		report.Breakdown = []Detail{
			{Label: "Per drink", Value: FormatDrinks(result.StandardDrinksPerUnit) + " standard drinks"},
			{
				Label: fmt.Sprintf("Total (%d drinks)", req.Quantity),
				Value: FormatDrinks(result.TotalStandardDrinks) + " standard drinks",
			},
		}
	}

	return report, nil
}

// NicotineReport is a computed nicotine result plus its display strings.
type NicotineReport struct {
	Result NicotineResult `json:"result"`

	// Headlines holds the daily mg line and the pack-per-day line.
	Headlines    []string `json:"headlines"`
	Details      []Detail `json:"details"`
	Calculations []string `json:"calculations"`
	Visual       string   `json:"visual"`
	// Warning is set for a usage period shorter than a day.
	Warning string `json:"warning,omitempty"`
}

// EstimateNicotine computes nicotine consumption and builds the display
// report. Errors wrap ErrInvalidInput.
func EstimateNicotine(in NicotineInput) (NicotineReport, error) {
	result, err := ComputeNicotineConsumption(in.NicotinePercent, in.CapacityMilliliters, in.DaysToFinish)
	if err != nil {
		return NicotineReport{}, err
	}

	mgPerMl := FormatMilligrams(result.MgPerMilliliter)
	daily := FormatMilligrams(result.DailyNicotineMilligrams)
	ppd := FormatPacks(result.PacksPerDayEquivalent)
	capacity := formatPlain(in.CapacityMilliliters)
	days := formatPlain(in.DaysToFinish)

	report := NicotineReport{
		Result: result,
		Headlines: []string{
			daily + " mg nicotine per day",
			ppd + " pack-per-day equivalent",
		},
		Details: []Detail{
			{Label: "Nicotine concentration", Value: fmt.Sprintf("%s%% (%s mg/mL)",
				formatPlain(in.NicotinePercent), mgPerMl)},
			{Label: "Vape capacity", Value: capacity + " mL"},
			{Label: "Usage period", Value: days + " days"},
			{Label: "Total nicotine", Value: FormatMilligrams(result.TotalNicotineMilligrams) + " mg"},
		},
		Calculations: []string{
			fmt.Sprintf("%s mg/mL × %s mL ÷ %s days = %s mg/day", mgPerMl, capacity, days, daily),
			fmt.Sprintf("%s mg ÷ %g mg/pack = %s ppd", daily, NicotineMgPerPackDay, ppd),
		},
		Visual: PackIcons(result.PacksPerDayEquivalent),
	}

	if result.ShortUsagePeriod() {
		report.Warning = fmt.Sprintf(
			"usage period is under %g day; daily figures are extrapolated", ShortUsagePeriodDays)
	}

	return report, nil
}
