package consumption

// DrinkReference is one row of the standard drink reference table.
type DrinkReference struct {
	Beverage       string  `json:"beverage"`
	VolumeMl       float64 `json:"volume_ml"`
	ABV            float64 `json:"abv"`
	TypicalVolume  string  `json:"typical_volume"`
	ABVDisplay     string  `json:"abv_display"`
	StandardDrinks string  `json:"standard_drinks"`
}

// NicotineReference is one row of the nicotine reference table.
type NicotineReference struct {
	Percent        float64 `json:"percent"`
	DailyMl        float64 `json:"daily_ml"`
	PercentDisplay string  `json:"percent_display"`
	MgPerMl        string  `json:"mg_per_ml"`
	Example        string  `json:"example"`
}

// ReferenceDailyMl is the daily liquid use the nicotine examples assume.
const ReferenceDailyMl = 2.0

// DrinkReferenceTable returns the static standard drink examples.
func DrinkReferenceTable() []DrinkReference {
	return []DrinkReference{
		{Beverage: "Beer (5%)", VolumeMl: 330, ABV: 0.05, TypicalVolume: "330 mL", ABVDisplay: "0.05", StandardDrinks: "~0.97"},
		{Beverage: "Wine (12%)", VolumeMl: 150, ABV: 0.12, TypicalVolume: "150 mL", ABVDisplay: "0.12", StandardDrinks: "~1.06"},
		{Beverage: "Spirits (40%)", VolumeMl: 45, ABV: 0.40, TypicalVolume: "45 mL", ABVDisplay: "0.40", StandardDrinks: "~1.06"},
		{Beverage: "Shot (40%)", VolumeMl: 30, ABV: 0.40, TypicalVolume: "30 mL", ABVDisplay: "0.40", StandardDrinks: "~0.70"},
	}
}

// NicotineReferenceTable returns the static nicotine strength examples at
// ReferenceDailyMl of liquid per day.
func NicotineReferenceTable() []NicotineReference {
	return []NicotineReference{
		{Percent: 3, DailyMl: ReferenceDailyMl, PercentDisplay: "3%", MgPerMl: "30", Example: "60 mg/day (2.9 ppd)"},
		{Percent: 5, DailyMl: ReferenceDailyMl, PercentDisplay: "5%", MgPerMl: "50", Example: "100 mg/day (4.8 ppd)"},
		{Percent: 6, DailyMl: ReferenceDailyMl, PercentDisplay: "6%", MgPerMl: "60", Example: "120 mg/day (5.7 ppd)"},
	}
}

// HealthNotes is the information footer shown with every calculator.
func HealthNotes() []string {
	return []string{
		"Alcohol: standard drinks = Volume (mL) × ABV ÷ 17.05",
		"Nicotine: 21 mg of nicotine equals 1 pack-per-day equivalence",
		"These calculators are for educational purposes only",
		"Always use substances responsibly",
		"If you're concerned about your consumption, please consult a healthcare professional",
	}
}
