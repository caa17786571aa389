package consumption

// DrinkOverrides holds the drink fields a caller supplied explicitly. Unset
// fields fall back to a preset request.
type DrinkOverrides struct {
	Beverage string
	Volume   *float64
	Unit     string
	ABV      *float64
	Quantity *int
}

// Apply resolves the overrides against preset. Choosing a beverage without
// an ABV selects that beverage's default ABV, and choosing a unit without a
// volume selects the unit's preset volume.
func (o DrinkOverrides) Apply(preset DrinkRequest) (DrinkRequest, error) {
	req := preset

	if o.Beverage != "" {
		b, err := ParseBeverage(o.Beverage)
		if err != nil {
			return DrinkRequest{}, err
		}
		req.Beverage = b
		req.ABV = b.DefaultABV()
	}
	if o.ABV != nil {
		req.ABV = *o.ABV
	}

	if o.Unit != "" {
		u, err := ParseVolumeUnit(o.Unit)
		if err != nil {
			return DrinkRequest{}, err
		}
		req.Unit = u
		req.Volume = u.DefaultVolume()
	}
	if o.Volume != nil {
		req.Volume = *o.Volume
	}

	if o.Quantity != nil {
		req.Quantity = *o.Quantity
	}

	return req, nil
}

// NicotineOverrides holds the nicotine fields a caller supplied explicitly.
type NicotineOverrides struct {
	Percent    *float64
	CapacityMl *float64
	Days       *float64
}

// Apply returns preset with every set field replaced.
func (o NicotineOverrides) Apply(preset NicotineInput) NicotineInput {
	in := preset
	if o.Percent != nil {
		in.NicotinePercent = *o.Percent
	}
	if o.CapacityMl != nil {
		in.CapacityMilliliters = *o.CapacityMl
	}
	if o.Days != nil {
		in.DaysToFinish = *o.Days
	}
	return in
}

// DefaultDrinkRequest is the built-in preset: one 330 mL beer at 5%.
func DefaultDrinkRequest() DrinkRequest {
	return DrinkRequest{
		Beverage: BeverageBeer,
		Volume:   DefaultVolumeMl,
		Unit:     UnitMilliliters,
		ABV:      BeverageBeer.DefaultABV(),
		Quantity: DefaultQuantity,
	}
}

// DefaultNicotineInput is the built-in preset: 5%, 18 mL over 7 days.
func DefaultNicotineInput() NicotineInput {
	return NicotineInput{
		NicotinePercent:     DefaultNicotinePercent,
		CapacityMilliliters: DefaultCapacityMl,
		DaysToFinish:        DefaultDaysToFinish,
	}
}
