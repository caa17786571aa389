package consumption

import (
	"fmt"
	"math"
)

// ComputeStandardDrinks converts a drink size into standard drinks.
//
//	per_unit = volumeML * abv / 17.05
//	total    = per_unit * quantity
//
// volumeML must already be normalized to milliliters (see
// NormalizeToMilliliters). It returns an error wrapping ErrInvalidInput for
// a negative or non-finite volume, an ABV outside [0,1], or a quantity
// below 1.
//
// Example:
//
//	r, _ := ComputeStandardDrinks(330, 0.05, 1) // r.StandardDrinksPerUnit ≈ 0.97
func ComputeStandardDrinks(volumeML, abv float64, quantity int) (DrinkResult, error) {
	input := DrinkInput{VolumeMilliliters: volumeML, ABVFraction: abv, Quantity: quantity}
	if err := input.Validate(); err != nil {
		return DrinkResult{}, err
	}

	perUnit := volumeML * abv / GramsAlcoholDivisor
	total := perUnit * float64(quantity)
	if math.IsInf(total, 0) {
		return DrinkResult{}, fmt.Errorf("%w: result overflows", ErrInvalidInput)
	}

	return DrinkResult{
		Input:                 input,
		StandardDrinksPerUnit: perUnit,
		TotalStandardDrinks:   total,
	}, nil
}

// Validate checks the drink input preconditions.
func (in DrinkInput) Validate() error {
	if !isFinite(in.VolumeMilliliters) {
		return fmt.Errorf("%w: volume must be a finite number", ErrInvalidInput)
	}
	if in.VolumeMilliliters < 0 {
		return fmt.Errorf("%w: volume must be >= 0, got %g", ErrInvalidInput, in.VolumeMilliliters)
	}
	if !isFinite(in.ABVFraction) || in.ABVFraction < MinABV || in.ABVFraction > MaxABV {
		return fmt.Errorf("%w: abv must be between %g and %g, got %g",
			ErrInvalidInput, MinABV, MaxABV, in.ABVFraction)
	}
	if in.Quantity < MinQuantity {
		return fmt.Errorf("%w: quantity must be >= %d, got %d", ErrInvalidInput, MinQuantity, in.Quantity)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
