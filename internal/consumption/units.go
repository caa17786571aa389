package consumption

import (
	"fmt"
	"math"
	"strings"
)

// VolumeUnit is the unit a drink volume is entered in.
type VolumeUnit string

// Supported volume units.
const (
	UnitMilliliters VolumeUnit = "mL"
	UnitLiters      VolumeUnit = "L"
	UnitFluidOunces VolumeUnit = "fl oz"
)

// VolumeUnits lists the supported units in display order.
func VolumeUnits() []VolumeUnit {
	return []VolumeUnit{UnitMilliliters, UnitLiters, UnitFluidOunces}
}

// Factor returns the multiplier that converts the unit to milliliters.
// The second value is false for unsupported units.
func (u VolumeUnit) Factor() (float64, bool) {
	switch u {
	case UnitMilliliters:
		return MillilitersToMl, true
	case UnitLiters:
		return LitersToMl, true
	case UnitFluidOunces:
		return FluidOuncesToMl, true
	default:
		return 0, false
	}
}

// DefaultVolume returns the preset volume for the unit: 330 mL, 0.33 L or 12 fl oz.
func (u VolumeUnit) DefaultVolume() float64 {
	switch u {
	case UnitLiters:
		return DefaultVolumeLiters
	case UnitFluidOunces:
		return DefaultVolumeFluidOunces
	default:
		return DefaultVolumeMl
	}
}

// ParseVolumeUnit resolves a user supplied unit string.
// Matching is case-insensitive and accepts common spellings
// ("ml", "liters", "oz", "floz", "fl oz").
func ParseVolumeUnit(s string) (VolumeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ml", "milliliter", "milliliters", "millilitre", "millilitres":
		return UnitMilliliters, nil
	case "l", "liter", "liters", "litre", "litres":
		return UnitLiters, nil
	case "oz", "floz", "fl oz", "fl_oz", "fluid ounce", "fluid ounces":
		return UnitFluidOunces, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// NormalizeToMilliliters converts a volume in the given unit to mL.
func NormalizeToMilliliters(value float64, unit VolumeUnit) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: volume must be a finite number", ErrInvalidInput)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: volume must be >= 0, got %g", ErrInvalidInput, value)
	}

	factor, ok := unit.Factor()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(unit))
	}

	ml := value * factor
	if math.IsInf(ml, 0) {
		return 0, fmt.Errorf("%w: volume too large", ErrInvalidInput)
	}
	return ml, nil
}
