package consumption

import "fmt"

// ComputeNicotineConsumption converts vape strength, capacity and usage
// period into daily nicotine and pack-per-day equivalence.
//
//	mg_per_ml = percent * 10
//	total_mg  = mg_per_ml * capacityML
//	daily_mg  = total_mg / days
//	ppd       = daily_mg / 21
//
// It returns an error wrapping ErrInvalidInput when days is not positive,
// percent is outside [0,50], capacity is negative, or any argument is not
// finite. The result never contains Inf or NaN.
func ComputeNicotineConsumption(percent, capacityML, days float64) (NicotineResult, error) {
	input := NicotineInput{NicotinePercent: percent, CapacityMilliliters: capacityML, DaysToFinish: days}
	if err := input.Validate(); err != nil {
		return NicotineResult{}, err
	}

	mgPerMl := percent * NicotinePercentToMgPerMl
	total := mgPerMl * capacityML
	daily := total / days
	if !isFinite(daily) {
		return NicotineResult{}, fmt.Errorf("%w: result overflows", ErrInvalidInput)
	}

	return NicotineResult{
		Input:                   input,
		MgPerMilliliter:         mgPerMl,
		TotalNicotineMilligrams: total,
		DailyNicotineMilligrams: daily,
		PacksPerDayEquivalent:   daily / NicotineMgPerPackDay,
	}, nil
}

// Validate checks the nicotine input preconditions.
func (in NicotineInput) Validate() error {
	if !isFinite(in.NicotinePercent) ||
		in.NicotinePercent < MinNicotinePercent || in.NicotinePercent > MaxNicotinePercent {
		return fmt.Errorf("%w: nicotine percent must be between %g and %g, got %g",
			ErrInvalidInput, MinNicotinePercent, MaxNicotinePercent, in.NicotinePercent)
	}
	if !isFinite(in.CapacityMilliliters) || in.CapacityMilliliters < 0 {
		return fmt.Errorf("%w: capacity must be a finite number >= 0, got %g",
			ErrInvalidInput, in.CapacityMilliliters)
	}
	if !isFinite(in.DaysToFinish) || in.DaysToFinish <= 0 {
		return fmt.Errorf("%w: days to finish must be > 0, got %g", ErrInvalidInput, in.DaysToFinish)
	}
	return nil
}
