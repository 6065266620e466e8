package overtime

import "math"

// Compute produces the tiered pay breakdown for the given params.
// Pure function: the whole breakdown is reproducible from params alone.
//
// Weekday overtime splits into three bands: the first 2 hours at
// WeekdayRate1, hours 3-4 at WeekdayRate2, and anything beyond 4 hours
// also at WeekdayRate2 — the excess is flagged in formatting rather than
// billed at a distinct third rate. Rest-day and holiday hours are flat.
func Compute(params Params) (Breakdown, error) {
	if math.IsNaN(params.HourlyWage) || params.HourlyWage <= 0 {
		return Breakdown{}, ErrInvalidWage
	}

	weekday := clampHours(params.WeekdayHours)
	rest := clampHours(params.RestDayHours)
	holiday := clampHours(params.HolidayHours)

	tier1 := math.Min(weekday, 2)
	tier2 := math.Min(math.Max(weekday-2, 0), 2)
	extra := math.Max(weekday-4, 0)

	b := Breakdown{
		Params:            params,
		WeekdayTier1Hours: tier1,
		WeekdayTier2Hours: tier2,
		WeekdayExtraHours: extra,
	}

	wage := params.HourlyWage
	b.WeekdayPay = wage*tier1*params.WeekdayRate1 + wage*(tier2+extra)*params.WeekdayRate2
	b.RestDayPay = wage * rest * params.RestRate
	b.HolidayPay = wage * holiday * params.HolidayRate

	return b, nil
}

// Rounded subtotals for display. Rounding happens here only, never in
// intermediate sums.

// WeekdayPayRounded returns the weekday subtotal in whole currency units.
func (b Breakdown) WeekdayPayRounded() int64 { return int64(math.Round(b.WeekdayPay)) }

// RestDayPayRounded returns the rest-day subtotal in whole currency units.
func (b Breakdown) RestDayPayRounded() int64 { return int64(math.Round(b.RestDayPay)) }

// HolidayPayRounded returns the holiday subtotal in whole currency units.
func (b Breakdown) HolidayPayRounded() int64 { return int64(math.Round(b.HolidayPay)) }

// TotalRounded is the sum of the three rounded category subtotals.
func (b Breakdown) TotalRounded() int64 {
	return b.WeekdayPayRounded() + b.RestDayPayRounded() + b.HolidayPayRounded()
}

func clampHours(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}
