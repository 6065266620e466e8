package overtime

// Default pay multipliers per the Labor Standards Act. Article 24:
// weekday overtime pays 1.33x for the first 2 hours and 1.66x for the
// next 2; rest-day and holiday work pay 2x here.
const (
	DefaultWeekdayRate1 = 1.33
	DefaultWeekdayRate2 = 1.66
	DefaultRestRate     = 2.0
	DefaultHolidayRate  = 2.0
)

// Params is the parameter set of one calculator invocation.
// Constructed fresh per request, never shared.
type Params struct {
	HourlyWage   float64
	WeekdayHours float64
	RestDayHours float64
	HolidayHours float64

	WeekdayRate1 float64
	WeekdayRate2 float64
	RestRate     float64
	HolidayRate  float64
}

// DefaultParams returns a Params with every rate at its default and all
// hours and wage at zero.
func DefaultParams() Params {
	return Params{
		WeekdayRate1: DefaultWeekdayRate1,
		WeekdayRate2: DefaultWeekdayRate2,
		RestRate:     DefaultRestRate,
		HolidayRate:  DefaultHolidayRate,
	}
}

// Breakdown is the computed pay breakdown. All amounts are unrounded;
// rounding to whole currency units happens only when formatting.
type Breakdown struct {
	Params Params

	WeekdayTier1Hours float64 // first 2 hours at WeekdayRate1
	WeekdayTier2Hours float64 // hours 3-4 at WeekdayRate2
	WeekdayExtraHours float64 // beyond 4 hours, still WeekdayRate2

	WeekdayPay float64
	RestDayPay float64
	HolidayPay float64
}
