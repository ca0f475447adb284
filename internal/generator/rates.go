package generator

import (
	"math"
	"time"
)

// MinNightlyRate is the floor of every effective nightly rate.
const MinNightlyRate = 100.0

var seasonality = [13]float64{
	time.January: 0.95, time.February: 0.98, time.March: 1.00,
	time.April: 1.03, time.May: 1.05, time.June: 1.08,
	time.July: 1.12, time.August: 1.10, time.September: 1.02,
	time.October: 1.00, time.November: 0.98, time.December: 1.20,
}

var weekdayFactor = [7]float64{
	time.Monday: 0.98, time.Tuesday: 0.98, time.Wednesday: 1.00,
	time.Thursday: 1.00, time.Friday: 1.05, time.Saturday: 1.12,
	time.Sunday: 1.10,
}

// NightlyRate is the effective price of one night starting on day.
func NightlyRate(r *RNG, day time.Time, base float64) float64 {
	rate := base * seasonality[day.Month()] * weekdayFactor[day.Weekday()] * r.Normal(1.0, 0.03)
	if !(rate >= MinNightlyRate) { // also catches NaN
		return MinNightlyRate
	}
	return rate
}

// StayValue sums the nightly rates of [checkIn, checkIn+nights).
func StayValue(r *RNG, checkIn time.Time, nights int, base float64) float64 {
	var total float64
	for i := 0; i < nights; i++ {
		total += NightlyRate(r, addDays(checkIn, i), base)
	}
	return total
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// roundedAbsNormal draws round(|N(mu, sigma)|) clamped to [lo, hi].
func roundedAbsNormal(r *RNG, mu, sigma float64, lo, hi int) int {
	return clampInt(int(math.RoundToEven(math.Abs(r.Normal(mu, sigma)))), lo, hi)
}
