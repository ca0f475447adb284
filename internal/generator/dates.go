package generator

import "time"

const isoDate = "2006-01-02"

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func endOfMonth(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, -1)
}

// months lists the first day of every calendar month touched by [from, to].
func months(from, to time.Time) []time.Time {
	var out []time.Time
	for m := monthStart(from); !m.After(to); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}

func maxDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

// StayDates is a coherent reservation/check-in/check-out triple.
type StayDates struct {
	BookedOn time.Time
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
}

const (
	leadShape   = 2.0
	leadScale   = 10.0
	maxLeadDays = 120
)

// SampleStayDates draws a checkout inside [start, end], a length of stay
// from nights, and a gamma-distributed lead time. Clamping to start moves
// the dates and never changes the length of stay.
func SampleStayDates(r *RNG, start, end time.Time, nights *Categorical[int]) StayDates {
	checkOut := r.DateBetween(start, end)
	los := nights.Draw(r)
	checkIn := addDays(checkOut, -los)
	if checkIn.Before(start) {
		checkIn = start
		checkOut = addDays(checkIn, los)
	}

	lead := r.Gamma(leadShape, leadScale)
	leadDays := int(min(max(lead, 0), maxLeadDays))
	bookedOn := maxDate(addDays(checkIn, -leadDays), start)

	return StayDates{BookedOn: bookedOn, CheckIn: checkIn, CheckOut: checkOut, Nights: los}
}
