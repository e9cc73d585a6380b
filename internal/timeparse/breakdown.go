package timeparse

import "math"

// Breakdown is a total number of seconds split into calendar-like units
// using fixed 30-day months and 12-month years. Only Seconds may carry a
// fractional part.
type Breakdown struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds float64
}

// breakdownSteps divide each unit into the next larger one.
var breakdownSteps = []struct {
	unit, parent Unit
	divisor      int64
}{
	{Seconds, Minutes, 60},
	{Minutes, Hours, 60},
	{Hours, Days, 24},
	{Days, Months, 30},
	{Months, Years, 12},
}

// NewBreakdown splits seconds into larger units. Division stops as soon as
// the running quotient no longer exceeds the next divisor, so 3600 becomes
// 60 minutes rather than 1 hour.
func NewBreakdown(seconds float64) Breakdown {
	b := Breakdown{Seconds: seconds}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return b
	}

	whole, frac := math.Modf(seconds)
	quotient := int64(whole)
	for _, step := range breakdownSteps {
		// A fractional remainder pushes a quotient equal to the divisor
		// just past it.
		if quotient < step.divisor || (quotient == step.divisor && frac == 0) {
			break
		}
		remainder := quotient % step.divisor
		quotient /= step.divisor
		if step.unit == Seconds {
			b.Seconds = float64(remainder) + frac
		} else {
			b.set(step.unit, remainder)
		}
		b.set(step.parent, quotient)
	}
	return b
}

// set assigns an integer unit field. Seconds and Weeks have no integer
// field and are ignored.
func (b *Breakdown) set(u Unit, v int64) {
	switch u {
	case Minutes:
		b.Minutes = v
	case Hours:
		b.Hours = v
	case Days:
		b.Days = v
	case Months:
		b.Months = v
	case Years:
		b.Years = v
	}
}

// Total reconstructs the number of seconds the breakdown represents.
func (b Breakdown) Total() float64 {
	whole := ((((b.Years*12+b.Months)*30+b.Days)*24+b.Hours)*60 + b.Minutes) * 60
	return float64(whole) + b.Seconds
}
