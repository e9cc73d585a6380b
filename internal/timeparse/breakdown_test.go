package timeparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBreakdown(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    Breakdown
	}{
		{"zero", 0, Breakdown{}},
		{"seconds only", 59, Breakdown{Seconds: 59}},
		{"divisor is not exceeded", 60, Breakdown{Seconds: 60}},
		{"one minute one second", 61, Breakdown{Minutes: 1, Seconds: 1}},
		{"sixty minutes", 3600, Breakdown{Minutes: 60}},
		{"sixty minutes and change", 3601, Breakdown{Minutes: 60, Seconds: 1}},
		{"hour minute second", 3661, Breakdown{Hours: 1, Minutes: 1, Seconds: 1}},
		{"twenty four hours", 86400, Breakdown{Hours: 24}},
		{"a day and an hour", 90000, Breakdown{Days: 1, Hours: 1}},
		{"thirty days", 2592000, Breakdown{Days: 30}},
		{"a month and a day", 2678400, Breakdown{Months: 1, Days: 1}},
		{"twelve months", 31104000, Breakdown{Months: 12}},
		{"twelve months and a day", 31190400, Breakdown{Months: 12, Days: 1}},
		{"a year and a month", 33696000, Breakdown{Years: 1, Months: 1}},
		{"every unit", 33786061, Breakdown{Years: 1, Months: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{"many years", 311040000 * 2, Breakdown{Years: 20}},

		// Fractional seconds
		{"fraction below a minute", 30.5, Breakdown{Seconds: 30.5}},
		{"fraction past a minute", 60.5, Breakdown{Minutes: 1, Seconds: 0.5}},
		{"fraction pushes past an hour", 3600.5, Breakdown{Hours: 1, Seconds: 0.5}},
		{"fraction with every small unit", 3661.25, Breakdown{Hours: 1, Minutes: 1, Seconds: 1.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBreakdown(tt.seconds)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewBreakdown(%v) mismatch (-want +got):\n%s", tt.seconds, diff)
			}
		})
	}
}

func TestBreakdownTotal(t *testing.T) {
	values := []float64{0, 1, 59, 60, 61, 3599, 3600, 3601, 86400, 90061, 2592000, 2592001,
		31104000, 31536000, 33786061, 123456789, 0.5, 60.5, 3600.25, 90061.75}
	for _, v := range values {
		if got := NewBreakdown(v).Total(); got != v {
			t.Errorf("NewBreakdown(%v).Total() = %v", v, got)
		}
	}
}
