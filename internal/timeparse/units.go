package timeparse

import (
	"fmt"
	"strings"
)

// Unit is a duration unit recognized by the parser.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

// units lists every Unit in ascending order. Clock notation assigns colon
// groups to units by position in this list, rightmost group first.
var units = []Unit{Seconds, Minutes, Hours, Days, Weeks, Months, Years}

var unitNames = map[Unit]string{
	Seconds: "seconds",
	Minutes: "minutes",
	Hours:   "hours",
	Days:    "days",
	Weeks:   "weeks",
	Months:  "months",
	Years:   "years",
}

var unitMultipliers = map[Unit]int64{
	Seconds: 1,
	Minutes: 60,
	Hours:   60 * 60,
	Days:    24 * 60 * 60,
	Weeks:   7 * 24 * 60 * 60,
	Months:  30 * 24 * 60 * 60,
	Years:   365 * 24 * 60 * 60, // not leap-year aware
}

// unitWords maps every accepted unit word and abbreviation to its unit.
var unitWords = map[string]Unit{
	"seconds": Seconds,
	"second":  Seconds,
	"secs":    Seconds,
	"sec":     Seconds,
	"s":       Seconds,
	"minutes": Minutes,
	"minute":  Minutes,
	"mins":    Minutes,
	"min":     Minutes,
	"m":       Minutes,
	"hours":   Hours,
	"hour":    Hours,
	"hrs":     Hours,
	"hr":      Hours,
	"h":       Hours,
	"days":    Days,
	"day":     Days,
	"dy":      Days,
	"d":       Days,
	"weeks":   Weeks,
	"week":    Weeks,
	"w":       Weeks,
	"months":  Months,
	"month":   Months,
	"mos":     Months,
	"mo":      Months,
	"years":   Years,
	"year":    Years,
	"yrs":     Years,
	"yr":      Years,
	"y":       Years,
}

// joinWords are connectors that are dropped silently, even in strict mode.
var joinWords = map[string]bool{
	"and":  true,
	"with": true,
	"plus": true,
}

// String returns the canonical plural name of the unit.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Multiplier returns the number of seconds in one u, or 0 if u is not a
// known unit.
func (u Unit) Multiplier() int64 {
	return unitMultipliers[u]
}

// ParseUnit returns the unit named by word, which may be any singular,
// plural, or abbreviated form accepted in duration text.
func ParseUnit(word string) (Unit, error) {
	if u, ok := unitWords[strings.ToLower(strings.TrimSpace(word))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("unknown unit %q", word)
}

// canonicalUnit returns the unit whose canonical name is name.
func canonicalUnit(name string) (Unit, bool) {
	for u, n := range unitNames {
		if n == name {
			return u, true
		}
	}
	return 0, false
}
