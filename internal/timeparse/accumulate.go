package timeparse

import (
	"strconv"
	"strings"
)

// accumulate sums the seconds described by a cleaned token string. Each
// number is scaled by the unit that follows it, or by defaultUnit when no
// unit follows.
func accumulate(s string, defaultUnit Unit) float64 {
	var total float64
	words := strings.Fields(s)
	for i, word := range words {
		if !numberToken.MatchString(word) {
			continue
		}
		value, err := strconv.ParseFloat(word, 64)
		if err != nil {
			continue
		}

		unit := defaultUnit
		if i+1 < len(words) {
			if u, ok := canonicalUnit(words[i+1]); ok {
				unit = u
			}
		}
		total += value * float64(unit.Multiplier())
	}
	return total
}
