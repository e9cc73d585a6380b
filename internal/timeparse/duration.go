// Package timeparse converts between natural-language durations such as
// "4 hours and 30 minutes" or "3:41:59" and a number of seconds.
//
// Months are always 30 days. Parsed years are 365 days, while Output groups
// twelve 30-day months into a year, so text produced by Output only parses
// back to the same value below one year.
package timeparse

// ParseOptions control how Parse interprets text.
type ParseOptions struct {
	// DefaultUnit applies to numbers with no unit word after them.
	DefaultUnit Unit

	// Strict makes Parse fail with an *InvalidWordError on words that are
	// not numbers, units, or join words ("and", "with", "plus"). Otherwise
	// such words are ignored.
	Strict bool

	// Normalizer rewrites spelled-out numbers as digits. Nil selects the
	// English normalizer; use NopNormalizer to disable the rewrite.
	Normalizer NumberNormalizer
}

// Parse returns the number of seconds described by s. It reports false if
// nothing in s could be parsed or the total is zero. The returned error is
// always an *InvalidWordError and only occurs when opts.Strict is set.
//
// Examples: "1 hour 30 minutes" (5400), "3:41:59" (13319), "1.5 days"
// (129600), "two weeks and a day" (1296000).
func Parse(s string, opts ParseOptions) (float64, bool, error) {
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = defaultNormalizer
	}

	cleaned, ok, err := cleanup(s, normalizer, opts.Strict)
	if err != nil || !ok {
		return 0, false, err
	}

	total := accumulate(cleaned, opts.DefaultUnit)
	if total == 0 {
		return 0, false, nil
	}
	return total, true, nil
}
