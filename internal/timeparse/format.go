package timeparse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Style selects how Output renders a duration.
type Style string

const (
	StyleMicro   Style = "micro"   // 1h1m1s
	StyleShort   Style = "short"   // 1h 1m 1s
	StyleDefault Style = "default" // 1 hr 1 min 1 sec
	StyleLong    Style = "long"    // 1 hour 1 minute 1 second
	StyleChrono  Style = "chrono"  // 1:01:01
)

// Styles lists every output style in documentation order.
var Styles = []Style{StyleMicro, StyleShort, StyleDefault, StyleLong, StyleChrono}

// ParseStyle returns the style named name.
func ParseStyle(name string) (Style, error) {
	if _, ok := styleSpecs[Style(name)]; ok {
		return Style(name), nil
	}
	return "", fmt.Errorf("unknown format %q: must be one of micro, short, default, long, or chrono", name)
}

// outputUnits is the order units are rendered in. The label arrays in
// styleSpec follow the same order.
var outputUnits = [...]Unit{Years, Months, Days, Hours, Minutes, Seconds}

type styleSpec struct {
	labels    [len(outputUnits)]string
	joiner    string
	pluralize bool
	keepZero  bool
	process   func(string) string
}

var styleSpecs = map[Style]styleSpec{
	StyleMicro: {
		labels: [...]string{"y", "m", "d", "h", "m", "s"},
	},
	StyleShort: {
		labels: [...]string{"y", "m", "d", "h", "m", "s"},
		joiner: " ",
	},
	StyleDefault: {
		labels:    [...]string{" yr", " mo", " day", " hr", " min", " sec"},
		joiner:    " ",
		pluralize: true,
	},
	StyleLong: {
		labels:    [...]string{" year", " month", " day", " hour", " minute", " second"},
		joiner:    " ",
		pluralize: true,
	},
	StyleChrono: {
		labels:   [...]string{":", ":", ":", ":", ":", ":"},
		keepZero: true,
		process:  trimChrono,
	},
}

var (
	spaceRun       = regexp.MustCompile(` {2,}`)
	chronoDigit    = regexp.MustCompile(`\b\d\b`)
	chronoLeadZero = regexp.MustCompile(`^(?:00:)+`)
)

// trimChrono pads single digits, then drops leading zero groups, one
// leading zero, and the trailing separator.
func trimChrono(s string) string {
	s = chronoDigit.ReplaceAllStringFunc(s, func(d string) string { return "0" + d })
	s = chronoLeadZero.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "0")
	return strings.TrimSuffix(s, ":")
}

// OutputOptions control how Output renders a duration.
type OutputOptions struct {
	Format      Style // defaults to StyleDefault
	HideSeconds bool
}

// Output renders seconds as text in the requested style. It reports false
// when every unit renders empty, such as zero seconds in a style that
// omits zero units.
func Output(seconds float64, opts OutputOptions) (string, bool) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", false
	}

	spec, ok := styleSpecs[opts.Format]
	if !ok {
		spec = styleSpecs[StyleDefault]
	}

	b := NewBreakdown(seconds)
	places := decimalPlaces(seconds)

	parts := make([]string, 0, len(outputUnits))
	for i, u := range outputUnits {
		if u == Seconds && opts.HideSeconds {
			continue
		}
		var text string
		var zero, one bool
		if u == Seconds {
			text = formatSeconds(b.Seconds, places)
			zero, one = b.Seconds == 0, b.Seconds == 1
		} else {
			v := b.field(u)
			text = strconv.FormatInt(v, 10)
			zero, one = v == 0, v == 1
		}
		parts = append(parts, spec.render(text, spec.labels[i], zero, one))
	}

	result := strings.Join(parts, spec.joiner)
	result = strings.TrimSpace(spaceRun.ReplaceAllString(result, " "))
	if spec.process != nil {
		result = spec.process(result)
	}
	if result == "" {
		return "", false
	}
	return result, true
}

func (s styleSpec) render(text, label string, zero, one bool) string {
	if zero && !s.keepZero {
		return ""
	}
	text += label
	if s.pluralize && !one {
		text += "s"
	}
	return text
}

// field returns the integer value of an output unit other than Seconds.
func (b Breakdown) field(u Unit) int64 {
	switch u {
	case Years:
		return b.Years
	case Months:
		return b.Months
	case Days:
		return b.Days
	case Hours:
		return b.Hours
	case Minutes:
		return b.Minutes
	}
	return 0
}

// formatSeconds prints whole seconds without a decimal point and fractional
// seconds with places decimals.
func formatSeconds(v float64, places int) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}

// decimalPlaces returns the number of digits after the decimal point in the
// shortest representation of v.
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
