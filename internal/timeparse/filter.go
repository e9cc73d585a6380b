package timeparse

import (
	"regexp"
	"strings"
)

var (
	// numberPattern matches integer and decimal literals such as "3", "1.5",
	// and ".25".
	numberPattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)
	numberToken   = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)
	clockPattern  = regexp.MustCompile(`[0-9]*\.?[0-9]+(?::[0-9]*\.?[0-9]+)+`)
)

// cleanup reduces s to a space-separated list of numbers and canonical unit
// names. It reports false if s uses clock notation with more groups than
// there are units. In strict mode an unknown word yields an
// *InvalidWordError.
func cleanup(s string, normalizer NumberNormalizer, strict bool) (string, bool, error) {
	s = normalizer.Normalize(strings.ToLower(s))

	s, ok := expandClock(s)
	if !ok {
		return "", false, nil
	}

	s = numberPattern.ReplaceAllString(s, " $0 ")
	s = strings.Join(strings.Fields(s), " ")

	s, err := filterWords(s, strict)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// expandClock rewrites clock notation like "3:41:59" as
// "3 hours 41 minutes 59 seconds". Strings without clock notation are
// returned unchanged.
func expandClock(s string) (string, bool) {
	compact := strings.ReplaceAll(s, " ", "")
	if !clockPattern.MatchString(compact) {
		return s, true
	}

	groups := strings.Split(compact, ":")
	if len(groups) > len(units) {
		return "", false
	}

	parts := make([]string, 0, len(groups))
	for i, group := range groups {
		// The rightmost group is seconds.
		parts = append(parts, group+" "+units[len(groups)-1-i].String())
	}
	return strings.Join(parts, " "), true
}

// filterWords keeps numbers, maps unit words to canonical unit names, and
// drops everything else.
func filterWords(s string, strict bool) (string, error) {
	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if numberToken.MatchString(word) {
			kept = append(kept, word)
			continue
		}

		stripped := strings.TrimPrefix(word, ",")
		stripped = strings.TrimSuffix(stripped, ",")
		if u, ok := unitWords[stripped]; ok {
			kept = append(kept, u.String())
			continue
		}

		if strict && !joinWords[stripped] {
			return "", &InvalidWordError{Word: word}
		}
	}
	return strings.Join(kept, " "), nil
}
