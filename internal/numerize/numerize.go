// Package numerize rewrites English number words as digits, so that
// "twenty-one days and a couple of hours" becomes "21 days and 2 hours".
package numerize

import (
	"strconv"
	"strings"
)

var smallWords = map[string]int64{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
	"couple":    2,
}

var magnitudeWords = map[string]int64{
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
}

// English implements an English number-word normalizer. The zero value is
// ready to use and safe for concurrent use.
type English struct{}

// Normalize rewrites every run of number words in s as a single decimal
// integer. Words are expected in lowercase; other words pass through
// unchanged, and runs of whitespace become single spaces.
func (English) Normalize(s string) string {
	tokens := splitHyphens(strings.Fields(s))
	out := make([]string, 0, len(tokens))

	var n number
	flush := func() {
		if n.started {
			out = append(out, strconv.FormatInt(n.value(), 10))
			n = number{}
		}
	}

	for i := 0; i < len(tokens); i++ {
		word, punct := splitPunct(tokens[i])
		next := ""
		if i+1 < len(tokens) {
			next, _ = splitPunct(tokens[i+1])
		}

		switch {
		case (word == "a" || word == "an") && punct == "" && next != "" && !n.started:
			switch {
			case isNumberWord(next):
				// "a hundred", "a couple": the article is part of the number.
				continue
			case next == "half":
				// "an hour and a half" has no whole-number reading.
				out = append(out, tokens[i])
				continue
			}
			n.add(1)
		case word == "and" && punct == "" && n.started && n.acceptsAnd() && isSmallWord(next):
			continue
		case word == "of" && (n.lastWord == "couple" || n.lastWord == "dozen"):
			// "a couple of hours"
			flush()
			continue
		case isNumberWord(word):
			if !n.accepts(word) {
				flush()
			}
			n.addWord(word)
		default:
			flush()
			out = append(out, tokens[i])
			continue
		}

		if punct != "" {
			flush()
			out[len(out)-1] += punct
		}
	}
	flush()

	return strings.Join(out, " ")
}

// number accumulates a run of number words. group holds the part below the
// most recent magnitude word.
type number struct {
	started  bool
	total    int64
	group    int64
	lastWord string
}

func (n *number) value() int64 {
	return n.total + n.group
}

func (n *number) add(v int64) {
	n.started = true
	n.group += v
}

// accepts reports whether word can extend the current run.
func (n *number) accepts(word string) bool {
	if !n.started {
		return true
	}
	if _, ok := magnitudeWords[word]; ok {
		return n.group > 0
	}
	switch word {
	case "hundred":
		return n.group > 0 && n.group < 100
	case "dozen":
		return n.group > 0 && n.group < 100
	}

	v := smallWords[word]
	rest := n.group % 100
	switch {
	case rest == 0:
		return true
	case rest >= 20 && rest%10 == 0:
		return v < 10
	}
	return false
}

func (n *number) addWord(word string) {
	n.started = true
	n.lastWord = word
	if m, ok := magnitudeWords[word]; ok {
		if n.group == 0 {
			n.group = 1
		}
		n.total += n.group * m
		n.group = 0
		return
	}
	switch word {
	case "hundred":
		if n.group == 0 {
			n.group = 1
		}
		n.group *= 100
	case "dozen":
		if n.group == 0 {
			n.group = 1
		}
		n.group *= 12
	default:
		n.group += smallWords[word]
	}
}

// acceptsAnd reports whether an "and" may continue the run, as in
// "one hundred and five".
func (n *number) acceptsAnd() bool {
	return n.lastWord == "hundred" || magnitudeWords[n.lastWord] > 0
}

func isNumberWord(word string) bool {
	if _, ok := smallWords[word]; ok {
		return true
	}
	if _, ok := magnitudeWords[word]; ok {
		return true
	}
	return word == "hundred" || word == "dozen"
}

func isSmallWord(word string) bool {
	v, ok := smallWords[word]
	return ok && word != "couple" && v > 0
}

// splitHyphens splits hyphenated number words such as "twenty-one".
func splitHyphens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, "-")
		if len(parts) == 1 {
			out = append(out, tok)
			continue
		}
		all := true
		for i, p := range parts {
			word := p
			if i == len(parts)-1 {
				word, _ = splitPunct(p)
			}
			if !isNumberWord(word) {
				all = false
				break
			}
		}
		if all {
			out = append(out, parts...)
		} else {
			out = append(out, tok)
		}
	}
	return out
}

// splitPunct separates trailing punctuation from a word.
func splitPunct(tok string) (word, punct string) {
	word = strings.TrimRight(tok, ",.;:!?")
	return word, tok[len(word):]
}
