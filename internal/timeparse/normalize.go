package timeparse

import "github.com/jparise/chronic/internal/numerize"

// NumberNormalizer rewrites spelled-out numbers in lowercase text as digit
// tokens, separated by whitespace from the surrounding words. All other
// text must be left untouched.
type NumberNormalizer interface {
	Normalize(s string) string
}

// NormalizerFunc adapts an ordinary function to a NumberNormalizer.
type NormalizerFunc func(string) string

// Normalize calls f(s).
func (f NormalizerFunc) Normalize(s string) string {
	return f(s)
}

// NopNormalizer leaves its input unchanged. Use it to accept digits only.
var NopNormalizer = NormalizerFunc(func(s string) string { return s })

var defaultNormalizer NumberNormalizer = numerize.English{}
