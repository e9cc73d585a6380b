package timeparse

import "fmt"

// InvalidWordError is returned by Parse in strict mode when the input
// contains a word that is neither a number, a unit, nor a join word.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("an invalid word %q was used in the string to be parsed", e.Word)
}
