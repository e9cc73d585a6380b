package batch

// Options contains all batch conversion parameters.
type Options struct {
	Patterns []string // Glob patterns selecting input files (doublestar syntax)
	Jobs     int      // Maximum files converted concurrently
}

// Converter turns one line of input into its converted form. It returns
// false when the line has no result.
type Converter func(line string) (string, bool, error)
