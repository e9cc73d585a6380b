package batch

import (
	"fmt"
	"io"
	"sync"

	"github.com/mgutz/ansi"
)

// Result is the conversion of a single input line.
type Result struct {
	Line   int
	Input  string
	Output string
}

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
	}
}

// Results writes the converted lines of one file in the format
// path:line: result. A file's results are never interleaved with another's.
func (o *Output) Results(path string, results []Result) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, r := range results {
		fmt.Fprintf(o.stdout, "%s:%s: %s\n",
			o.cyan(path),
			o.green(fmt.Sprint(r.Line)),
			o.white(r.Output))
	}
}

// Value writes a single converted value with no location prefix.
func (o *Output) Value(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stdout, s)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}
