// Package batch converts durations read line by line from files selected by
// glob patterns.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"
)

// Runner orchestrates batch conversion over a file system.
type Runner struct {
	fsys   fs.FS
	output *Output
}

// New creates a new Runner reading files from fsys.
func New(fsys fs.FS, output *Output) *Runner {
	return &Runner{
		fsys:   fsys,
		output: output,
	}
}

// Run converts every non-blank line of every file matched by opts.Patterns.
// Lines that cannot be converted produce warnings. Run fails only if no
// matched file could be read.
func (r *Runner) Run(ctx context.Context, opts *Options, convert Converter) error {
	paths, err := r.expand(opts.Patterns)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		r.output.Warningf("No files match the patterns")
		return nil
	}

	// Process files concurrently with bounded parallelism
	var wg sync.WaitGroup
	var errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(opts.Jobs))

	for _, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := r.convertFile(ctx, path, convert); err != nil {
				errorCount.Add(1)
				r.output.Warningf("%s: %v", path, err)
			}
		}(path)
	}

	wg.Wait()

	if int(errorCount.Load()) == len(paths) {
		return fmt.Errorf("failed to convert all %d files", len(paths))
	}

	return nil
}

// expand resolves patterns to file paths. Paths matched by more than one
// pattern appear once, in the order first matched.
func (r *Runner) expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.Glob(r.fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	return paths, nil
}

func (r *Runner) convertFile(ctx context.Context, path string, convert Converter) error {
	f, err := r.fsys.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var results []Result
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		out, ok, err := convert(line)
		switch {
		case err != nil:
			r.output.Warningf("%s:%d: %v", path, lineNo, err)
		case !ok:
			r.output.Warningf("%s:%d: could not convert %q", path, lineNo, line)
		default:
			results = append(results, Result{Line: lineNo, Input: line, Output: out})
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.output.Results(path, results)
	return nil
}
