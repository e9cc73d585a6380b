package cmd

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/chronic/internal/batch"
	"github.com/jparise/chronic/internal/config"
	"github.com/jparise/chronic/internal/timeparse"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var version = "dev"

// options holds flag values shared by all commands.
type options struct {
	configPath  string
	color       colorMode
	defaultUnit string
	strict      bool
	format      string
	hideSeconds bool
	files       []string
	jobs        int
}

func newRootCmd() *cobra.Command {
	opts := &options{color: colorAuto}

	rootCmd := &cobra.Command{
		Use:   "chronic",
		Short: "Convert between natural-language durations and seconds",
		Long: `chronic converts elapsed-time descriptions such as "4 hours and 30 minutes",
"3:41:59", or "2.5 days" to a number of seconds, and renders a
number of seconds back as text.

Months are 30 days. Parsed years are 365 days.

Defaults for most flags can be set with CHRONIC_* environment variables or a
configuration file given with --config; run "chronic env" for the list.

Examples:
  chronic parse 1 hour 30 minutes
  chronic parse --default-unit minutes 90
  chronic parse --strict "2 days and 3 hours"
  chronic output 3661
  chronic output --format chrono 3661
  chronic parse -f "logs/**/*.txt"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.applyConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().Var(&opts.color, "color",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"read defaults from a YAML, JSON, TOML, or .env file")

	rootCmd.AddCommand(newParseCmd(opts), newOutputCmd(opts), newEnvCmd())
	return rootCmd
}

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [<text>...]",
		Short: "Convert a duration description to seconds",
		Long: `Convert a duration description to a number of seconds.

All arguments are joined into a single description. Numbers without a unit
use --default-unit. Words that are not numbers or units are ignored unless
--strict is given.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.files) == 0 {
				return fmt.Errorf("requires a duration or --file")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := timeparse.ParseUnit(opts.defaultUnit); err != nil {
				return fmt.Errorf("invalid --default-unit: %w", err)
			}
			return opts.validateFiles()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.defaultUnit, "default-unit", "u", "seconds",
		"unit for numbers without one")
	cmd.Flags().BoolVar(&opts.strict, "strict", false,
		"fail on words that are not numbers or units")
	opts.addFileFlags(cmd)
	return cmd
}

func newOutputCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "output [<seconds>...]",
		Short: "Render seconds as a duration description",
		Long: `Render each number of seconds as a duration description.

Formats:
  micro    1h1m1s
  short    1h 1m 1s
  default  1 hr 1 min 1 sec
  long     1 hour 1 minute 1 second
  chrono   1:01:01`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.files) == 0 {
				return fmt.Errorf("requires a number of seconds or --file")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := timeparse.ParseStyle(opts.format); err != nil {
				return fmt.Errorf("invalid --format: %w", err)
			}
			return opts.validateFiles()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutput(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "F", string(timeparse.StyleDefault),
		"output format: micro, short, default, long, chrono")
	cmd.Flags().BoolVar(&opts.hideSeconds, "hide-seconds", false,
		"omit seconds from the output")
	opts.addFileFlags(cmd)
	return cmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the environment variables that set defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := config.Usage()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return nil
		},
	}
}

func (o *options) addFileFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.files, "file", "f", []string{},
		"convert each line of files matching a glob pattern (can be specified multiple times)")
	cmd.Flags().IntVarP(&o.jobs, "jobs", "j", 10,
		"maximum files converted concurrently")
}

// applyConfig fills flags the user did not set from the configuration.
func (o *options) applyConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("color") {
		if err := o.color.Set(cfg.Color); err != nil {
			return err
		}
	}
	if !flags.Changed("default-unit") {
		o.defaultUnit = cfg.DefaultUnit
	}
	if !flags.Changed("strict") {
		o.strict = cfg.Strict
	}
	if !flags.Changed("format") {
		o.format = cfg.Format
	}
	if !flags.Changed("hide-seconds") {
		o.hideSeconds = cfg.HideSeconds
	}
	if !flags.Changed("jobs") {
		o.jobs = cfg.Jobs
	}
	return nil
}

func (o *options) validateFiles() error {
	if o.jobs < 1 || o.jobs > 100 {
		return fmt.Errorf("--jobs must be between 1 and 100, got %d", o.jobs)
	}
	for i, pattern := range o.files {
		if filepath.IsAbs(pattern) {
			return fmt.Errorf("--file pattern %q must be relative to the current directory", pattern)
		}
		o.files[i] = filepath.ToSlash(filepath.Clean(pattern))
	}
	return nil
}

func (o *options) colorize() bool {
	switch o.color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

// formatSeconds prints seconds without exponents or trailing zeros.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseSeconds parses a non-negative number of seconds.
func parseSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty seconds value")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("seconds cannot be negative")
	}
	return v, nil
}

func runParse(cmd *cobra.Command, args []string, opts *options) error {
	unit, err := timeparse.ParseUnit(opts.defaultUnit)
	if err != nil {
		return err
	}
	parseOpts := timeparse.ParseOptions{
		DefaultUnit: unit,
		Strict:      opts.strict,
	}

	convert := func(text string) (string, bool, error) {
		seconds, ok, err := timeparse.Parse(text, parseOpts)
		if err != nil || !ok {
			return "", false, err
		}
		return formatSeconds(seconds), true, nil
	}

	output := batch.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.colorize())

	if len(args) > 0 {
		text := strings.Join(args, " ")
		result, ok, err := convert(text)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", text, err)
		}
		if !ok {
			return fmt.Errorf("could not parse duration %q", text)
		}
		output.Value(result)
	}

	return runFiles(cmd, opts, output, convert)
}

func runOutput(cmd *cobra.Command, args []string, opts *options) error {
	outputOpts := timeparse.OutputOptions{
		Format:      timeparse.Style(opts.format),
		HideSeconds: opts.hideSeconds,
	}

	convert := func(text string) (string, bool, error) {
		seconds, err := parseSeconds(text)
		if err != nil {
			return "", false, err
		}
		result, ok := timeparse.Output(seconds, outputOpts)
		return result, ok, nil
	}

	output := batch.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.colorize())

	for _, arg := range args {
		result, ok, err := convert(arg)
		if err != nil {
			return fmt.Errorf("invalid seconds %q: %w", arg, err)
		}
		if !ok {
			output.Warningf("%s seconds has no %s representation", arg, opts.format)
			continue
		}
		output.Value(result)
	}

	return runFiles(cmd, opts, output, convert)
}

func runFiles(cmd *cobra.Command, opts *options, output *batch.Output, convert batch.Converter) error {
	if len(opts.files) == 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := batch.New(os.DirFS("."), output)
	return r.Run(ctx, &batch.Options{
		Patterns: opts.files,
		Jobs:     opts.jobs,
	}, convert)
}

func Execute() error {
	return newRootCmd().Execute()
}
