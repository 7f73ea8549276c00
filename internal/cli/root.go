// Package cli provides the command-line interface for the concepts tour.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables read as flag defaults, after the dotenv file.
const (
	envSections = "CONCEPTS_SECTIONS"
	envLogLevel = "CONCEPTS_LOG_LEVEL"
)

// ErrBadLogLevel is returned for a --log-level slog cannot parse.
var ErrBadLogLevel = errors.New("bad log level")

type options struct {
	sections []string
	logLevel string
	envFile  string
}

// NewRootCommand builds the command tree writing demo output to stdout and
// logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "concepts",
		Short: "Run the language concepts tour.",
		Long: `Runs each demo module in order and prints what it shows. ` +
			`Use --section to run only some of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(stderr, opts.logLevel)
			if err != nil {
				return err
			}
			return runSections(stdout, logger, opts.sections)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringSliceVarP(&opts.sections, "section", "s", nil,
		"section to run, repeatable or comma separated (default all)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with CONCEPTS_* defaults; missing file is ignored")

	root.AddCommand(newListCommand(stdout))
	return root
}

func newListCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available sections.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range Sections {
				fmt.Fprintf(stdout, "%-12s %s\n", s.Name, s.Title)
			}
		},
	}
}

// loadEnv reads the dotenv file into the process environment and uses
// CONCEPTS_* variables for flags the user did not set.
func loadEnv(cmd *cobra.Command, opts *options) error {
	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", opts.envFile, err)
	}
	flags := cmd.Flags()
	if v, ok := os.LookupEnv(envSections); ok && !flags.Changed("section") {
		opts.sections = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && !flags.Changed("log-level") {
		opts.logLevel = v
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadLogLevel, level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func runSections(w io.Writer, logger *slog.Logger, names []string) error {
	selected, err := Select(names)
	if err != nil {
		logger.Warn("section selection failed", "names", names, "err", err)
		return err
	}
	for _, s := range selected {
		logger.Debug("section start", "name", s.Name)
		s.Run(w)
		logger.Debug("section done", "name", s.Name)
	}
	return nil
}

// Execute runs the root command against the process streams and exits with
// status 1 on error.
func Execute() {
	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
