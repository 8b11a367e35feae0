package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/followdiff/internal/config"
	"github.com/dbsmedya/followdiff/internal/console"
	"github.com/dbsmedya/followdiff/internal/differ"
	"github.com/dbsmedya/followdiff/internal/loader"
	"github.com/dbsmedya/followdiff/internal/logger"
	"github.com/dbsmedya/followdiff/internal/report"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "followdiff.yaml"

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	delimiter string
	noHeader  bool
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "followdiff [LEFT.csv RIGHT.csv]",
	Short: "Compare two follower CSV exports",
	Long: `followdiff compares two CSV files listing followers (user id, user name)
and reports whether the follower count increased, decreased or stayed the same,
followed by the records that differ.

The left file is the older export, the right file the newer one. When no files
are given on the command line, both paths are read from standard input.

Records are matched by user id only; a renamed follower is not a difference.

Example:
  followdiff followers-2024-01.csv followers-2024-02.csv`,
	Version:      Version,
	Args:         validateCompareArgs,
	RunE:         runCompare,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Input overrides
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "",
		"Override the CSV field delimiter")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false,
		"Treat the first row as data instead of a header")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "",
		"Override colored output (auto, always, never)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Delimiter: delimiter,
		NoHeader:  noHeader,
		Color:     colorMode,
	}
}

// setup loads and validates configuration and builds the logger.
// A config file named explicitly with --config must exist.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	configFile := GetConfigFile()

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOptional(configFile)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

func validateCompareArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected two files (LEFT RIGHT) or none to be prompted, got %d argument(s)", len(args))
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var leftPath, rightPath string
	if len(args) == 2 {
		leftPath, rightPath = args[0], args[1]
	} else {
		prompt := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if leftPath, rightPath, err = prompt.PromptPaths(); err != nil {
			return err
		}
	}

	// Both files must load before anything is reported
	l := loader.New(cfg.Input, log)
	left, err := l.Load(leftPath)
	if err != nil {
		return fmt.Errorf("failed to load left file: %w", err)
	}
	right, err := l.Load(rightPath)
	if err != nil {
		return fmt.Errorf("failed to load right file: %w", err)
	}

	result := differ.Diff(left, right)
	log.Infow("Compared follower lists",
		"left", leftPath,
		"right", rightPath,
		"left_rows", result.LeftCount,
		"right_rows", result.RightCount,
		"status", result.Status())

	out := cmd.OutOrStdout()
	reporter := report.New(out, report.WithColor(report.ColorEnabled(cfg.Output.Color, out)))
	return reporter.Report(result)
}
