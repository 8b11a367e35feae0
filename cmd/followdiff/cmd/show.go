package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/followdiff/internal/loader"
	"github.com/dbsmedya/followdiff/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show FILE.csv",
	Short: "Print the records loaded from one file",
	Long: `Show loads a single follower CSV file the same way the comparison does
and prints the row count, the number of distinct user ids and the records.
Rows repeating an earlier user id are counted as duplicates and skipped;
the first occurrence is kept.

Example:
  followdiff show followers.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rows, err := loader.New(cfg.Input, log).Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	out := cmd.OutOrStdout()
	reporter := report.New(out, report.WithColor(report.ColorEnabled(cfg.Output.Color, out)))
	return reporter.Records(args[0], rows)
}
