package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/parkheat/internal/output"
	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
	"github.com/davetashner/parkheat/internal/report"
)

// Rank-specific flag values.
var (
	rankFormat string
	rankOutput string
	rankTable  bool
	rankBy     string
	rankTop    int
)

// rankCmd prints parks ordered by score.
var rankCmd = &cobra.Command{
	Use:   "rank [csv]",
	Short: "Print parks ranked by average (or monthly) score",
	Long: `Load the dataset and print every park ordered from the highest score to
the lowest, one line per park:

  Average hiking condition scores (high → low):
   1. Zion (UT) – 6.58

Use --by to rank by a single month and --format to write json, markdown,
csv, xlsx or html instead of plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	addCSVFlag(rankCmd)
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "text", "output format: "+formatList())
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "write to this file instead of stdout")
	rankCmd.Flags().BoolVar(&rankTable, "table", false, "print an aligned, colored table (text format only)")
	rankCmd.Flags().StringVar(&rankBy, "by", parks.AverageLabel, "series to rank by: Jan..Dec or Average")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "only show the first N parks (0 = all)")
}

func formatList() string {
	return strings.Join(output.Names(), ", ")
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankTop < 0 {
		return exitError(ExitInvalidArgs, "parkheat: --top must be non-negative, got %d", rankTop)
	}
	if !parks.IsLabel(rankBy) {
		return exitError(ExitInvalidArgs, "parkheat: unknown --by %q (must be one of Jan..Dec or Average)", rankBy)
	}
	formatter, err := output.GetFormatter(rankFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	if rankTable && rankFormat != "text" {
		return exitError(ExitInvalidArgs, "parkheat: --table only applies to --format text")
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	records, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	entries, err := rank.By(records, rankBy)
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	r := output.Ranking{
		Label:   rankBy,
		Entries: rank.Top(entries, rankTop),
		Records: records,
		RunID:   newRunID(),
	}
	if f, ok := formatter.(*output.HTMLFormatter); ok {
		formatter = f.WithOptions(dashboardOptions(cfg))
	}

	return writeOutput(cmd.OutOrStdout(), rankOutput, func(w io.Writer) error {
		if rankTable {
			return report.WriteRanking(w, r.Label, r.Entries)
		}
		return formatter.Format(r, w)
	})
}

// writeOutput runs write against path, or against stdout when path is
// empty. Parent directories are created as needed.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		if err := write(stdout); err != nil {
			return exitError(ExitInvalidArgs, "parkheat: %v", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return exitError(ExitInvalidArgs, "parkheat: cannot create output directory (%v)", err)
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: cannot create output file %q (%v)", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	if err := f.Close(); err != nil {
		return exitError(ExitInvalidArgs, "parkheat: close %s: %v", path, err)
	}
	slog.Info("output written", "path", path)
	return nil
}
