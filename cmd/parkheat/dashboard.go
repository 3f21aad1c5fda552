package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/parkheat/internal/output"
	"github.com/davetashner/parkheat/internal/rank"
)

// DashboardFile is the interactive map written into the output directory.
const DashboardFile = "hiking_conditions_interactive.html"

// dashboardCmd writes the interactive map.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [csv]",
	Short: "Write the interactive hiking conditions map",
	Long: `Print the parks ranked by average score, then write a self-contained
HTML dashboard to <outdir>/` + DashboardFile + `.

The page shows one map per month plus an Average view, a minimum-rating
slider and a top list for the selected view. Plotly is loaded from its CDN.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
}

func init() {
	addCSVFlag(dashboardCmd)
	addOutDirFlag(dashboardCmd)
	addDashboardFlags(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	records, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	entries := rank.Rank(records)
	out := cmd.OutOrStdout()
	if !quiet {
		if err := rank.WriteReport(out, entries); err != nil {
			return exitError(ExitInvalidArgs, "parkheat: %v", err)
		}
	}

	path := filepath.Join(cfg.OutDir, DashboardFile)
	r := output.Ranking{Entries: entries, Records: records, RunID: newRunID()}
	formatter := output.NewHTMLFormatter(dashboardOptions(cfg))
	if err := writeOutput(out, path, func(w io.Writer) error { return formatter.Format(r, w) }); err != nil {
		return err
	}

	if !quiet {
		_, _ = fmt.Fprintf(out, "\nSaved interactive dashboard: %s\n", path)
	}
	return nil
}
