package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/parkheat/internal/staticmap"
)

// StaticDir is the subdirectory of the output directory holding images.
const StaticDir = "static"

// mapsCmd writes the static charts.
var mapsCmd = &cobra.Command{
	Use:   "maps [csv]",
	Short: "Write static heat maps and the average score bar chart",
	Long: `Write one longitude/latitude heat map per month plus one for the
average into <outdir>/static/hiking_conditions_<label>.<format>, and a bar
chart of the best average scores into <outdir>/static/average_scores.<format>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaps,
}

func init() {
	addCSVFlag(mapsCmd)
	addOutDirFlag(mapsCmd)
	mapsCmd.Flags().String("image-format", "", "image format: png or svg (default png)")
	mapsCmd.Flags().Int("top-n", 0, "bars in the average score chart (default 15)")
}

func runMaps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	records, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.OutDir, StaticDir)
	opts := staticOptions(cfg)

	paths, err := staticmap.RenderHeatMaps(cmd.Context(), records, dir, opts)
	if errors.Is(err, staticmap.ErrNoData) {
		slog.Warn("no scores to plot; skipping static charts", "csv", cfg.CSV)
		return nil
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}

	bars := filepath.Join(dir, staticmap.AverageBarsFile+"."+opts.Format)
	switch err := staticmap.RenderAverageBars(records, bars, opts); {
	case errors.Is(err, staticmap.ErrNoData):
		slog.Warn("no average scores; skipping bar chart")
	case err != nil:
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	default:
		paths = append(paths, bars)
	}

	if !quiet {
		for _, p := range paths {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}
	slog.Info("static charts written", "dir", dir, "files", len(paths))
	return nil
}
