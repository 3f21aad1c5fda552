package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/parkheat/internal/output"
	"github.com/davetashner/parkheat/internal/rank"
)

// ExportBase is the file name, without extension, of every export.
const ExportBase = "park_rankings"

// exportCmd writes the ranking in several formats at once.
var exportCmd = &cobra.Command{
	Use:   "export [csv]",
	Short: "Write the ranking in every configured format",
	Long: `Write the average-score ranking to <outdir>/` + ExportBase + `.<ext> once per
format. The formats default to csv, json, markdown and xlsx and can be set
with --formats or the formats key of the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	addCSVFlag(exportCmd)
	addOutDirFlag(exportCmd)
	exportCmd.Flags().StringSlice("formats", nil, "comma-separated formats to write (default csv,json,markdown,xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	records, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	r := output.Ranking{Entries: rank.Rank(records), Records: records, RunID: newRunID()}
	for _, name := range cfg.Formats {
		formatter, err := output.GetFormatter(name)
		if err != nil {
			return exitError(ExitInvalidArgs, "parkheat: %v", err)
		}
		if f, ok := formatter.(*output.HTMLFormatter); ok {
			formatter = f.WithOptions(dashboardOptions(cfg))
		}

		path := filepath.Join(cfg.OutDir, ExportBase+"."+formatter.Extension())
		if err := writeOutput(cmd.OutOrStdout(), path, func(w io.Writer) error { return formatter.Format(r, w) }); err != nil {
			return err
		}
		if !quiet {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}
	return nil
}
