package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/parkheat/internal/config"
	"github.com/davetashner/parkheat/internal/dashboard"
	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/staticmap"
)

// Flags that map onto config fields. Commands register the subset they
// use; flagOverlay only reads flags that were explicitly set.
func addCSVFlag(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "path to the CSV dataset (default "+config.DefaultCSV+")")
	cmd.Flags().String("delimiter", "", "CSV field delimiter (default \",\")")
	cmd.Flags().String("missing", "", "missing-value policy: skip or error (default skip)")
}

func addOutDirFlag(cmd *cobra.Command) {
	cmd.Flags().String("outdir", "", "output directory (default "+config.DefaultOutDir+")")
}

func addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().Int("top-n", 0, "parks listed in each top list (default 15)")
	cmd.Flags().Float64("rating-step", 0, "minimum-rating slider increment (default 0.5)")
	cmd.Flags().Float64("rating-max", 0, "last minimum-rating slider value (default 10)")
}

// flagOverlay collects explicitly set flags into a Config layer. A
// positional CSV argument overrides --csv.
func flagOverlay(fs *pflag.FlagSet, args []string) *config.Config {
	over := &config.Config{}
	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	str("csv", &over.CSV)
	str("delimiter", &over.Delimiter)
	str("missing", &over.Missing)
	str("outdir", &over.OutDir)
	str("image-format", &over.ImageFormat)
	str("addr", &over.Addr)
	if fs.Changed("top-n") {
		over.TopN, _ = fs.GetInt("top-n")
	}
	if fs.Changed("rating-step") {
		over.RatingStep, _ = fs.GetFloat64("rating-step")
	}
	if fs.Changed("rating-max") {
		over.RatingMax, _ = fs.GetFloat64("rating-max")
	}
	if fs.Changed("formats") {
		over.Formats, _ = fs.GetStringSlice("formats")
	}
	if len(args) > 0 {
		over.CSV = args[0]
	}
	return over
}

// resolveConfig builds the effective configuration for cmd: defaults, the
// global file, the local (or --config) file, .env plus PARKHEAT_*
// variables, then flags. The result is validated.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if err := config.LoadDotEnv("."); err != nil {
		return nil, exitError(ExitInvalidArgs, "parkheat: cannot read .env (%v)", err)
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "parkheat: cannot read global config (%v)", err)
	}

	var local *config.Config
	if configPath != "" {
		local, err = config.LoadFile(configPath)
	} else {
		local, err = config.Load(".")
	}
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "parkheat: cannot read config (%v)", err)
	}

	cfg := config.Resolve(global, local, config.FromEnv(os.Getenv), flagOverlay(cmd.Flags(), args))
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	slog.Debug("config resolved", "csv", cfg.CSV, "outdir", cfg.OutDir, "missing", cfg.Missing)
	return cfg, nil
}

// loadDataset reads cfg.CSV and maps load failures to exit codes.
func loadDataset(cfg *config.Config) ([]parks.Record, error) {
	policy, err := parks.ParseMissingPolicy(cfg.Missing)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	records, err := parks.LoadFile(cfg.CSV, parks.Options{
		Delimiter: cfg.DelimiterRune(),
		Missing:   policy,
	})
	if err != nil {
		return nil, exitError(loadExitCode(err), "parkheat: %v", err)
	}
	return records, nil
}

func dashboardOptions(cfg *config.Config) dashboard.Options {
	return dashboard.Options{
		RatingStep: cfg.RatingStep,
		RatingMax:  cfg.RatingMax,
		TopN:       cfg.TopN,
	}
}

func staticOptions(cfg *config.Config) staticmap.Options {
	return staticmap.Options{
		Format:    strings.ToLower(cfg.ImageFormat),
		TopN:      cfg.TopN,
		RatingMax: cfg.RatingMax,
	}
}

// newRunID returns a fresh identifier stamped into generated artifacts.
func newRunID() string {
	return uuid.NewString()
}
