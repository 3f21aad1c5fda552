package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	parkheatlog "github.com/davetashner/parkheat/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
)

// rootCmd is the base command for parkheat.
var rootCmd = &cobra.Command{
	Use:   "parkheat",
	Short: "Rank and map hiking conditions in US national parks",
	Long: `Parkheat reads a CSV of monthly hiking-condition scores for US national
parks, ranks the parks by their average score and renders an interactive
map dashboard, static heat maps and tabular exports.

The CSV needs Park, State, Latitude, Longitude and one column per month
(Jan..Dec).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		parkheatlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .parkheat.yaml or .parkheat.toml in the working directory)")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
