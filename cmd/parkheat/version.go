package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the parkheat version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the parkheat binary.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "parkheat %s\n", Version)
	},
}
