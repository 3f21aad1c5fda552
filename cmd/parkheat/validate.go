package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// validateCmd checks a dataset without producing output.
var validateCmd = &cobra.Command{
	Use:   "validate [csv]",
	Short: "Check that a CSV has the required columns and numeric scores",
	Long: `Load the dataset and report whether it is usable.

Exit status is 0 when valid, 2 when a required column is missing and 3
when a cell cannot be read as a number (or a score is missing under
--missing error).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	addCSVFlag(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	records, err := loadDataset(cfg)
	if err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) && ece.code != ExitInvalidArgs {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "invalid: %s\n", strings.TrimPrefix(ece.msg, "parkheat: "))
			return exitError(ece.code, "")
		}
		return err
	}

	missing := 0
	for _, r := range records {
		if n := r.Missing(); n > 0 {
			slog.Debug("missing monthly values", "park", r.Name, "count", n)
			missing += n
		}
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d parks\n", len(records))
	if missing > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "missing monthly values: %d (skipped when averaging)\n", missing)
	}
	return nil
}
