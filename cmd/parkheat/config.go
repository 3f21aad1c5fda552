package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/parkheat/internal/config"
)

// Config command flags.
var (
	configTOML  bool
	configForce bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and create parkheat configuration",
	Long: `View and create parkheat configuration.

Parkheat reads .parkheat.yaml (or .parkheat.toml) from the working
directory. A global config at ~/.config/parkheat/config.yaml provides
defaults. PARKHEAT_CSV, PARKHEAT_OUTDIR, PARKHEAT_MISSING and PARKHEAT_ADDR
(also read from .env) override the files, and flags override everything.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, config files and the
environment. With a key, print only that value.

Examples:
  parkheat config show
  parkheat config show outdir
  parkheat config show --toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigShow,
}

// configInitCmd writes a starter config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configShowCmd.Flags().BoolVar(&configTOML, "toml", false, "print as TOML instead of YAML")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		val, err := config.GetValue(cfg, args[0])
		if err != nil {
			return exitError(ExitInvalidArgs, "parkheat: %v", err)
		}
		switch v := val.(type) {
		case map[string]any, []any:
			data, err := yaml.Marshal(v)
			if err != nil {
				return exitError(ExitInvalidArgs, "parkheat: %v", err)
			}
			_, _ = fmt.Fprint(out, string(data))
		default:
			_, _ = fmt.Fprintln(out, v)
		}
		return nil
	}

	if configTOML {
		err = config.WriteTOML(out, cfg)
	} else {
		err = config.Write(out, cfg)
	}
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.FileName
	if configPath != "" {
		path = configPath
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return exitError(ExitInvalidArgs, "parkheat: %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exitError(ExitInvalidArgs, "parkheat: %v", err)
	}

	f, err := os.Create(path) //nolint:gosec // user-provided config path
	if err != nil {
		return exitError(ExitInvalidArgs, "parkheat: cannot create %s (%v)", path, err)
	}
	write := config.Write
	if filepath.Ext(path) == ".toml" {
		write = config.WriteTOML
	}
	if err := write(f, config.Defaults()); err != nil {
		_ = f.Close()
		return exitError(ExitInvalidArgs, "parkheat: write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return exitError(ExitInvalidArgs, "parkheat: close %s: %v", path, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
