package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/parkheat/internal/config"
)

const testHeader = "Park,State,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,Latitude,Longitude\n"

// testCSV ranks Zion (8.00), Acadia (6.00), Denali (4.50) by average and
// Denali first by January.
const testCSV = testHeader +
	"Acadia,ME,6,6,6,6,6,6,6,6,6,6,6,6,44.35,-68.21\n" +
	"Zion,UT,8,8,8,8,8,8,8,8,8,8,8,8,37.30,-113.03\n" +
	"Denali,AK,10,4,4,4,4,4,4,4,4,4,4,4,63.33,-150.50\n"

const wantReport = "Average hiking condition scores (high → low):\n" +
	" 1. Zion (UT) – 8.00\n" +
	" 2. Acadia (ME) – 6.00\n" +
	" 3. Denali (AK) – 4.50\n"

// resetFlags restores every flag to its default so tests sharing rootCmd
// do not leak state into each other.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(reset)
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	walk(rootCmd)
	rootCmd.SetArgs(nil)
}

// newTestCmd redirects rootCmd's output into fresh buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	resetFlags()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// setupWorkspace runs the test inside an empty directory holding the
// default dataset, isolated from the user's config and environment.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{config.EnvCSV, config.EnvOutDir, config.EnvMissing, config.EnvAddr} {
		t.Setenv(k, "")
	}
	writeFile(t, config.DefaultCSV, testCSV)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd, out, errOut := newTestCmd()
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode(), ece.Error())
	return ece
}
