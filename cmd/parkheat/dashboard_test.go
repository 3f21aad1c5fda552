package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/parkheat/internal/config"
)

func TestDashboard_WritesReportAndHTML(t *testing.T) {
	setupWorkspace(t)

	out, _, err := execute(t, "dashboard")
	require.NoError(t, err)

	path := filepath.Join(config.DefaultOutDir, DashboardFile)
	assert.Equal(t, wantReport+"\nSaved interactive dashboard: "+path+"\n", out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("div#map").Length())
	assert.Equal(t, 3, doc.Find("tr.park-row").Length())
	assert.Equal(t, "Zion", strings.TrimSpace(doc.Find("tr.park-row").First().Find("td").Eq(1).Text()))

	runID, ok := doc.Find(`meta[name="parkheat-run"]`).Attr("content")
	assert.True(t, ok)
	assert.NotEmpty(t, runID)
}

func TestDashboard_OutDirFlag(t *testing.T) {
	dir := setupWorkspace(t)
	outdir := filepath.Join(dir, "site")

	_, _, err := execute(t, "dashboard", "--outdir", outdir, "--quiet")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outdir, DashboardFile))
}

func TestDashboard_QuietSuppressesReport(t *testing.T) {
	setupWorkspace(t)

	out, _, err := execute(t, "dashboard", "-q")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDashboard_HeaderOnlyCSV(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "empty.csv", testHeader)

	out, _, err := execute(t, "dashboard", "empty.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Average hiking condition scores (high → low):\n\nSaved"))

	data, err := os.ReadFile(filepath.Join(config.DefaultOutDir, DashboardFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "No parks found.")
}

func TestDashboard_InvalidRatingStep(t *testing.T) {
	setupWorkspace(t)

	_, _, err := execute(t, "dashboard", "--rating-step", "20")
	requireExitCode(t, err, ExitInvalidArgs)
	assert.NoFileExists(t, filepath.Join(config.DefaultOutDir, DashboardFile))
}

func TestDashboard_SchemaErrorWritesNothing(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "bad.csv", "Name,State\nZion,UT\n")

	out, _, err := execute(t, "dashboard", "bad.csv")
	requireExitCode(t, err, ExitSchema)
	assert.Empty(t, out)
	assert.NoDirExists(t, config.DefaultOutDir)
}

func TestDashboard_InfiniteScoreRejected(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, "inf.csv", testHeader+"Zion,UT,Inf,8,8,8,8,8,8,8,8,8,8,8,37.30,-113.03\n")

	_, _, err := execute(t, "dashboard", "inf.csv")
	ece := requireExitCode(t, err, ExitData)
	assert.Contains(t, ece.Error(), "Jan")
	assert.NoFileExists(t, filepath.Join(config.DefaultOutDir, DashboardFile))
}
