package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/davetashner/parkheat/internal/config"
	"github.com/davetashner/parkheat/internal/output"
)

func TestExport_DefaultFormats(t *testing.T) {
	setupWorkspace(t)

	out, _, err := execute(t, "export")
	require.NoError(t, err)

	base := filepath.Join(config.DefaultOutDir, ExportBase)
	assert.Equal(t, strings.Join([]string{
		base + ".csv", base + ".json", base + ".md", base + ".xlsx",
	}, "\n")+"\n", out)

	f, err := os.Open(base + ".csv")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Zion", rows[1][1])
	assert.Equal(t, "4.5", rows[3][len(rows[3])-1])

	wb, err := excelize.OpenFile(base + ".xlsx")
	require.NoError(t, err)
	defer wb.Close() //nolint:errcheck // test
	name, err := wb.GetCellValue(output.XLSXSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Zion", name)
}

func TestExport_FormatsFlag(t *testing.T) {
	setupWorkspace(t)

	out, _, err := execute(t, "export", "--formats", "html,text")
	require.NoError(t, err)

	base := filepath.Join(config.DefaultOutDir, ExportBase)
	assert.Equal(t, base+".html\n"+base+".txt\n", out)

	data, err := os.ReadFile(base + ".txt")
	require.NoError(t, err)
	assert.Equal(t, wantReport, string(data))
}

func TestExport_FormatsFromConfig(t *testing.T) {
	setupWorkspace(t)
	writeFile(t, ".parkheat.yaml", "outdir: exports\nformats:\n  - json\n")

	out, _, err := execute(t, "export")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("exports", ExportBase+".json")+"\n", out)
}

func TestExport_UnknownFormat(t *testing.T) {
	setupWorkspace(t)

	_, _, err := execute(t, "export", "--formats", "pdf")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "pdf")
}
