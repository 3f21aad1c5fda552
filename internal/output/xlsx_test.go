package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, r Ranking) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewXLSXFormatter().Format(r, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestXLSXFormat(t *testing.T) {
	f := openWorkbook(t, testRanking())

	assert.Equal(t, []string{XLSXSheet}, f.GetSheetList())

	rows, err := f.GetRows(XLSXSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, tableHeader(), rows[0])

	name, err := f.GetCellValue(XLSXSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Zion", name)

	jan, err := f.GetCellValue(XLSXSheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "2", jan)
}

func TestXLSXFormat_MissingValueIsBlank(t *testing.T) {
	f := openWorkbook(t, testRanking())

	// Denali, Nov.
	nov, err := f.GetCellValue(XLSXSheet, "P4")
	require.NoError(t, err)
	assert.Empty(t, nov)

	dec, err := f.GetCellValue(XLSXSheet, "Q4")
	require.NoError(t, err)
	assert.Equal(t, "1", dec)
}

func TestXLSXFormat_HeaderIsBold(t *testing.T) {
	f := openWorkbook(t, testRanking())

	id, err := f.GetCellStyle(XLSXSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestXLSXFormat_Empty(t *testing.T) {
	f := openWorkbook(t, Ranking{})

	rows, err := f.GetRows(XLSXSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
