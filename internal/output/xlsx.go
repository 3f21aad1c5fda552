package output

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/davetashner/parkheat/internal/rank"
)

func init() {
	RegisterFormatter(NewXLSXFormatter())
}

// XLSXSheet is the worksheet name used for the ranking.
const XLSXSheet = "Ranking"

// XLSXFormatter writes the ranking as an Excel workbook with a single
// sheet. Scores are numeric cells; missing values are left blank.
type XLSXFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*XLSXFormatter)(nil)

// NewXLSXFormatter returns a new XLSXFormatter.
func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Name returns the format name.
func (x *XLSXFormatter) Name() string {
	return "xlsx"
}

// Extension returns the file extension.
func (x *XLSXFormatter) Extension() string {
	return "xlsx"
}

// Format writes the workbook to w.
func (x *XLSXFormatter) Format(r Ranking, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := tableHeader()
	for i, h := range header {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(XLSXSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetColWidth(XLSXSheet, "B", "B", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(XLSXSheet, "C", lastCol, 10); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	for i, e := range r.Entries {
		for col, v := range xlsxRow(e) {
			if v == nil {
				continue
			}
			if err := setCell(f, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(XLSXSheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

// xlsxRow renders e in tableHeader order; nil marks a blank cell.
func xlsxRow(e rank.Entry) []any {
	rec := e.Record
	row := []any{e.Position, rec.Name, rec.State, rec.Latitude, rec.Longitude}
	for _, s := range rec.Scores {
		row = append(row, cellNumber(s))
	}
	return append(row, cellNumber(rec.AverageScore), cellNumber(e.Score))
}

func cellNumber(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
