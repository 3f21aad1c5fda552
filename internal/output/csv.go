package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/davetashner/parkheat/internal/rank"
)

func init() {
	RegisterFormatter(NewCSVFormatter())
}

// CSVFormatter writes the ranking as CSV, one row per park with every
// monthly score. Missing values are written as empty cells.
type CSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*CSVFormatter)(nil)

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Name returns the format name.
func (c *CSVFormatter) Name() string {
	return "csv"
}

// Extension returns the file extension.
func (c *CSVFormatter) Extension() string {
	return "csv"
}

// Format writes the header and one row per entry to w.
func (c *CSVFormatter) Format(r Ranking, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range r.Entries {
		if err := cw.Write(tableRow(e)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// tableRow renders e in tableHeader order.
func tableRow(e rank.Entry) []string {
	rec := e.Record
	row := []string{
		strconv.Itoa(e.Position),
		rec.Name,
		rec.State,
		strconv.FormatFloat(rec.Latitude, 'f', -1, 64),
		strconv.FormatFloat(rec.Longitude, 'f', -1, 64),
	}
	for _, s := range rec.Scores {
		row = append(row, csvNumber(s))
	}
	return append(row, csvNumber(rec.AverageScore), csvNumber(e.Score))
}

func csvNumber(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
