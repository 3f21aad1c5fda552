package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the ranking as a Markdown table.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Extension returns the file extension.
func (m *MarkdownFormatter) Extension() string {
	return "md"
}

// Format writes a heading, a summary line and a ranked table to w.
// Nothing is written when there are no entries.
func (m *MarkdownFormatter) Format(r Ranking, w io.Writer) error {
	if len(r.Entries) == 0 {
		return nil
	}

	if err := writeHeader(w, r); err != nil {
		return err
	}
	return writeRankTable(w, r.Entries)
}

func writeHeader(w io.Writer, r Ranking) error {
	title := strings.TrimSuffix(rank.HeadingFor(r.label()), ":")
	missing := 0
	for _, e := range r.Entries {
		missing += e.Record.Missing()
	}

	_, err := fmt.Fprintf(w, "# %s\n\n**Parks**: %d | **Ranked by**: %s | **Missing values**: %d\n\n",
		title, len(r.Entries), r.label(), missing)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func writeRankTable(w io.Writer, entries []rank.Entry) error {
	if _, err := fmt.Fprintf(w, "| Rank | Park | State | Score |\n|---:|------|-------|------:|\n"); err != nil {
		return fmt.Errorf("write rank table: %w", err)
	}
	for _, e := range entries {
		score := formatScore(e.Score)
		if score == "" {
			score = "n/a"
		}
		if _, err := fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
			e.Position, escapeCell(e.Record.Name), escapeCell(e.Record.State), score); err != nil {
			return fmt.Errorf("write rank row: %w", err)
		}
	}
	return nil
}

// escapeCell keeps pipes in park names from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// tableHeader is the column layout shared by the csv and xlsx exports.
func tableHeader() []string {
	cols := []string{"Rank", parks.ColumnPark, parks.ColumnState, parks.ColumnLatitude, parks.ColumnLongitude}
	cols = append(cols, parks.Months[:]...)
	return append(cols, "AverageScore", "Score")
}
