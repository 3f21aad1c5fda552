package output

import (
	"io"

	"github.com/davetashner/parkheat/internal/rank"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the plain ranked report, one line per park.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Extension returns the file extension.
func (t *TextFormatter) Extension() string {
	return "txt"
}

// Format writes the heading and ranked lines to w.
func (t *TextFormatter) Format(r Ranking, w io.Writer) error {
	return rank.WriteReportFor(w, r.label(), r.Entries)
}
