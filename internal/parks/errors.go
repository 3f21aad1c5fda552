package parks

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from the input header.
type SchemaError struct {
	Missing []string // canonical order, see RequiredColumns
}

func (e *SchemaError) Error() string {
	return "CSV is missing required columns: " + strings.Join(e.Missing, ", ")
}

// ValueError reports a cell that could not be used as a number.
type ValueError struct {
	Line   int // 1-based line in the input
	Column string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: column %s: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }
