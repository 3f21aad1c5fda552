// Package output defines the Formatter interface for writing a park ranking
// in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
)

// Ranking is the input to every formatter.
type Ranking struct {
	// Label is the series the entries are ranked by.
	Label string

	// Entries is the ranked (and possibly truncated) list.
	Entries []rank.Entry

	// Records is the full dataset in input order.
	Records []parks.Record

	// RunID identifies the invocation that produced the output.
	RunID string
}

// label returns the ranking label, defaulting to the average series.
func (r Ranking) label() string {
	if r.Label == "" {
		return parks.AverageLabel
	}
	return r.Label
}

// Formatter writes a ranking to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "text", "json", "xlsx").
	Name() string

	// Extension returns the file extension used when writing to a directory,
	// without the leading dot.
	Extension() string

	// Format writes the ranking to w.
	Format(r Ranking, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatNames returns a comma-separated sorted list of registered format names.
// Callers must hold fmtMu.
func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// formatScore renders a score with two decimals, or an empty string when
// missing.
func formatScore(v float64) string {
	if p := parks.Nullable(v); p != nil {
		return fmt.Sprintf("%.2f", *p)
	}
	return ""
}
