package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/davetashner/parkheat/internal/parks"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps ranked parks with metadata for the JSON output format.
type JSONEnvelope struct {
	Parks    []JSONPark   `json:"parks"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONPark is one ranked park.
type JSONPark struct {
	Rank      int          `json:"rank"`
	Name      string       `json:"name"`
	State     string       `json:"state"`
	Score     *float64     `json:"score"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Record    parks.Record `json:"record"`
}

// JSONMetadata describes the ranking that produced the output.
type JSONMetadata struct {
	RankedBy    string `json:"ranked_by"`
	TotalCount  int    `json:"total_count"`
	RunID       string `json:"run_id,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes the ranking as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	clock clockwork.Clock
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{clock: clockwork.NewRealClock()}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Extension returns the file extension.
func (f *JSONFormatter) Extension() string {
	return "json"
}

// Format writes the ranking as a JSON document to w. Missing scores encode
// as null.
func (f *JSONFormatter) Format(r Ranking, w io.Writer) error {
	envelope := JSONEnvelope{
		Parks: make([]JSONPark, len(r.Entries)),
		Metadata: JSONMetadata{
			RankedBy:    r.label(),
			TotalCount:  len(r.Entries),
			RunID:       r.RunID,
			GeneratedAt: f.now().UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	for i, e := range r.Entries {
		envelope.Parks[i] = JSONPark{
			Rank:      e.Position,
			Name:      e.Record.Name,
			State:     e.Record.State,
			Score:     parks.Nullable(e.Score),
			Latitude:  e.Record.Latitude,
			Longitude: e.Record.Longitude,
			Record:    e.Record,
		}
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

func (f *JSONFormatter) now() time.Time {
	if f.clock == nil {
		return time.Now()
	}
	return f.clock.Now()
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// Non-file writers (e.g., bytes.Buffer in tests) default to pretty.
	return false
}
