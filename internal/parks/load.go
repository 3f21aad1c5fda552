package parks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// MissingPolicy decides how missing monthly values are treated.
type MissingPolicy string

// Missing-value policies.
const (
	MissingSkip  MissingPolicy = "skip"
	MissingError MissingPolicy = "error"
)

// ErrMissingValue is wrapped by a ValueError when a monthly value is absent
// under MissingError.
var ErrMissingValue = errors.New("missing value")

// ParseMissingPolicy validates a policy name. The empty string selects
// MissingSkip.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", MissingSkip:
		return MissingSkip, nil
	case MissingError:
		return MissingError, nil
	default:
		return "", fmt.Errorf("invalid missing-value policy %q (must be skip or error)", s)
	}
}

// Options controls parsing.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Missing selects the missing-value policy. Empty means MissingSkip.
	Missing MissingPolicy
}

var naTokens = map[string]bool{"": true, "na": true, "n/a": true, "nan": true, "null": true}

// LoadFile opens path and loads it with Load. The file is closed before
// LoadFile returns.
func LoadFile(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided dataset path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	records, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("dataset loaded", "path", path, "parks", len(records))
	return records, nil
}

// Load parses a header row plus data rows into Records, preserving input
// order. Column presence is checked before any row is parsed; a missing
// column yields a *SchemaError.
func Load(r io.Reader, opts Options) ([]Record, error) {
	policy, err := ParseMissingPolicy(string(opts.Missing))
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Missing: RequiredColumns()}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := idx.parse(row, line, policy)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex maps required columns to their position in a row.
type columnIndex struct {
	name, state, lat, lon int
	months                [12]int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	lookup := func(col string) int {
		i, ok := pos[col]
		if !ok {
			missing = append(missing, col)
			return -1
		}
		return i
	}

	var idx columnIndex
	if i, ok := pos[ColumnPark]; ok {
		idx.name = i
	} else if i, ok := pos[ColumnName]; ok {
		idx.name = i
	} else {
		missing = append(missing, ColumnPark)
	}
	idx.state = lookup(ColumnState)
	idx.lat = lookup(ColumnLatitude)
	idx.lon = lookup(ColumnLongitude)
	for m, month := range Months {
		idx.months[m] = lookup(month)
	}

	if len(missing) > 0 {
		return columnIndex{}, &SchemaError{Missing: missing}
	}
	return idx, nil
}

func (idx columnIndex) parse(row []string, line int, policy MissingPolicy) (Record, error) {
	rec := Record{
		Name:  strings.TrimSpace(row[idx.name]),
		State: strings.TrimSpace(row[idx.state]),
	}

	var err error
	if rec.Latitude, err = parseCoordinate(row[idx.lat], line, ColumnLatitude); err != nil {
		return Record{}, err
	}
	if rec.Longitude, err = parseCoordinate(row[idx.lon], line, ColumnLongitude); err != nil {
		return Record{}, err
	}

	for m, month := range Months {
		raw := strings.TrimSpace(row[idx.months[m]])
		if naTokens[strings.ToLower(raw)] {
			if policy == MissingError {
				return Record{}, &ValueError{Line: line, Column: month, Value: raw, Err: ErrMissingValue}
			}
			rec.Scores[m] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Record{}, &ValueError{Line: line, Column: month, Value: raw, Err: errors.Unwrap(err)}
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Record{}, &ValueError{Line: line, Column: month, Value: raw, Err: errors.New("not a finite number")}
		}
		rec.Scores[m] = v
	}

	rec.AverageScore = Mean(rec.Scores[:])
	return rec, nil
}

func parseCoordinate(raw string, line int, column string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValueError{Line: line, Column: column, Err: ErrMissingValue}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValueError{Line: line, Column: column, Value: raw, Err: errors.New("not a number")}
	}
	return v, nil
}
