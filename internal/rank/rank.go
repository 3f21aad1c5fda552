// Package rank orders parks by a score series and renders the ranked
// report.
package rank

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/davetashner/parkheat/internal/parks"
)

// Heading introduces the ranked report.
const Heading = "Average hiking condition scores (high → low):"

// Entry is one ranked park.
type Entry struct {
	Position int // 1-based
	Record   parks.Record
	Score    float64 // value of the ranking label; NaN when missing
}

// Rank orders records by AverageScore, descending. Ties keep input order and
// NaN averages sort last.
func Rank(records []parks.Record) []Entry {
	entries, _ := By(records, parks.AverageLabel)
	return entries
}

// By orders records by the series named by label (a month or
// parks.AverageLabel) with the same rules as Rank.
func By(records []parks.Record, label string) ([]Entry, error) {
	if !parks.IsLabel(label) {
		return nil, fmt.Errorf("unknown series %q (want a month abbreviation or %s)", label, parks.AverageLabel)
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{Record: r, Score: r.Value(label)}
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return compareDesc(a.Score, b.Score)
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}

// compareDesc orders higher scores first and NaN after every number.
func compareDesc(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// Top returns at most n leading entries. n <= 0 returns all of them.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// Line formats an entry as " 1. Yellowstone (WY) – 6.42".
func Line(e Entry) string {
	return fmt.Sprintf("%2d. %s (%s) – %.2f", e.Position, e.Record.Name, e.Record.State, e.Score)
}

// HeadingFor returns the report heading for a ranking over label.
func HeadingFor(label string) string {
	if label == "" || label == parks.AverageLabel {
		return Heading
	}
	return label + " hiking condition scores (high → low):"
}

// WriteReport writes Heading followed by one Line per entry.
func WriteReport(w io.Writer, entries []Entry) error {
	return WriteReportFor(w, parks.AverageLabel, entries)
}

// WriteReportFor writes HeadingFor(label) followed by one Line per entry.
func WriteReportFor(w io.Writer, label string, entries []Entry) error {
	if _, err := fmt.Fprintln(w, HeadingFor(label)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, Line(e)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
