package parks

import (
	"encoding/json"
	"math"
)

// Record is one park row plus its derived average.
type Record struct {
	Name         string
	State        string
	Latitude     float64
	Longitude    float64
	Scores       [12]float64 // indexed like Months; NaN when missing
	AverageScore float64
}

// Value returns the score for a month label or the average for
// AverageLabel. Unknown labels return NaN.
func (r Record) Value(label string) float64 {
	if label == AverageLabel {
		return r.AverageScore
	}
	if i := monthIndex(label); i >= 0 {
		return r.Scores[i]
	}
	return math.NaN()
}

// Missing returns the number of monthly values that are NaN.
func (r Record) Missing() int {
	n := 0
	for _, s := range r.Scores {
		if math.IsNaN(s) {
			n++
		}
	}
	return n
}

// recordJSON is the wire form of a Record. NaN has no JSON representation,
// so missing values encode as null.
type recordJSON struct {
	Name         string     `json:"name"`
	State        string     `json:"state"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Scores       []*float64 `json:"scores"`
	AverageScore *float64   `json:"average_score"`
}

// MarshalJSON encodes the record with scores in Months order.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Name:         r.Name,
		State:        r.State,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Scores:       make([]*float64, len(r.Scores)),
		AverageScore: Nullable(r.AverageScore),
	}
	for i, s := range r.Scores {
		out.Scores[i] = Nullable(s)
	}
	return json.Marshal(out)
}

// Nullable returns nil for NaN and a pointer to v otherwise.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// Mean returns the arithmetic mean of the non-NaN values, or NaN if there
// are none.
func Mean(values []float64) float64 {
	var sum float64
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Extent returns the minimum and maximum non-NaN value across every monthly
// score and average in records. ok is false when there is no such value.
func Extent(records []Record) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	visit := func(v float64) {
		if math.IsNaN(v) {
			return
		}
		ok = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, r := range records {
		for _, s := range r.Scores {
			visit(s)
		}
		visit(r.AverageScore)
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
