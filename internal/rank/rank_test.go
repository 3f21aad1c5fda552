package rank

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/parkheat/internal/parks"
)

func park(name, state string, avg float64) parks.Record {
	r := parks.Record{Name: name, State: state, AverageScore: avg}
	for i := range r.Scores {
		r.Scores[i] = avg
	}
	return r
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Record.Name
	}
	return out
}

func TestRank_Descending(t *testing.T) {
	records := []parks.Record{
		park("Acadia", "ME", 5.5),
		park("Yellowstone", "WY", 6.42),
		park("Everglades", "FL", 4.1),
	}

	entries := Rank(records)

	assert.Equal(t, []string{"Yellowstone", "Acadia", "Everglades"}, names(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	records := []parks.Record{
		park("First", "AA", 7),
		park("Low", "BB", 3),
		park("Second", "CC", 7),
		park("Third", "DD", 7),
	}

	entries := Rank(records)

	assert.Equal(t, []string{"First", "Second", "Third", "Low"}, names(entries))
}

func TestRank_NaNLast(t *testing.T) {
	records := []parks.Record{
		park("Unknown", "XX", math.NaN()),
		park("Mid", "AA", 5),
		park("High", "BB", 8),
	}

	entries := Rank(records)

	assert.Equal(t, []string{"High", "Mid", "Unknown"}, names(entries))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := []parks.Record{park("B", "B", 1), park("A", "A", 2)}

	_ = Rank(records)

	assert.Equal(t, "B", records[0].Name)
}

func TestRank_Empty(t *testing.T) {
	entries := Rank(nil)
	assert.Empty(t, entries)
}

func TestBy_Month(t *testing.T) {
	a := park("Acadia", "ME", 5)
	a.Scores[6] = 9 // Jul
	z := park("Zion", "UT", 6)
	z.Scores[6] = 4

	entries, err := By([]parks.Record{z, a}, "Jul")
	require.NoError(t, err)

	assert.Equal(t, []string{"Acadia", "Zion"}, names(entries))
	assert.Equal(t, 9.0, entries[0].Score)
}

func TestBy_UnknownLabel(t *testing.T) {
	_, err := By(nil, "July")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown series")
}

func TestTop(t *testing.T) {
	entries := Rank([]parks.Record{park("A", "A", 3), park("B", "B", 2), park("C", "C", 1)})

	assert.Len(t, Top(entries, 2), 2)
	assert.Len(t, Top(entries, 10), 3)
	assert.Len(t, Top(entries, 0), 3)
}

func TestLine(t *testing.T) {
	e := Entry{Position: 1, Record: parks.Record{Name: "Yellowstone", State: "WY"}, Score: 6.4166666}
	assert.Equal(t, " 1. Yellowstone (WY) – 6.42", Line(e))

	e.Position = 12
	assert.Equal(t, "12. Yellowstone (WY) – 6.42", Line(e))
}

func TestWriteReport(t *testing.T) {
	entries := Rank([]parks.Record{park("Zion", "UT", 6.25), park("Yellowstone", "WY", 6.5)})

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		Heading,
		" 1. Yellowstone (WY) – 6.50",
		" 2. Zion (UT) – 6.25",
	}, lines)
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, Heading+"\n", buf.String())
}

func TestHeadingFor(t *testing.T) {
	assert.Equal(t, Heading, HeadingFor(""))
	assert.Equal(t, Heading, HeadingFor("Average"))
	assert.Equal(t, "Jul hiking condition scores (high → low):", HeadingFor("Jul"))
}
