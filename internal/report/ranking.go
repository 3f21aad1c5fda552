package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/davetashner/parkheat/internal/rank"
)

// WriteRanking writes the heading for label followed by a table of
// entries with colored scores.
func WriteRanking(w io.Writer, label string, entries []rank.Entry) error {
	if _, err := fmt.Fprintln(w, SectionTitle(rank.HeadingFor(label))); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return RankingTable(entries).Render(w)
}

// RankingTable builds the table for entries: position, park, state,
// score and the count of missing months.
func RankingTable(entries []rank.Entry) *Table {
	tbl := NewTable(
		Column{Header: "#", Align: AlignRight},
		Column{Header: "Park"},
		Column{Header: "State"},
		Column{Header: "Score", Align: AlignRight, Color: ColorScore},
		Column{Header: "Missing", Align: AlignRight},
	)
	for _, e := range entries {
		score := "n/a"
		if !math.IsNaN(e.Score) {
			score = fmt.Sprintf("%.2f", e.Score)
		}
		tbl.AddRow(
			strconv.Itoa(e.Position),
			e.Record.Name,
			e.Record.State,
			score,
			strconv.Itoa(e.Record.Missing()),
		)
	}
	return tbl
}
