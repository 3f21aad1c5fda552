package staticmap

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
)

// AverageBarsFile is the bar chart file name without extension.
const AverageBarsFile = "average_scores"

// RenderAverageBars writes a bar chart of the top-N parks by average score,
// highest first, to path. The image format follows the path extension.
// Parks without an average are left out; if none remain ErrNoData is
// returned and nothing is written.
func RenderAverageBars(records []parks.Record, path string, opts Options) error {
	opts, err := opts.withDefaults()
	if err != nil {
		return err
	}

	bars := averageBars(rankTop(records, opts.TopN))
	if len(bars) == 0 {
		return ErrNoData
	}

	graph := chart.BarChart{
		Title:      "Average hiking condition scores",
		Background: chart.Style{Padding: chart.Box{Top: 40, Bottom: 20}},
		Width:      160 + len(bars)*60,
		Height:     512,
		BarWidth:   40,
		BarSpacing: 20,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: opts.RatingMax},
		},
		Bars: bars,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path) //nolint:gosec // output path from flags
	if err != nil {
		return err
	}
	renderer := chart.PNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		renderer = chart.SVG
	}
	if err := graph.Render(renderer, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render bar chart: %w", err)
	}
	return f.Close()
}

func rankTop(records []parks.Record, n int) []rank.Entry {
	return rank.Top(rank.Rank(records), n)
}

func averageBars(entries []rank.Entry) []chart.Value {
	var bars []chart.Value
	for _, e := range entries {
		if math.IsNaN(e.Score) {
			break
		}
		bars = append(bars, chart.Value{Label: e.Record.Name, Value: e.Score})
	}
	return bars
}
