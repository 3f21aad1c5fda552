// Package staticmap renders static images of the hiking conditions: one
// longitude/latitude heat map per label and a bar chart of the best
// average scores.
package staticmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/davetashner/parkheat/internal/parks"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no scores to plot")

// Supported image formats.
var formats = map[string]bool{"png": true, "svg": true}

// Options controls rendering.
type Options struct {
	// Format is the image format, "png" (default) or "svg".
	Format string

	// Workers bounds concurrent renders. Zero means 4.
	Workers int

	// TopN is the number of bars in the average chart. Zero means 15.
	TopN int

	// RatingMax is the top of the bar chart's value axis. Zero means 10.
	RatingMax float64
}

func (o Options) withDefaults() (Options, error) {
	o.Format = strings.ToLower(strings.TrimPrefix(o.Format, "."))
	if o.Format == "" {
		o.Format = "png"
	}
	if !formats[o.Format] {
		return o, fmt.Errorf("unsupported image format %q (must be png or svg)", o.Format)
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.TopN <= 0 {
		o.TopN = 15
	}
	if o.RatingMax <= 0 {
		o.RatingMax = 10
	}
	return o, nil
}

// HeatMapPath returns the file written for label inside dir.
func HeatMapPath(dir, label, format string) string {
	return filepath.Join(dir, "hiking_conditions_"+label+"."+format)
}

// RenderHeatMaps writes one heat map per label into dir and returns the
// paths in label order. Colors share one scale across all labels. An empty
// dataset writes nothing and returns ErrNoData.
func RenderHeatMaps(ctx context.Context, records []parks.Record, dir string, opts Options) ([]string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	lo, hi, ok := parks.Extent(records)
	if !ok {
		return nil, ErrNoData
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	labels := parks.Labels()
	paths := make([]string, len(labels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, label := range labels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := HeatMapPath(dir, label, opts.Format)
			if err := renderHeatMap(records, label, lo, hi, path); err != nil {
				return fmt.Errorf("render %s: %w", label, err)
			}
			slog.Debug("heat map written", "label", label, "path", path)
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func renderHeatMap(records []parks.Record, label string, lo, hi float64, path string) error {
	var (
		xys    plotter.XYs
		values []float64
	)
	for _, r := range records {
		v := r.Value(label)
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: r.Longitude, Y: r.Latitude})
		values = append(values, v)
	}

	p := plot.New()
	p.Title.Text = "Hiking conditions – " + label
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	if len(xys) > 0 {
		cmap := colorMap(lo, hi)
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			c, err := cmap.At(values[i])
			if err != nil {
				c = cmap.Palette(1).Colors()[0]
			}
			return draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
		}
		p.Add(scatter)
	}

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// colorMap scales a blue-to-red map to [lo, hi].
func colorMap(lo, hi float64) palette.ColorMap {
	if hi <= lo {
		hi = lo + 1
	}
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	return cmap
}
