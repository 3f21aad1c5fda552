package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/davetashner/parkheat/internal/dashboard"
)

func init() {
	RegisterFormatter(NewHTMLFormatter(dashboard.Options{}))
}

// PlotlyScript is the CDN bundle the dashboard loads.
const PlotlyScript = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLFormatter writes the interactive hiking conditions map as a
// self-contained HTML page.
type HTMLFormatter struct {
	opts  dashboard.Options
	clock clockwork.Clock
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter that builds figures with opts.
func NewHTMLFormatter(opts dashboard.Options) *HTMLFormatter {
	return &HTMLFormatter{opts: opts, clock: clockwork.NewRealClock()}
}

// WithClock returns a copy of h that reads the generation time from clock.
func (h *HTMLFormatter) WithClock(clock clockwork.Clock) *HTMLFormatter {
	c := *h
	c.clock = clock
	return &c
}

// WithOptions returns a copy of h that builds figures with opts.
func (h *HTMLFormatter) WithOptions(opts dashboard.Options) *HTMLFormatter {
	c := *h
	c.opts = opts
	return &c
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

// Extension returns the file extension.
func (h *HTMLFormatter) Extension() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// htmlData holds all template data for the dashboard page.
type htmlData struct {
	Title       string
	PlotlyURL   string
	GeneratedAt string
	RunID       string
	ParkCount   int
	Figure      *dashboard.Figure
	Rows        []htmlRow
	RankedBy    string
}

type htmlRow struct {
	Position int
	Name     string
	State    string
	Score    string
}

// Format renders the figure for r.Records and the ranked table for
// r.Entries. An empty dataset produces a minimal page.
func (h *HTMLFormatter) Format(r Ranking, w io.Writer) error {
	if len(r.Records) == 0 {
		return h.writeEmpty(w)
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) (template.JS, error) {
				b, err := json.Marshal(v)
				if err != nil {
					return "", fmt.Errorf("marshal figure: %w", err)
				}
				return template.JS(b), nil //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})

	clock := h.clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	data := htmlData{
		Title:       dashboard.Title,
		PlotlyURL:   PlotlyScript,
		GeneratedAt: clock.Now().UTC().Format("2006-01-02 15:04 UTC"),
		RunID:       r.RunID,
		ParkCount:   len(r.Records),
		Figure:      dashboard.Build(r.Records, h.opts),
		RankedBy:    r.label(),
		Rows:        make([]htmlRow, len(r.Entries)),
	}
	for i, e := range r.Entries {
		data.Rows[i] = htmlRow{
			Position: e.Position,
			Name:     e.Record.Name,
			State:    e.Record.State,
			Score:    formatScore(e.Score),
		}
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func (h *HTMLFormatter) writeEmpty(w io.Writer) error {
	const emptyHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>US National Parks Hiking Conditions</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>No parks found.</p></body></html>`
	if _, err := io.WriteString(w, emptyHTML); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}
