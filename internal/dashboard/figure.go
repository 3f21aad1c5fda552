// Package dashboard builds the Plotly figure for the interactive hiking
// conditions map.
//
// The figure pre-renders one scattergeo trace per (label, rating threshold)
// pair. The month dropdown and the minimum-rating slider never filter data
// in the browser; they only swap which single trace is visible.
package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/davetashner/parkheat/internal/parks"
	"github.com/davetashner/parkheat/internal/rank"
)

// Defaults for Options.
const (
	DefaultRatingStep = 0.5
	DefaultRatingMax  = 10.0
	DefaultTopN       = 15

	// MaxThresholds bounds the slider. The figure holds one trace per
	// (label, threshold) and every button and slider step carries a
	// visibility mask over all traces, so size grows with its square.
	MaxThresholds = 41
)

// Title prefixes every figure title.
const Title = "US National Parks Hiking Conditions"

// Options tunes the generated figure.
type Options struct {
	RatingStep float64 // slider increment; <= 0 means DefaultRatingStep, widened to stay within MaxThresholds
	RatingMax  float64 // last slider value; <= 0 means DefaultRatingMax
	TopN       int     // parks in each top list; <= 0 means DefaultTopN
}

func (o Options) withDefaults() Options {
	if o.RatingStep <= 0 {
		o.RatingStep = DefaultRatingStep
	}
	if o.RatingMax <= 0 {
		o.RatingMax = DefaultRatingMax
	}
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if ThresholdCount(o.RatingStep, o.RatingMax) > MaxThresholds {
		o.RatingStep = o.RatingMax / (MaxThresholds - 1)
	}
	return o
}

// Figure is a Plotly figure: the JSON form of data plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`

	labels     []string
	thresholds []float64
}

// Labels returns the dropdown labels in order.
func (f *Figure) Labels() []string { return f.labels }

// Thresholds returns the slider rating thresholds in order.
func (f *Figure) Thresholds() []float64 { return f.thresholds }

// TraceIndex returns the index in Data of the trace for the given label and
// threshold positions.
func (f *Figure) TraceIndex(label, threshold int) int {
	return label*len(f.thresholds) + threshold
}

// Trace is a scattergeo trace.
type Trace struct {
	Type          string    `json:"type"`
	Lat           []float64 `json:"lat"`
	Lon           []float64 `json:"lon"`
	Mode          string    `json:"mode"`
	Text          []string  `json:"text"`
	Marker        Marker    `json:"marker"`
	CustomData    [][]any   `json:"customdata"`
	HoverTemplate string    `json:"hovertemplate"`
	Visible       bool      `json:"visible"`
	Name          string    `json:"name"`
}

// Marker styles trace points.
type Marker struct {
	Size      int       `json:"size"`
	Color     []float64 `json:"color"`
	ColorAxis string    `json:"coloraxis"`
}

// Layout is the figure layout.
type Layout struct {
	Title       string       `json:"title"`
	LegendTitle LegendTitle  `json:"legend"`
	UpdateMenus []UpdateMenu `json:"updatemenus"`
	Sliders     []Slider     `json:"sliders"`
	Annotations []Annotation `json:"annotations"`
	Margin      Margin       `json:"margin"`
	Geo         Geo          `json:"geo"`
	ColorAxis   ColorAxis    `json:"coloraxis"`
}

// LegendTitle names the legend.
type LegendTitle struct {
	Title struct {
		Text string `json:"text"`
	} `json:"title"`
}

// UpdateMenu is a dropdown of buttons.
type UpdateMenu struct {
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	ShowActive bool     `json:"showactive"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
}

// Button applies an update when selected. Args holds the trace update
// followed by the layout update.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Slider is a stepped control.
type Slider struct {
	Active       int          `json:"active"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Pad          *Pad         `json:"pad,omitempty"`
	Steps        []SliderStep `json:"steps"`
}

// CurrentValue labels the slider's current value.
type CurrentValue struct {
	Prefix  string `json:"prefix"`
	Visible bool   `json:"visible"`
}

// Pad is slider padding in pixels.
type Pad struct {
	T int `json:"t"`
}

// SliderStep selects one threshold.
type SliderStep struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Annotation is a text box positioned on the figure.
type Annotation struct {
	Text        string  `json:"text"`
	ShowArrow   bool    `json:"showarrow"`
	X           float64 `json:"x"`
	XAnchor     string  `json:"xanchor,omitempty"`
	XRef        string  `json:"xref,omitempty"`
	Y           float64 `json:"y"`
	YAnchor     string  `json:"yanchor,omitempty"`
	YRef        string  `json:"yref,omitempty"`
	Align       string  `json:"align,omitempty"`
	BGColor     string  `json:"bgcolor,omitempty"`
	BorderColor string  `json:"bordercolor,omitempty"`
	BorderWidth int     `json:"borderwidth,omitempty"`
	Font        Font    `json:"font"`
}

// Font sets a text size.
type Font struct {
	Size int `json:"size"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Geo configures the map.
type Geo struct {
	Scope      string     `json:"scope"`
	Projection Projection `json:"projection"`
}

// Projection names the map projection.
type Projection struct {
	Type string `json:"type"`
}

// ColorAxis is the shared color scale.
type ColorAxis struct {
	ColorScale string   `json:"colorscale"`
	CMin       float64  `json:"cmin"`
	CMax       float64  `json:"cmax"`
	ColorBar   ColorBar `json:"colorbar"`
}

// ColorBar styles the color legend.
type ColorBar struct {
	Title     ColorBarTitle `json:"title"`
	Ticks     string        `json:"ticks"`
	Len       float64       `json:"len"`
	Thickness int           `json:"thickness"`
}

// ColorBarTitle is the color legend heading.
type ColorBarTitle struct {
	Text string `json:"text"`
}

// Build assembles the figure for records.
func Build(records []parks.Record, opts Options) *Figure {
	opts = opts.withDefaults()

	f := &Figure{
		labels:     parks.Labels(),
		thresholds: Thresholds(opts.RatingStep, opts.RatingMax),
	}

	topLists := make([]string, len(f.labels))
	for li, label := range f.labels {
		topLists[li] = TopList(records, label, opts.TopN)
		for ti, threshold := range f.thresholds {
			f.Data = append(f.Data, buildTrace(records, label, threshold, li == 0 && ti == 0))
		}
	}

	buttons := make([]Button, len(f.labels))
	for li, label := range f.labels {
		buttons[li] = Button{
			Label:  label,
			Method: "update",
			Args: []any{
				map[string]any{"visible": f.visibility(f.TraceIndex(li, 0))},
				map[string]any{
					"title":       figureTitle(label),
					"annotations": annotations(topLists[li]),
					"sliders":     []Slider{f.slider(li, nil)},
				},
			},
		}
	}

	cmin, cmax, ok := parks.Extent(records)
	if !ok {
		cmin, cmax = 0, opts.RatingMax
	}

	f.Layout = Layout{
		Title: figureTitle(f.labels[0]),
		UpdateMenus: []UpdateMenu{{
			Buttons:    buttons,
			Direction:  "down",
			ShowActive: true,
			X:          0.01,
			XAnchor:    "left",
			Y:          1.1,
			YAnchor:    "top",
		}},
		Sliders:     []Slider{f.slider(0, &Pad{T: 50})},
		Annotations: annotations(topLists[0]),
		Margin:      Margin{L: 20, R: 20, T: 60, B: 60},
		Geo:         Geo{Scope: "usa", Projection: Projection{Type: "albers usa"}},
		ColorAxis: ColorAxis{
			ColorScale: "Viridis",
			CMin:       cmin,
			CMax:       cmax,
			ColorBar: ColorBar{
				Title:     ColorBarTitle{Text: "Hiking condition score"},
				Ticks:     "outside",
				Len:       0.75,
				Thickness: 16,
			},
		},
	}
	f.Layout.LegendTitle.Title.Text = "Dataset"
	return f
}

// ThresholdCount returns how many values Thresholds(step, limit) holds,
// saturating at math.MaxInt32.
func ThresholdCount(step, limit float64) int {
	n := math.Floor(limit/step + 1e-9)
	if n >= math.MaxInt32-1 || math.IsNaN(n) {
		return math.MaxInt32
	}
	return int(n) + 1
}

// Thresholds returns 0, step, 2*step, ... up to and including limit.
func Thresholds(step, limit float64) []float64 {
	out := make([]float64, ThresholdCount(step, limit))
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

func buildTrace(records []parks.Record, label string, threshold float64, visible bool) Trace {
	t := Trace{
		Type:   "scattergeo",
		Lat:    []float64{},
		Lon:    []float64{},
		Mode:   "markers",
		Text:   []string{},
		Marker: Marker{Size: 8, Color: []float64{}, ColorAxis: "coloraxis"},
		// customdata: [State, selected value, average]
		CustomData: [][]any{},
		HoverTemplate: "<b>%{text}</b><br>State: %{customdata[0]}<br>" +
			"Condition (" + label + "): %{customdata[1]:.1f}<br>" +
			"Average: %{customdata[2]:.1f}<extra></extra>",
		Visible: visible,
		Name:    label,
	}
	for _, r := range records {
		v := r.Value(label)
		if math.IsNaN(v) || v < threshold {
			continue
		}
		t.Lat = append(t.Lat, r.Latitude)
		t.Lon = append(t.Lon, r.Longitude)
		t.Text = append(t.Text, r.Name)
		t.Marker.Color = append(t.Marker.Color, v)
		t.CustomData = append(t.CustomData, []any{r.State, v, parks.Nullable(r.AverageScore)})
	}
	return t
}

// visibility returns a mask with only index set.
func (f *Figure) visibility(index int) []bool {
	mask := make([]bool, len(f.labels)*len(f.thresholds))
	mask[index] = true
	return mask
}

func (f *Figure) slider(label int, pad *Pad) Slider {
	s := Slider{
		CurrentValue: CurrentValue{Prefix: "Min rating: ", Visible: true},
		Pad:          pad,
		Steps:        make([]SliderStep, len(f.thresholds)),
	}
	for ti, threshold := range f.thresholds {
		s.Steps[ti] = SliderStep{
			Label:  fmt.Sprintf("%.1f", threshold),
			Method: "update",
			Args: []any{
				map[string]any{"visible": f.visibility(f.TraceIndex(label, ti))},
				map[string]any{},
			},
		}
	}
	return s
}

func figureTitle(label string) string {
	return Title + " – " + label
}

// TopList renders the top-n annotation text for label.
func TopList(records []parks.Record, label string, n int) string {
	lines := []string{fmt.Sprintf("<b>Top %d – %s</b>", n, label)}
	entries, err := rank.By(records, label)
	if err != nil {
		return lines[0]
	}
	for _, e := range rank.Top(entries, n) {
		if math.IsNaN(e.Score) {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s) – %.1f", e.Position, e.Record.Name, e.Record.State, e.Score))
	}
	return strings.Join(lines, "<br>")
}

func annotations(topList string) []Annotation {
	return []Annotation{
		{Text: "Select month", X: 0, XAnchor: "left", Y: 1.12, YAnchor: "top", Font: Font{Size: 12}},
		{Text: "Min rating: 0.0", X: 0.18, XAnchor: "left", Y: 1.12, YAnchor: "top", Font: Font{Size: 12}},
		{
			Text:        topList,
			X:           1.02,
			XRef:        "paper",
			Y:           0.5,
			YRef:        "paper",
			Align:       "left",
			BGColor:     "rgba(255,255,255,0.9)",
			BorderColor: "#1f2328",
			BorderWidth: 1,
			Font:        Font{Size: 12},
		},
	}
}
