package dashboard

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/parkheat/internal/parks"
)

func testRecords() []parks.Record {
	mk := func(name, state string, lat, lon float64, scores [12]float64) parks.Record {
		return parks.Record{
			Name: name, State: state, Latitude: lat, Longitude: lon,
			Scores: scores, AverageScore: parks.Mean(scores[:]),
		}
	}
	return []parks.Record{
		mk("Yellowstone", "WY", 44.4, -110.6, [12]float64{1, 1, 2, 4, 6, 8, 9, 9, 8, 5, 2, 1}),
		mk("Everglades", "FL", 25.3, -80.9, [12]float64{9, 9, 9, 8, 6, 3, 2, 2, 2, 5, 8, 9}),
		mk("Zion", "UT", 37.3, -113.0, [12]float64{5, 5, 6, 8, 8, 6, 4, 4, 7, 8, 6, 5}),
	}
}

func countVisible(mask []bool) (n, at int) {
	at = -1
	for i, v := range mask {
		if v {
			n++
			at = i
		}
	}
	return n, at
}

func TestThresholds(t *testing.T) {
	th := Thresholds(0.5, 10)
	require.Len(t, th, 21)
	assert.Equal(t, 0.0, th[0])
	assert.Equal(t, 0.5, th[1])
	assert.Equal(t, 10.0, th[20])

	assert.Len(t, Thresholds(1, 10), 11)
	assert.Len(t, Thresholds(0.3, 1), 4)
}

func TestThresholdCount(t *testing.T) {
	assert.Equal(t, 21, ThresholdCount(0.5, 10))
	assert.Equal(t, 10001, ThresholdCount(0.001, 10))
	assert.Equal(t, math.MaxInt32, ThresholdCount(1e-300, 10))
}

func TestBuild_TraceGrid(t *testing.T) {
	f := Build(testRecords(), Options{})

	assert.Len(t, f.Labels(), 13)
	assert.Len(t, f.Thresholds(), 21)
	require.Len(t, f.Data, 13*21)

	visible := 0
	for i, tr := range f.Data {
		if tr.Visible {
			visible++
			assert.Equal(t, 0, i)
		}
	}
	assert.Equal(t, 1, visible)

	assert.Equal(t, "Jan", f.Data[f.TraceIndex(0, 0)].Name)
	assert.Equal(t, "Average", f.Data[f.TraceIndex(12, 20)].Name)
}

func TestBuild_TraceFiltering(t *testing.T) {
	f := Build(testRecords(), Options{})

	// Jan at threshold 0: everyone.
	jan0 := f.Data[f.TraceIndex(0, 0)]
	assert.Equal(t, []string{"Yellowstone", "Everglades", "Zion"}, jan0.Text)
	assert.Equal(t, []float64{1, 9, 5}, jan0.Marker.Color)

	// Jan at threshold 5.0 (index 10): Everglades (9) and Zion (5).
	jan5 := f.Data[f.TraceIndex(0, 10)]
	assert.Equal(t, []string{"Everglades", "Zion"}, jan5.Text)
	assert.Equal(t, []float64{25.3, 37.3}, jan5.Lat)
	assert.Equal(t, []float64{-80.9, -113.0}, jan5.Lon)

	// Jan at threshold 10: nobody, but arrays are empty rather than null.
	jan10 := f.Data[f.TraceIndex(0, 20)]
	assert.NotNil(t, jan10.Text)
	assert.Empty(t, jan10.Text)

	require.Len(t, jan5.CustomData, 2)
	assert.Equal(t, "FL", jan5.CustomData[0][0])
	assert.Equal(t, 9.0, jan5.CustomData[0][1])
	assert.Contains(t, jan5.HoverTemplate, "Condition (Jan)")
}

func TestBuild_SkipsMissingValues(t *testing.T) {
	records := testRecords()
	records[0].Scores[0] = math.NaN()
	records[0].AverageScore = parks.Mean(records[0].Scores[:])

	f := Build(records, Options{})

	jan0 := f.Data[f.TraceIndex(0, 0)]
	assert.Equal(t, []string{"Everglades", "Zion"}, jan0.Text)
}

func TestBuild_DropdownButtons(t *testing.T) {
	f := Build(testRecords(), Options{})

	require.Len(t, f.Layout.UpdateMenus, 1)
	buttons := f.Layout.UpdateMenus[0].Buttons
	require.Len(t, buttons, 13)

	for li, b := range buttons {
		assert.Equal(t, f.Labels()[li], b.Label)
		assert.Equal(t, "update", b.Method)
		require.Len(t, b.Args, 2)

		traceUpdate := b.Args[0].(map[string]any)
		mask := traceUpdate["visible"].([]bool)
		require.Len(t, mask, len(f.Data))
		n, at := countVisible(mask)
		assert.Equal(t, 1, n)
		assert.Equal(t, f.TraceIndex(li, 0), at)

		layoutUpdate := b.Args[1].(map[string]any)
		assert.Equal(t, Title+" – "+b.Label, layoutUpdate["title"])

		sliders := layoutUpdate["sliders"].([]Slider)
		require.Len(t, sliders, 1)
		for ti, step := range sliders[0].Steps {
			stepMask := step.Args[0].(map[string]any)["visible"].([]bool)
			_, at := countVisible(stepMask)
			assert.Equal(t, f.TraceIndex(li, ti), at)
		}
	}
}

func TestBuild_InitialSlider(t *testing.T) {
	f := Build(testRecords(), Options{})

	require.Len(t, f.Layout.Sliders, 1)
	s := f.Layout.Sliders[0]
	require.Len(t, s.Steps, 21)
	assert.Equal(t, "0.0", s.Steps[0].Label)
	assert.Equal(t, "10.0", s.Steps[20].Label)
	assert.Equal(t, "Min rating: ", s.CurrentValue.Prefix)
	require.NotNil(t, s.Pad)
	assert.Equal(t, 50, s.Pad.T)
}

func TestBuild_ColorAxisExtent(t *testing.T) {
	f := Build(testRecords(), Options{})

	assert.Equal(t, "Viridis", f.Layout.ColorAxis.ColorScale)
	assert.Equal(t, 1.0, f.Layout.ColorAxis.CMin)
	assert.Equal(t, 9.0, f.Layout.ColorAxis.CMax)
	assert.Equal(t, "usa", f.Layout.Geo.Scope)
	assert.Equal(t, "albers usa", f.Layout.Geo.Projection.Type)
}

func TestBuild_Options(t *testing.T) {
	f := Build(testRecords(), Options{RatingStep: 1, RatingMax: 5, TopN: 1})

	assert.Len(t, f.Thresholds(), 6)
	assert.Len(t, f.Data, 13*6)

	top := f.Layout.Annotations[2].Text
	assert.Equal(t, "<b>Top 1 – Jan</b><br>1. Everglades (FL) – 9.0", top)
}

func TestBuild_ThresholdCap(t *testing.T) {
	f := Build(testRecords(), Options{RatingStep: 0.001})

	require.Len(t, f.Thresholds(), MaxThresholds)
	assert.Equal(t, 0.25, f.Thresholds()[1])
	assert.Equal(t, 10.0, f.Thresholds()[MaxThresholds-1])
	assert.Len(t, f.Data, 13*MaxThresholds)
}

func TestBuild_Empty(t *testing.T) {
	f := Build(nil, Options{})

	assert.Len(t, f.Data, 13*21)
	assert.Equal(t, 0.0, f.Layout.ColorAxis.CMin)
	assert.Equal(t, 10.0, f.Layout.ColorAxis.CMax)
}

func TestTopList(t *testing.T) {
	got := TopList(testRecords(), "Jul", 2)
	assert.Equal(t, "<b>Top 2 – Jul</b><br>1. Yellowstone (WY) – 9.0<br>2. Zion (UT) – 4.0", got)
}

func TestFigure_JSON(t *testing.T) {
	records := testRecords()
	records[2].Scores[5] = math.NaN()
	f := Build(records, Options{})

	data, err := json.Marshal(f)
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"data":[`))
	assert.Contains(t, s, `"type":"scattergeo"`)
	assert.Contains(t, s, `"updatemenus"`)
	assert.Contains(t, s, `"sliders"`)
	assert.Contains(t, s, `"legend":{"title":{"text":"Dataset"}}`)
}
