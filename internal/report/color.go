package report

import (
	"strconv"

	"github.com/fatih/color"
)

// Shared color printers.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorFaint  = color.New(color.Faint)
	colorBold   = color.New(color.Bold)
)

// Score bands used by ColorScore.
const (
	GoodScore = 7.0
	FairScore = 4.0
)

// ColorScore colors a formatted score: green at GoodScore and above,
// yellow from FairScore, red below. Unparseable values are dimmed.
func ColorScore(val string) string {
	v, err := strconv.ParseFloat(val, 64)
	switch {
	case err != nil:
		return colorFaint.Sprint(val)
	case v >= GoodScore:
		return colorGreen.Sprint(val)
	case v >= FairScore:
		return colorYellow.Sprint(val)
	default:
		return colorRed.Sprint(val)
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
