package parks

// Months is the ordered list of monthly score columns. Every component that
// needs the month list reads it from here.
var Months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// AverageLabel selects the derived AverageScore series.
const AverageLabel = "Average"

// Column names for the identifying fields.
const (
	ColumnPark      = "Park"
	ColumnName      = "Name"
	ColumnState     = "State"
	ColumnLatitude  = "Latitude"
	ColumnLongitude = "Longitude"
)

// Labels returns the selectable value series: the twelve months followed by
// AverageLabel.
func Labels() []string {
	labels := make([]string, 0, len(Months)+1)
	labels = append(labels, Months[:]...)
	return append(labels, AverageLabel)
}

// IsLabel reports whether label names a month or the average series.
func IsLabel(label string) bool {
	return monthIndex(label) >= 0 || label == AverageLabel
}

// RequiredColumns returns the required columns in canonical order. The name
// column is reported as "Park"; "Name" is accepted in its place.
func RequiredColumns() []string {
	cols := []string{ColumnPark, ColumnState, ColumnLatitude, ColumnLongitude}
	return append(cols, Months[:]...)
}

func monthIndex(label string) int {
	for i, m := range Months {
		if m == label {
			return i
		}
	}
	return -1
}
