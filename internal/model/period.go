package model

// Months lists the selectable months in display order (Portuguese
// three-letter abbreviations, as used in the reporting files).
var Months = []string{
	"JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

// Years lists the selectable two-digit years.
var Years = []string{"24", "25", "26"}

// Selector defaults: first month, current year.
const (
	DefaultMonth = "JAN"
	DefaultYear  = "25"
)

// Period is the user-selected reporting window. It lives only inside a
// session and is never applied as a data filter.
type Period struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// DefaultPeriod is the period shown before the user picks anything.
func DefaultPeriod() Period {
	return Period{Month: DefaultMonth, Year: DefaultYear}
}

// TargetMonth renders the period in the MMM.YY form used across the
// reporting spreadsheets, e.g. "JAN.25".
func (p Period) TargetMonth() string {
	return p.Month + "." + p.Year
}

// ValidMonth reports whether m is one of the enumerated months.
func ValidMonth(m string) bool {
	for _, month := range Months {
		if month == m {
			return true
		}
	}
	return false
}

// ValidYear reports whether y is one of the enumerated years.
func ValidYear(y string) bool {
	for _, year := range Years {
		if year == y {
			return true
		}
	}
	return false
}
