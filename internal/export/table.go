// Package export renders datasets as CSV files and Excel workbooks.
package export

import "fmt"

// Table is one dataset ready to be written: a sheet name, a header row and
// the data rows. Cells keep their Go type so the workbook stores numbers as numbers.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]any
}

// cellText is the textual form of a cell, used by CSV and for column sizing.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
