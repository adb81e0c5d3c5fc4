// Package export renders tabular data as downloadable files.
package export

// Table is a header row plus data rows, all cells already formatted.
type Table struct {
	Header []string
	Rows   [][]string
}
