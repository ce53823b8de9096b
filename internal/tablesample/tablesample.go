// Package tablesample holds a small in-memory result view used for
// introspection output: ordered columns, string-rendered rows.
package tablesample

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableSample is an ordered set of named columns with row values.
type TableSample struct {
	columns []string
	rows    [][]string
}

// New creates an empty TableSample with the given column names.
func New(columns ...string) *TableSample {
	return &TableSample{columns: columns}
}

// Append adds one row. Short rows are padded with empty cells.
func (t *TableSample) Append(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Columns returns the column names.
func (t *TableSample) Columns() []string { return t.columns }

// Rows returns all rows.
func (t *TableSample) Rows() [][]string { return t.rows }

// Len returns the row count.
func (t *TableSample) Len() int { return len(t.rows) }

// Render writes the sample as an ASCII table.
func (t *TableSample) Render(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.columns)
	for _, row := range t.rows {
		tw.Append(row)
	}
	tw.Render()
}
