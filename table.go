package spectrumreader

// column labels

const (
	ColumnX = "x_values"
	ColumnY = "y_values"
)

// Row is one row of a Table.
type Row struct {
	X float64
	Y float64
}

// Table is a two-column view of a Series labeled ColumnX and ColumnY.
type Table struct {
	x, y     []float64
	warnings []Warning
}

// Project returns the table view of s.  An empty series yields an empty table carrying an EmptySeries warning.
func Project(s Series) Table {
	t := Table{x: s.X(), y: s.Y(), warnings: s.Warnings()}

	if s.Len() == 0 {
		t.warnings = append(t.warnings, Warning{Kind: WarnEmptySeries, Msg: "series has no points"})
	}

	return t
}

// Columns returns the column labels in order.
func (t Table) Columns() []string {
	return []string{ColumnX, ColumnY}
}

// Column returns a copy of the named column.
func (t Table) Column(name string) ([]float64, bool) {
	switch name {
	case ColumnX:
		return append([]float64(nil), t.x...), true
	case ColumnY:
		return append([]float64(nil), t.y...), true
	default:
		return nil, false
	}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.x)
}

// Row returns the i-th row.  It panics if i is out of range.
func (t Table) Row(i int) Row {
	return Row{X: t.x[i], Y: t.y[i]}
}

// Rows returns every row in order.
func (t Table) Rows() []Row {
	out := make([]Row, len(t.x))
	for i := range out {
		out[i] = t.Row(i)
	}

	return out
}

// Warnings returns the warnings of the projected series plus any raised by the projection.
func (t Table) Warnings() []Warning {
	return append([]Warning(nil), t.warnings...)
}
