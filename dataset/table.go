package dataset

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Table ordered collection of trips loaded from a city file
// + columns: names of the source columns, in file order
// + rows: trips in file order
type Table struct {
	columns []string
	rows    []*trip.TripData
}

func NewTable(columns []string, rows []*trip.TripData) *Table {
	return &Table{
		columns: columns,
		rows:    rows,
	}
}

// HasField returns true if the table has a column called name, either from
// the source file or derived at load time
func (t *Table) HasField(name string) bool {
	return utils.ContainsString(name, t.columns) || utils.ContainsString(name, trip.DerivedColumns())
}

// Columns returns the source columns followed by the derived ones
func (t *Table) Columns() []string {
	columns := append([]string{}, t.columns...)
	return append(columns, trip.DerivedColumns()...)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Rows() []*trip.TripData {
	return t.rows
}

// Record returns every cell of row, source values followed by derived values
func (t *Table) Record(row *trip.TripData) []string {
	record := append([]string{}, row.Values...)
	return append(record, row.DerivedValues()...)
}

// Filter returns a new table with the rows that satisfy predicate, keeping their order
func (t *Table) Filter(predicate func(*trip.TripData) bool) *Table {
	var rows []*trip.TripData
	for _, row := range t.rows {
		if predicate(row) {
			rows = append(rows, row)
		}
	}
	return NewTable(t.columns, rows)
}

// Page returns the rows in [offset, offset+size). Fewer rows are returned at the end of the table
func (t *Table) Page(offset int, size int) []*trip.TripData {
	if offset < 0 || offset >= len(t.rows) || size <= 0 {
		return nil
	}
	end := min(offset+size, len(t.rows))
	return t.rows[offset:end]
}
