package table

// Row is a mapping from column name to scalar or opaque structured value.
// Absent fields hold nil, the null sentinel.
type Row map[string]any

// Table is an ordered sequence of rows sharing a common column set - the
// union of fields seen across contributing records. It is the only long-lived
// output of a pipeline run and is owned by the caller.
type Table struct {
	// column names in deterministic (sorted) order
	Columns []string
	// rows in record order
	Rows []Row
	// number of malformed records skipped during extraction
	SkipCount int
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Empty reports whether zero records survived filtering. This is an
// observable property of the result, not an error - strict mode escalates it
// at build time instead.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the value at the given row and column, nil if absent
func (t *Table) Cell(row int, column string) any {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	return t.Rows[row][column]
}
