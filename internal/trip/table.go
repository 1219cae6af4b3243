package trip

// Columns records which optional columns the source carried
type Columns struct {
	Gender    bool
	BirthYear bool
}

// Table is an immutable set of trips. Filtering returns a new Table and
// never touches the receiver
type Table struct {
	rows    []Trip
	columns Columns
}

// NewTable copies rows into a new Table
func NewTable(rows []Trip, cols Columns) *Table {
	own := make([]Trip, len(rows))
	copy(own, rows)
	return &Table{rows: own, columns: cols}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// At returns row i by value
func (t *Table) At(i int) Trip {
	return t.rows[i]
}

// Each calls fn for every row in load order
func (t *Table) Each(fn func(Trip)) {
	for _, r := range t.rows {
		fn(r)
	}
}

// HasGender reports whether the source had a gender column
func (t *Table) HasGender() bool {
	return t.columns.Gender
}

// HasBirthYear reports whether the source had a birth year column
func (t *Table) HasBirthYear() bool {
	return t.columns.BirthYear
}

// Where keeps rows for which keep returns true
func (t *Table) Where(keep func(Trip) bool) *Table {
	out := make([]Trip, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Table{rows: out, columns: t.columns}
}
