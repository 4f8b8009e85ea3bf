package catalog

// InitialTableLengthCapacity mirrors db_manager.c's
// INITIAL_TABLE_LENGTH_CAPACITY - the row capacity a table's columns
// start with before any doubling.
const InitialTableLengthCapacity = 100000

// Table is a fixed set of equal-length columns. At most one column may
// be clustered (the data model's row-alignment invariant requires every
// column to agree on physical row order, which only one sort order can
// satisfy at a time).
type Table struct {
	Name           string
	Columns        []*Column
	ColCapacity    int
	Length         int
	LengthCapacity int
}

// NewTable creates a table with room for colCapacity columns.
func NewTable(name string, colCapacity int) *Table {
	t := &Table{}
	t.Init(name, colCapacity)
	return t
}

func (t *Table) Init(name string, colCapacity int) {
	t.Name = name
	t.ColCapacity = colCapacity
	t.Columns = make([]*Column, 0, colCapacity)
	t.LengthCapacity = InitialTableLengthCapacity
}

// AtCapacity reports whether every reserved column slot is used.
func (t *Table) AtCapacity() bool {
	return len(t.Columns) >= t.ColCapacity
}

// AddColumn appends a new, empty column, matching the per-column
// capacity the original allocates at create_column time.
func (t *Table) AddColumn(name string) *Column {
	col := NewColumn(name, InitialTableLengthCapacity)
	t.Columns = append(t.Columns, col)
	return col
}

// Column looks up one of the table's columns by unqualified name.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ClusteredColumn returns the table's clustered column, if any.
func (t *Table) ClusteredColumn() *Column {
	for _, c := range t.Columns {
		if c.IndexType.Clustered() {
			return c
		}
	}
	return nil
}

// GrowIfNeeded doubles LengthCapacity (and every column's backing
// capacity) until it can hold numRows additional rows beyond Length,
// matching handle_db_load's capacity-doubling loop.
func (t *Table) GrowIfNeeded(numRows int) {
	needed := t.Length + numRows
	if needed <= t.LengthCapacity {
		return
	}
	for needed > t.LengthCapacity {
		t.LengthCapacity *= 2
	}
	for _, c := range t.Columns {
		grown := make([]int32, len(c.Data), t.LengthCapacity)
		copy(grown, c.Data)
		c.Data = grown
	}
}

// MarkClustered sets Clustered on every column of the table - see
// DESIGN.md Open Question 3 and CreateIndex.
func (t *Table) MarkClustered() {
	for _, c := range t.Columns {
		c.Clustered = true
	}
}
