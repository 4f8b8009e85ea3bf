package executor

import "github.com/SteveKekacs/column-store-db/internal/catalog"

// Delete removes every row in positions from table, matching
// execute_delete: for each column, each position's value is looked up,
// the base data is shifted down over the removed slot, and the
// column's secondary index (if any) is told to drop that position too.
//
// positions must be in ascending order with no duplicates, as with the
// original - deleting out of order or shifting the same row twice
// would corrupt later positions. They are removed from the highest
// down, so each removal leaves the lower positions still to be removed
// where they were.
func Delete(table *catalog.Table, positions []int32) {
	for _, col := range table.Columns {
		for i := len(positions) - 1; i >= 0; i-- {
			pos := positions[i]
			val := col.Data[pos]
			col.RemoveAt(pos)
			if col.IndexType != catalog.NoIndex {
				col.RemoveIndexValue(val, pos)
			}
		}
	}
	table.Length -= len(positions)
}
