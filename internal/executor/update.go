package executor

import "github.com/SteveKekacs/column-store-db/internal/catalog"

// Update overwrites updateCol's value at every row in positions with
// updateVal, implemented as delete-then-insert rather than an
// in-place write - matching exeucte_update_operator exactly: every
// affected row's full tuple (current values, with updateCol's value
// replaced) is captured first, the rows are deleted as a batch, and
// each captured tuple is then re-inserted through the normal insert
// path so clustered ordering and every secondary index stay correct.
func Update(table *catalog.Table, updateCol *catalog.Column, positions []int32, updateVal int32) {
	rows := make([][]int32, len(positions))
	for i, pos := range positions {
		row := make([]int32, len(table.Columns))
		for c, col := range table.Columns {
			if col == updateCol {
				row[c] = updateVal
			} else {
				row[c] = col.Data[pos]
			}
		}
		rows[i] = row
	}

	Delete(table, positions)

	for _, row := range rows {
		Insert(table, row)
	}
}
