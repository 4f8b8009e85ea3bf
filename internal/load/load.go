// Package load implements bulk row loading into an already-created
// table: growing every column's backing capacity up front, presorting
// by the table's primary sorted index column if it has one, and
// building every column's secondary index over the newly-added rows.
//
// Grounded on db_manager.c's handle_db_load. The parsing of incoming
// rows off a client socket is out of spec scope (spec.md ง5.1 names the
// wire parser as a non-goal); BulkAppend takes rows already decoded
// into memory.
package load

import (
	"sort"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

// BulkAppend adds rows (each a value per column, in table.Columns
// order) to table in one batch.
//
// If the table has a primary sorted column (SortedClustered or
// SortedUnclustered - matching handle_db_load's own primary_index_col
// check, which notably does not extend to BTreeClustered), the batch
// is sorted by that column's values before being written, so every
// column's rows land in a consistent physical order. Every indexed
// column then has its secondary index populated over the appended
// range: B+-tree and sorted-unclustered columns alike via repeated
// IndexValue calls (dontUpdate true, since the rows are already in
// final physical position and need no retroactive position shift),
// rather than the original's separate "sort then memcpy" pass for
// sorted-unclustered indexes. The presort is one sort.SliceStable over
// the batch's row order. Only the first row's arity is checked.
func BulkAppend(table *catalog.Table, rows [][]int32) dberrors.Status {
	if len(rows) == 0 {
		return dberrors.Done()
	}
	if len(rows[0]) != len(table.Columns) {
		return dberrors.Fail(dberrors.IncorrectFormat, "expected %d values per row, got %d", len(table.Columns), len(rows[0]))
	}

	numRows := len(rows)
	table.GrowIfNeeded(numRows)

	columnar := make([][]int32, len(table.Columns))
	for c := range table.Columns {
		columnar[c] = make([]int32, numRows)
		for r, row := range rows {
			columnar[c][r] = row[c]
		}
	}

	primaryCol := -1
	for i, col := range table.Columns {
		if col.IndexType == catalog.SortedClustered || col.IndexType == catalog.SortedUnclustered {
			primaryCol = i
			break
		}
	}

	if primaryCol >= 0 {
		order := make([]int, numRows)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return columnar[primaryCol][order[a]] < columnar[primaryCol][order[b]]
		})
		for c := range columnar {
			reordered := make([]int32, numRows)
			for i, src := range order {
				reordered[i] = columnar[c][src]
			}
			columnar[c] = reordered
		}
	}

	basePos := int32(table.Length)
	for i, col := range table.Columns {
		col.Data = append(col.Data, columnar[i]...)

		switch col.IndexType {
		case catalog.BTreeClustered, catalog.BTreeUnclustered:
			for j, val := range columnar[i] {
				col.IndexValue(val, basePos+int32(j), true)
			}
		case catalog.SortedUnclustered:
			for j, val := range columnar[i] {
				col.IndexValue(val, basePos+int32(j), true)
			}
		}
	}
	table.Length += numRows

	return dberrors.Done()
}
