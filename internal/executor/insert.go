package executor

import (
	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

// Insert adds one row (values, one per column in table.Columns order)
// to table, matching execute_insert: if the table's first column
// carries a clustered index, the row is binary-searched into sorted
// position and every column is shifted to match; otherwise the row is
// simply appended. Every indexed column is then told about its new
// value/position via IndexValue.
func Insert(table *catalog.Table, values []int32) dberrors.Status {
	if !table.AtCapacity() {
		return dberrors.Fail(dberrors.QueryUnsupported, "table %q is not fully populated (%d of %d columns created)", table.Name, len(table.Columns), table.ColCapacity)
	}
	if len(values) != len(table.Columns) {
		return dberrors.Fail(dberrors.IncorrectFormat, "expected %d values, got %d", len(table.Columns), len(values))
	}

	table.GrowIfNeeded(1)

	var insertPos *int32
	if first := table.Columns[0]; first.IndexType == catalog.SortedClustered || first.IndexType == catalog.BTreeClustered {
		pos := int32(first.LowerBound(values[0]))
		insertPos = &pos
	}

	for i, col := range table.Columns {
		var pos int32
		if insertPos == nil {
			pos = col.Append(values[i])
		} else {
			pos = *insertPos
			col.InsertAt(pos, values[i])
		}

		if col.IndexType != catalog.NoIndex {
			col.IndexValue(values[i], pos, false)
		}
	}
	table.Length++

	return dberrors.Done()
}
