// Package executor implements the query operators that run against an
// open Engine: select/fetch/aggregate/join/insert/update/delete/print.
// Shared-scan batching lives separately in internal/batch, which does
// not call into this package.
package executor

import (
	"github.com/SteveKekacs/column-store-db/internal/catalog"
)

// Scan returns every row position of col whose value lies in the
// half-open range [low, high) (either bound may be nil for
// unbounded), dispatching on the column's index type exactly as
// execute_scan does: a sorted-unclustered companion index binary
// searches its own values array and returns the matching positions
// slice as-is; a sorted-clustered column binary searches the column's
// own data directly, since position equals array index; a clustered
// B+ tree resolves the range via FindPos on both edges and reports the
// run of sequential positions between them; an unclustered B+ tree
// asks FindPosRange for the matching positions directly; anything
// else falls back to a full linear scan.
func Scan(col *catalog.Column, low, high *int32) []int32 {
	switch col.IndexType {
	case catalog.SortedUnclustered:
		return scanSortedUnclustered(col, low, high)
	case catalog.SortedClustered:
		return scanSortedClustered(col, low, high)
	case catalog.BTreeClustered:
		return scanBTreeClustered(col, low, high)
	case catalog.BTreeUnclustered:
		return col.Tree().FindPosRange(low, high)
	default:
		return col.FullScanRange(valOr(low, 0), valOr(high, 0), low != nil, high != nil)
	}
}

func valOr(p *int32, def int32) int32 {
	if p == nil {
		return def
	}
	return *p
}

func scanSortedUnclustered(col *catalog.Column, low, high *int32) []int32 {
	idx := col.SortedIndex()
	return idx.Range(valOr(low, 0), valOr(high, 0), low != nil, high != nil)
}

// scanSortedClustered binary searches the column's own data array: the
// position of a matching row is its array index, so the result is the
// contiguous run [posMin, posMax).
func scanSortedClustered(col *catalog.Column, low, high *int32) []int32 {
	data := col.Data
	posMin := int32(0)
	if low != nil {
		posMin = int32(col.LowerBound(*low))
	}
	posMax := int32(len(data))
	if high != nil {
		posMax = int32(col.LowerBound(*high))
	}
	if posMax < posMin {
		return nil
	}
	out := make([]int32, 0, posMax-posMin)
	for p := posMin; p < posMax; p++ {
		out = append(out, p)
	}
	return out
}

// scanBTreeClustered resolves both edges with FindPos (min edge for
// low, max edge for high) and reports the sequential run between them,
// matching execute_scan's BTREE_CLUSTERED case. high is exclusive, so
// the upper edge is resolved the same way as the lower one - the
// position of the first entry whose value is not less than high -
// rather than FindPos's min=false (last occurrence) form.
func scanBTreeClustered(col *catalog.Column, low, high *int32) []int32 {
	tree := col.Tree()
	var posMin, posMax int32
	if low != nil {
		posMin = tree.FindPos(*low, true)
	} else {
		posMin = 0
	}
	if high != nil {
		posMax = tree.FindPos(*high, true)
	} else {
		posMax = int32(col.Size())
	}
	if posMax <= posMin {
		return nil
	}
	out := make([]int32, 0, posMax-posMin)
	for p := posMin; p < posMax; p++ {
		out = append(out, p)
	}
	return out
}

// SelectFromPositions filters an existing position list by col's value
// range via direct lookup - used when a select's input is itself a
// Result of positions rather than a whole column, matching
// execute_select_operator's RESULT-chandle_1 path. Range is half-open
// [low, high), matching Scan.
func SelectFromPositions(col *catalog.Column, positions []int32, low, high *int32) []int32 {
	var out []int32
	for _, p := range positions {
		v := col.Data[p]
		if low != nil && v < *low {
			continue
		}
		if high != nil && v >= *high {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SelectOnResult runs a select predicate over col, dispatching on
// whether positions names an existing position Result (the
// RESULT-handle form of execute_select_operator, filtered via
// SelectFromPositions) or is nil, meaning select the whole column via
// Scan.
func SelectOnResult(col *catalog.Column, positions *catalog.Result, low, high *int32) *catalog.Result {
	if positions == nil {
		return catalog.PositionsResult(Scan(col, low, high))
	}
	return catalog.PositionsResult(SelectFromPositions(col, positions.Positions, low, high))
}
