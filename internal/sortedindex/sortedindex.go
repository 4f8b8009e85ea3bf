// Package sortedindex implements the sorted-unclustered companion-array
// index: a secondary index kept as two parallel sorted-by-value arrays
// (values, positions) rather than a tree, appropriate for columns that
// are written once (via bulk load) and read many times.
package sortedindex

import "github.com/SteveKekacs/column-store-db/internal/sorted"

// Index is a sorted-unclustered secondary index: Values is sorted
// ascending, and Positions[i] is the row position (in the owning
// column's base data) of Values[i].
type Index struct {
	Values    []int32
	Positions []int32
}

// New creates an empty index with capacity pre-reserved, matching the
// original's up-front allocation sized to the table's length capacity.
func New(capacityHint int) *Index {
	idx := &Index{}
	idx.Init(capacityHint)
	return idx
}

func (idx *Index) Init(capacityHint int) {
	idx.Values = make([]int32, 0, capacityHint)
	idx.Positions = make([]int32, 0, capacityHint)
}

// Insert places val (whose row is pos) into the index in sorted order.
// When clustered is true, every stored position greater than or equal
// to pos is first incremented by one, because a clustered insert
// physically shifts every later row of the base column down by one slot
// and this index's Positions must track that shift (see DESIGN.md Open
// Question 3 for why this fires for the index's own column regardless
// of which column in the table is the designated clustered column).
func (idx *Index) Insert(val, pos int32, clustered bool) {
	if clustered {
		for i, p := range idx.Positions {
			if p >= pos {
				idx.Positions[i]++
			}
		}
	}

	insertPos := sorted.LowerBound(idx.Values, val)

	idx.Values = sorted.InsertAt(idx.Values, insertPos, val)
	idx.Positions = sorted.InsertAt(idx.Positions, insertPos, pos)
}

// Remove deletes the entry whose row position equals pos, shifting
// remaining positions down to account for the row's removal from the
// base column.
func (idx *Index) Remove(pos int32) {
	slot := -1
	for i, p := range idx.Positions {
		if p == pos {
			slot = i
			break
		}
	}
	if slot == -1 {
		return
	}
	idx.Values, idx.Positions = sorted.RemoveAtAndShift(idx.Values, idx.Positions, slot)
}

// Range returns the row positions whose value lies within [low, high)
// (low inclusive, high exclusive; hasLow/hasHigh false means unbounded
// on that side).
func (idx *Index) Range(low, high int32, hasLow, hasHigh bool) []int32 {
	start := 0
	if hasLow {
		start = sorted.LowerBound(idx.Values, low)
	}
	end := len(idx.Values)
	if hasHigh {
		end = sorted.LowerBound(idx.Values, high)
	}
	if start >= end {
		return nil
	}
	out := make([]int32, end-start)
	copy(out, idx.Positions[start:end])
	return out
}
