package catalog

import (
	"github.com/SteveKekacs/column-store-db/internal/bptree"
	"github.com/SteveKekacs/column-store-db/internal/hashindex"
	"github.com/SteveKekacs/column-store-db/internal/sorted"
	"github.com/SteveKekacs/column-store-db/internal/sortedindex"
)

// Column is a fixed-type (int32) base data array plus an optional
// secondary index. Clustered is set on every column of a table the
// moment any one column of that table gets a clustered index (see
// DESIGN.md Open Question 3) - it is a table-wide flag, not a
// per-column designation, even though at most one column is actually
// the table's clustered column.
type Column struct {
	Name      string
	Data      []int32
	IndexType IndexType
	Clustered bool

	btree  *bptree.Tree
	sorted *sortedindex.Index
	hash   *hashindex.Table
}

// NewColumn creates an empty column with capacity pre-reserved.
func NewColumn(name string, capacityHint int) *Column {
	c := &Column{}
	c.Init(name, capacityHint)
	return c
}

func (c *Column) Init(name string, capacityHint int) {
	c.Name = name
	c.Data = make([]int32, 0, capacityHint)
	c.IndexType = NoIndex
}

// Size is the column's current logical length.
func (c *Column) Size() int { return len(c.Data) }

// SetIndexType installs (or removes) a secondary index, matching
// create_idx: a SortedUnclustered index gets its own companion array,
// B+ tree variants get a fresh tree, and anything else clears the
// index entirely.
func (c *Column) SetIndexType(t IndexType, capacityHint int) {
	c.IndexType = t
	switch t {
	case SortedUnclustered:
		c.sorted = sortedindex.New(capacityHint)
		c.btree = nil
	case BTreeClustered, BTreeUnclustered:
		c.btree = bptree.New()
		c.sorted = nil
	default:
		c.sorted = nil
		c.btree = nil
	}
}

// Append adds val as a new row at the end of the column's base data,
// and returns the row's position.
func (c *Column) Append(val int32) int32 {
	pos := int32(len(c.Data))
	c.Data = append(c.Data, val)
	return pos
}

// InsertAt inserts val into the column's base data at pos, shifting
// every later row up by one - matches insert_at_pos, used when the
// table has a clustered column and a new row must land in sorted
// order rather than at the end.
func (c *Column) InsertAt(pos int32, val int32) {
	c.Data = append(c.Data, 0)
	copy(c.Data[pos+1:], c.Data[pos:len(c.Data)-1])
	c.Data[pos] = val
}

// RemoveAt deletes the row at pos from the column's base data,
// shifting every later row down by one - matches execute_delete's
// per-column shift loop.
func (c *Column) RemoveAt(pos int32) {
	copy(c.Data[pos:], c.Data[pos+1:])
	c.Data = c.Data[:len(c.Data)-1]
}

// IndexValue inserts (val, pos) into the column's secondary index, if
// any. dontUpdate suppresses the clustered-shift position bump - used
// by bulk load, which builds indexes only after all rows are already
// in final physical order, so there is nothing to shift.
//
// Grounded on index.c's index_value and its shared bplus_insert call.
// A clustered B+ tree column also gets the shift: executor.Insert
// places a new row at its sorted position, so rows after it move down
// one slot and their stored positions must follow.
func (c *Column) IndexValue(val, pos int32, dontUpdate bool) {
	switch c.IndexType {
	case BTreeUnclustered:
		updateVals := !dontUpdate && c.Clustered && int(pos) != c.Size()
		c.btree.Insert(val, pos, updateVals)
	case BTreeClustered:
		c.btree.Insert(val, pos, !dontUpdate)
	case SortedUnclustered:
		c.sorted.Insert(val, pos, c.Clustered && !dontUpdate)
	}
}

// RemoveIndexValue removes val/pos from the column's secondary index.
func (c *Column) RemoveIndexValue(val, pos int32) {
	switch c.IndexType {
	case BTreeClustered, BTreeUnclustered:
		c.btree.Remove(val, pos)
	case SortedUnclustered:
		c.sorted.Remove(pos)
	}
}

// Tree exposes the column's B+ tree index (nil if it has none), for
// executor range scans.
func (c *Column) Tree() *bptree.Tree { return c.btree }

// AttachTree installs a tree built elsewhere (by internal/persist,
// reloading a dump) as the column's B+ tree index.
func (c *Column) AttachTree(t *bptree.Tree) { c.btree = t }

// SortedIndex exposes the column's sorted-unclustered index (nil if it
// has none).
func (c *Column) SortedIndex() *sortedindex.Index { return c.sorted }

// FullScanRange returns every row position whose value lies in
// [low, high) via a linear scan - used for NoIndex columns.
func (c *Column) FullScanRange(low, high int32, hasLow, hasHigh bool) []int32 {
	var out []int32
	for i, v := range c.Data {
		if hasLow && v < low {
			continue
		}
		if hasHigh && v >= high {
			continue
		}
		out = append(out, int32(i))
	}
	return out
}

// LowerBound is exposed for callers (e.g. bulk load) that need to find
// an insertion point in an already-sorted clustered column without
// going through a secondary index.
func (c *Column) LowerBound(val int32) int {
	return sorted.LowerBound(c.Data, val)
}
