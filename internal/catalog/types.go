package catalog

// DataType is the runtime type tag of a Result's payload. Base column
// data is always Int; derived results may widen to Long or Float.
type DataType int

const (
	Int DataType = iota
	Long
	Float
)

func (d DataType) String() string {
	switch d {
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	default:
		return "UNKNOWN"
	}
}

// IndexType names the kind of secondary structure, if any, maintained
// alongside a column's base data.
type IndexType int

const (
	NoIndex IndexType = iota
	BTreeClustered
	BTreeUnclustered
	SortedClustered
	SortedUnclustered
)

func (i IndexType) String() string {
	switch i {
	case NoIndex:
		return "NONE"
	case BTreeClustered:
		return "BTREE_CLUSTERED"
	case BTreeUnclustered:
		return "BTREE_UNCLUSTERED"
	case SortedClustered:
		return "SORTED_CLUSTERED"
	case SortedUnclustered:
		return "SORTED_UNCLUSTERED"
	default:
		return "UNKNOWN"
	}
}

// Clustered reports whether an index type designates the table's
// physically-sorted column.
func (i IndexType) Clustered() bool {
	return i == BTreeClustered || i == SortedClustered
}

// ObjectKind distinguishes the kinds of object the catalog can resolve
// a qualified name to.
type ObjectKind int

const (
	DatabaseKind ObjectKind = iota
	TableKind
	ColumnKind
	ResultKind
)
