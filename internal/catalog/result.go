package catalog

// Result is a named, client-scoped derived value: a list of row
// positions (DataType Int, used as a positions handle between
// operators) or a typed payload of int32/int64/float64 values produced
// by a fetch/aggregate/join operator.
type Result struct {
	DataType  DataType
	Positions []int32
	Ints      []int32
	Longs     []int64
	Floats    []float64
}

// NumTuples is the logical row count of whichever payload is populated.
func (r *Result) NumTuples() int {
	switch r.DataType {
	case Long:
		return len(r.Longs)
	case Float:
		return len(r.Floats)
	default:
		if r.Positions != nil {
			return len(r.Positions)
		}
		return len(r.Ints)
	}
}

// PositionsResult builds a Result carrying row positions (always Int
// typed, as the original treats position lists as plain int arrays).
func PositionsResult(positions []int32) *Result {
	return &Result{DataType: Int, Positions: positions}
}

// IntResult builds a Result carrying int32 values.
func IntResult(vals []int32) *Result {
	return &Result{DataType: Int, Ints: vals}
}

// LongResult builds a Result carrying int64 values (sum aggregates).
func LongResult(vals []int64) *Result {
	return &Result{DataType: Long, Longs: vals}
}

// FloatResult builds a Result carrying float64 values (avg aggregates).
func FloatResult(vals []float64) *Result {
	return &Result{DataType: Float, Floats: vals}
}
