package executor

import "github.com/SteveKekacs/column-store-db/internal/catalog"

// Fetch returns col's values at each of positions, in order, matching
// execute_fetch_operator. An empty positions slice yields an empty
// result rather than nil, mirroring the original's explicit
// zero-tuple/NULL-payload case.
func Fetch(col *catalog.Column, positions []int32) []int32 {
	out := make([]int32, len(positions))
	for i, p := range positions {
		out[i] = col.Data[p]
	}
	return out
}
