package executor

import (
	"fmt"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
)

// Print validates that results are print-ready - every Result must
// report the same tuple count, matching execute_print_operator's
// num_results consistency check across fields - and returns them
// unchanged for internal/wire to serialize as data-type-tagged column
// buffers. The actual client-facing rendering (text/CSV, or the
// original's tagged-byte wire format) happens in internal/wire, not
// here: this operator's job ends at producing a consistent set of
// typed columns.
func Print(results []*catalog.Result) ([]*catalog.Result, error) {
	if len(results) == 0 {
		return results, nil
	}

	n := results[0].NumTuples()
	for _, r := range results[1:] {
		if r.NumTuples() != n {
			return nil, fmt.Errorf("executor: print results disagree on row count (%d vs %d)", n, r.NumTuples())
		}
	}
	return results, nil
}
