package executor

// MinMax scans vals and returns the minimum (or maximum, when findMax
// is true) value along with the positions (indices into vals) of every
// tie for that extreme - grounded on execute_min_max_operator's dual
// behavior: a plain min/max caller only wants the value, while a
// select-by-extreme caller also wants every position that matched,
// resetting the position list whenever a strictly better value is
// found.
func MinMax(vals []int32, findMax bool) (best int32, positions []int32) {
	if len(vals) == 0 {
		return 0, nil
	}
	best = vals[0]
	positions = []int32{0}
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		switch {
		case (findMax && v > best) || (!findMax && v < best):
			best = v
			positions = []int32{int32(i)}
		case v == best:
			positions = append(positions, int32(i))
		}
	}
	return best, positions
}

// Sum totals vals as a 64-bit accumulator, matching
// execute_sum_avg_operator's SUM case.
func Sum(vals []int32) int64 {
	var total int64
	for _, v := range vals {
		total += int64(v)
	}
	return total
}

// Avg returns the mean of vals as a float64, matching
// execute_sum_avg_operator's AVG case. Returns 0 for an empty input.
func Avg(vals []int32) float64 {
	if len(vals) == 0 {
		return 0
	}
	return float64(Sum(vals)) / float64(len(vals))
}

// AddSub returns the elementwise sum (or difference, when subtract is
// true) of a and b, matching execute_add_sub_operator. Both inputs
// must have equal length.
func AddSub(a, b []int32, subtract bool) []int32 {
	out := make([]int32, len(a))
	for i := range a {
		if subtract {
			out[i] = a[i] - b[i]
		} else {
			out[i] = a[i] + b[i]
		}
	}
	return out
}
