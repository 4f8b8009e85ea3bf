package executor

import "github.com/SteveKekacs/column-store-db/internal/hashindex"

// JoinType selects the join algorithm, matching JoinOperator.type.
type JoinType int

const (
	NestedLoop JoinType = iota
	HashJoin
)

// Join dispatches to the requested algorithm, always running the
// smaller side as the build/inner side - matching
// exeucte_join_operator's right_smaller bookkeeping, which picks
// whichever side has fewer values before calling into the algorithm.
// HashJoin resolves to the grace hash join: the original's one-pass
// hash_join is gated behind a literal `if (0)` and is never reached,
// so it is not reproduced here (see DESIGN.md Open Question 2).
func Join(
	leftVals, leftPositions []int32,
	rightVals, rightPositions []int32,
	joinType JoinType,
) (leftResult, rightResult []int32) {
	switch joinType {
	case NestedLoop:
		if len(leftVals) <= len(rightVals) {
			small, big := nestedLoopJoin(leftVals, leftPositions, rightVals, rightPositions)
			return small, big
		}
		big, small := nestedLoopJoin(rightVals, rightPositions, leftVals, leftPositions)
		return small, big
	default:
		if len(leftVals) <= len(rightVals) {
			small, big := graceHashJoin(leftVals, leftPositions, rightVals, rightPositions)
			return small, big
		}
		big, small := graceHashJoin(rightVals, rightPositions, leftVals, leftPositions)
		return small, big
	}
}

// chunkSize is the number of ints that fit in a 4096-byte page,
// matching nested_loop_join's page-tiling blocking factor.
const chunkSize = 4096 / 4

// nestedLoopJoin runs a page-tiled nested loop with the bigger side as
// the outer loop, matching nested_loop_join exactly.
func nestedLoopJoin(
	smallerVals, smallerPositions []int32,
	biggerVals, biggerPositions []int32,
) (smallerResult, biggerResult []int32) {
	for biggerChunk := 0; biggerChunk < len(biggerVals); biggerChunk += chunkSize {
		for smallerChunk := 0; smallerChunk < len(smallerVals); smallerChunk += chunkSize {
			biggerEnd := min(biggerChunk+chunkSize, len(biggerVals))
			smallerEnd := min(smallerChunk+chunkSize, len(smallerVals))
			for biggerPos := biggerChunk; biggerPos < biggerEnd; biggerPos++ {
				for smallerPos := smallerChunk; smallerPos < smallerEnd; smallerPos++ {
					if biggerVals[biggerPos] == smallerVals[smallerPos] {
						biggerResult = append(biggerResult, biggerPositions[biggerPos])
						smallerResult = append(smallerResult, smallerPositions[smallerPos])
					}
				}
			}
		}
	}
	return smallerResult, biggerResult
}

// hashPartitions is the fan-out grace_hash_join partitions both sides
// into before running a one-pass hash join per partition.
const hashPartitions = 256

func hashPartition(val int32) int {
	return int(uint32(val)) % hashPartitions
}

// graceHashJoin partitions both sides by hashPartition(val) and runs a
// one-pass hash join (build on the smaller partition, probe with the
// bigger) within each partition, matching grace_hash_join.
func graceHashJoin(
	leftVals, leftPositions []int32,
	rightVals, rightPositions []int32,
) (leftResult, rightResult []int32) {
	leftPartVals := make([][]int32, hashPartitions)
	leftPartPos := make([][]int32, hashPartitions)
	rightPartVals := make([][]int32, hashPartitions)
	rightPartPos := make([][]int32, hashPartitions)

	for i, v := range leftVals {
		p := hashPartition(v)
		leftPartVals[p] = append(leftPartVals[p], v)
		leftPartPos[p] = append(leftPartPos[p], leftPositions[i])
	}
	for i, v := range rightVals {
		p := hashPartition(v)
		rightPartVals[p] = append(rightPartVals[p], v)
		rightPartPos[p] = append(rightPartPos[p], rightPositions[i])
	}

	for p := 0; p < hashPartitions; p++ {
		if len(leftPartVals[p]) < len(rightPartVals[p]) {
			sm, big := oneHashJoin(leftPartVals[p], leftPartPos[p], rightPartVals[p], rightPartPos[p])
			leftResult = append(leftResult, sm...)
			rightResult = append(rightResult, big...)
		} else {
			sm, big := oneHashJoin(rightPartVals[p], rightPartPos[p], leftPartVals[p], leftPartPos[p])
			rightResult = append(rightResult, sm...)
			leftResult = append(leftResult, big...)
		}
	}
	return leftResult, rightResult
}

// oneHashJoin builds an extendible hash table (internal/hashindex) on
// the smaller side and probes it with the bigger side, matching
// hash_join.
func oneHashJoin(
	smallerVals, smallerPositions []int32,
	biggerVals, biggerPositions []int32,
) (smallerResult, biggerResult []int32) {
	build := hashindex.New()
	for i, v := range smallerVals {
		build.Insert(v, smallerPositions[i])
	}

	for i, v := range biggerVals {
		for _, pos := range build.Probe(v) {
			smallerResult = append(smallerResult, pos)
			biggerResult = append(biggerResult, biggerPositions[i])
		}
	}
	return smallerResult, biggerResult
}
