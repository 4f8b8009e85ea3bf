package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

func buildTable(t *testing.T, vals []int32, indexType catalog.IndexType) (*catalog.Table, *catalog.Column) {
	t.Helper()
	table := catalog.NewTable("t", 4)
	col := table.AddColumn("c")
	if indexType.Clustered() {
		table.MarkClustered()
	}
	col.SetIndexType(indexType, 64)
	for _, v := range vals {
		pos := col.Append(v)
		if indexType != catalog.NoIndex {
			col.IndexValue(v, pos, true)
		}
	}
	table.Length = len(vals)
	return table, col
}

func TestScanNoIndexFullRange(t *testing.T) {
	_, col := buildTable(t, []int32{5, 1, 3, 9, 3}, catalog.NoIndex)
	low, high := int32(3), int32(6)
	got := Scan(col, &low, &high)
	assert.ElementsMatch(t, []int32{0, 2, 4}, got)
}

func TestScanBTreeUnclustered(t *testing.T) {
	_, col := buildTable(t, []int32{5, 1, 3, 9, 3}, catalog.BTreeUnclustered)
	low, high := int32(3), int32(4)
	got := Scan(col, &low, &high)
	assert.ElementsMatch(t, []int32{2, 4}, got)
}

func TestScanSortedClustered(t *testing.T) {
	_, col := buildTable(t, []int32{1, 3, 3, 5, 9}, catalog.SortedClustered)
	low, high := int32(3), int32(6)
	got := Scan(col, &low, &high)
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestScanSortedClusteredExcludesHighBound(t *testing.T) {
	_, col := buildTable(t, []int32{1, 3, 3, 5, 9}, catalog.SortedClustered)
	low, high := int32(3), int32(5)
	got := Scan(col, &low, &high)
	assert.Equal(t, []int32{1, 2}, got)
}

func TestScanBTreeClusteredExcludesHighBound(t *testing.T) {
	_, col := buildTable(t, []int32{1, 3, 3, 5, 9}, catalog.BTreeClustered)
	low, high := int32(3), int32(5)
	got := Scan(col, &low, &high)
	assert.ElementsMatch(t, []int32{1, 2}, got)
}

func TestSelectFromPositionsExcludesHighBound(t *testing.T) {
	_, col := buildTable(t, []int32{1, 3, 5, 7, 9}, catalog.NoIndex)
	low, high := int32(3), int32(7)
	got := SelectFromPositions(col, []int32{0, 1, 2, 3, 4}, &low, &high)
	assert.ElementsMatch(t, []int32{1, 2}, got)
}

func TestSelectOnResultDispatchesOnPositions(t *testing.T) {
	_, col := buildTable(t, []int32{1, 3, 5, 7, 9}, catalog.NoIndex)
	low, high := int32(3), int32(9)

	whole := SelectOnResult(col, nil, &low, &high)
	assert.ElementsMatch(t, []int32{1, 2, 3}, whole.Positions)

	narrowed := SelectOnResult(col, catalog.PositionsResult([]int32{1, 2}), &low, &high)
	assert.ElementsMatch(t, []int32{1, 2}, narrowed.Positions)
}

func TestMinMaxTiesReported(t *testing.T) {
	vals := []int32{4, 1, 9, 1, 5}
	minVal, positions := MinMax(vals, false)
	assert.Equal(t, int32(1), minVal)
	assert.ElementsMatch(t, []int32{1, 3}, positions)

	maxVal, positions := MinMax(vals, true)
	assert.Equal(t, int32(9), maxVal)
	assert.Equal(t, []int32{2}, positions)
}

func TestSumAvg(t *testing.T) {
	vals := []int32{1, 2, 3, 4}
	assert.Equal(t, int64(10), Sum(vals))
	assert.InDelta(t, 2.5, Avg(vals), 0.0001)
}

func TestJoinNestedLoopFindsMatches(t *testing.T) {
	leftVals := []int32{1, 2, 3}
	leftPos := []int32{0, 1, 2}
	rightVals := []int32{2, 3, 3, 4}
	rightPos := []int32{0, 1, 2, 3}

	leftResult, rightResult := Join(leftVals, leftPos, rightVals, rightPos, NestedLoop)
	require.Len(t, leftResult, 3)
	require.Len(t, rightResult, 3)
}

func TestJoinGraceHashFindsMatches(t *testing.T) {
	leftVals := []int32{1, 2, 3}
	leftPos := []int32{0, 1, 2}
	rightVals := []int32{2, 3, 3, 4}
	rightPos := []int32{0, 1, 2, 3}

	leftResult, rightResult := Join(leftVals, leftPos, rightVals, rightPos, HashJoin)
	require.Len(t, leftResult, 3)
	require.Len(t, rightResult, 3)
}

func TestInsertAppendsWhenNoClusteredIndex(t *testing.T) {
	table := catalog.NewTable("t", 2)
	col1 := table.AddColumn("a")
	col2 := table.AddColumn("b")
	_ = col1
	_ = col2

	status := Insert(table, []int32{10, 20})
	require.True(t, status.Ok())
	status = Insert(table, []int32{5, 25})
	require.True(t, status.Ok())

	assert.Equal(t, []int32{10, 5}, table.Columns[0].Data)
	assert.Equal(t, []int32{20, 25}, table.Columns[1].Data)
}

func TestInsertRejectsPartiallyPopulatedTable(t *testing.T) {
	table := catalog.NewTable("t", 2)
	table.AddColumn("a")

	status := Insert(table, []int32{1})
	assert.False(t, status.Ok())
	assert.Equal(t, dberrors.QueryUnsupported, status.Code)
	assert.Equal(t, 0, table.Length)
}

func TestInsertShiftsIntoClusteredOrder(t *testing.T) {
	table := catalog.NewTable("t", 2)
	table.MarkClustered()
	col1 := table.AddColumn("a")
	col1.SetIndexType(catalog.SortedClustered, 64)
	table.AddColumn("b")

	require.True(t, Insert(table, []int32{10, 1}).Ok())
	require.True(t, Insert(table, []int32{30, 2}).Ok())
	require.True(t, Insert(table, []int32{20, 3}).Ok())

	assert.Equal(t, []int32{10, 20, 30}, table.Columns[0].Data)
	assert.Equal(t, []int32{1, 3, 2}, table.Columns[1].Data)
}

func TestDeleteRemovesRows(t *testing.T) {
	table := catalog.NewTable("t", 1)
	col := table.AddColumn("a")
	for _, v := range []int32{10, 20, 30} {
		col.Append(v)
	}
	table.Length = 3

	Delete(table, []int32{1})
	assert.Equal(t, []int32{10, 30}, table.Columns[0].Data)
	assert.Equal(t, 2, table.Length)
}

func TestUpdateIsDeleteThenInsert(t *testing.T) {
	table := catalog.NewTable("t", 2)
	colA := table.AddColumn("a")
	table.AddColumn("b")
	for i, v := range []int32{10, 20, 30} {
		colA.Append(v)
		table.Columns[1].Append(int32(i))
	}
	table.Length = 3

	Update(table, colA, []int32{1}, 99)

	assert.ElementsMatch(t, []int32{10, 30, 99}, table.Columns[0].Data)
	assert.Equal(t, 3, table.Length)
}

func TestPrintAcceptsConsistentRowCounts(t *testing.T) {
	a := catalog.IntResult([]int32{1, 2, 3})
	b := catalog.LongResult([]int64{10, 20, 30})
	out, err := Print([]*catalog.Result{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, len(out))
}

func TestPrintRejectsMismatchedRowCounts(t *testing.T) {
	a := catalog.IntResult([]int32{1, 2, 3})
	b := catalog.LongResult([]int64{10, 20})
	_, err := Print([]*catalog.Result{a, b})
	assert.Error(t, err)
}
