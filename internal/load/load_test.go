package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
)

func TestBulkAppendPresortsByPrimarySortedColumn(t *testing.T) {
	table := catalog.NewTable("t", 2)
	colA := table.AddColumn("a")
	colA.SetIndexType(catalog.SortedClustered, 16)
	table.MarkClustered()
	colB := table.AddColumn("b")

	rows := [][]int32{
		{30, 1},
		{10, 2},
		{20, 3},
	}

	status := BulkAppend(table, rows)
	require.True(t, status.Ok())

	assert.Equal(t, []int32{10, 20, 30}, colA.Data)
	assert.Equal(t, []int32{2, 3, 1}, colB.Data)
	assert.Equal(t, 3, table.Length)
}

func TestBulkAppendBuildsBTreeIndex(t *testing.T) {
	table := catalog.NewTable("t", 1)
	col := table.AddColumn("a")
	col.SetIndexType(catalog.BTreeUnclustered, 16)

	rows := [][]int32{{5}, {1}, {3}}
	require.True(t, BulkAppend(table, rows).Ok())

	positions := col.Tree().Find(3)
	assert.Equal(t, []int32{2}, positions)
}

func TestBulkAppendRejectsWrongArity(t *testing.T) {
	table := catalog.NewTable("t", 2)
	table.AddColumn("a")
	table.AddColumn("b")

	status := BulkAppend(table, [][]int32{{1}})
	assert.False(t, status.Ok())
}
