package persist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	db := catalog.NewDatabase("db1")
	table := catalog.NewTable("t1", 2)
	db.Tables = append(db.Tables, table)

	col1 := table.AddColumn("a")
	col1.SetIndexType(catalog.BTreeUnclustered, 16)
	for _, v := range []int32{5, 1, 3} {
		pos := col1.Append(v)
		col1.IndexValue(v, pos, true)
	}

	col2 := table.AddColumn("b")
	col2.SetIndexType(catalog.SortedUnclustered, 16)
	for _, v := range []int32{9, 8, 7} {
		pos := col2.Append(v)
		col2.IndexValue(v, pos, true)
	}
	table.Length = 3

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, db))

	loadedDB, loadedCat, err := Load(&buf)
	require.NoError(t, err)

	require.Len(t, loadedDB.Tables, 1)
	loadedTable := loadedDB.Tables[0]
	assert.Equal(t, "t1", loadedTable.Name)
	assert.Equal(t, 3, loadedTable.Length)

	loadedCol1 := loadedTable.Column("a")
	require.NotNil(t, loadedCol1)
	assert.Equal(t, []int32{5, 1, 3}, loadedCol1.Data)
	found := loadedCol1.Tree().Find(3)
	assert.Equal(t, []int32{2}, found)

	loadedCol2 := loadedTable.Column("b")
	require.NotNil(t, loadedCol2)
	assert.Equal(t, []int32{9, 8, 7}, loadedCol2.Data)
	assert.Equal(t, []int32{7, 8, 9}, loadedCol2.SortedIndex().Values)

	handle, ok := loadedCat.Lookup("db1.t1.a", catalog.ColumnKind)
	require.True(t, ok)
	assert.Equal(t, loadedCol1, handle.Column)
}
