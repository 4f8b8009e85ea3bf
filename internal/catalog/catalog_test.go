package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDatabaseTableColumn(t *testing.T) {
	e := NewEngine()
	require.True(t, e.CreateDatabase("db1").Ok())
	require.True(t, e.CreateTable("t1", "db1", 4).Ok())
	require.True(t, e.CreateColumn("c1", "db1.t1").Ok())

	status := e.CreateDatabase("db1")
	assert.Equal(t, 5, int(status.Code)) // ObjectAlreadyExists

	col, err := e.ResolveColumn("db1.t1.c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", col.Name)
}

func TestCreateColumnRespectsTableCapacity(t *testing.T) {
	e := NewEngine()
	require.True(t, e.CreateDatabase("db1").Ok())
	require.True(t, e.CreateTable("t1", "db1", 1).Ok())
	require.True(t, e.CreateColumn("c1", "db1.t1").Ok())

	status := e.CreateColumn("c2", "db1.t1")
	assert.False(t, status.Ok())
	assert.Equal(t, "TABLE_AT_CAPACITY", status.Code.String())
}

func TestCreateClusteredIndexMarksEveryColumn(t *testing.T) {
	e := NewEngine()
	require.True(t, e.CreateDatabase("db1").Ok())
	require.True(t, e.CreateTable("t1", "db1", 2).Ok())
	require.True(t, e.CreateColumn("c1", "db1.t1").Ok())
	require.True(t, e.CreateColumn("c2", "db1.t1").Ok())

	require.True(t, e.CreateIndex("db1.t1.c1", "db1.t1", BTreeClustered).Ok())

	table, err := e.ResolveTable("db1.t1")
	require.NoError(t, err)
	for _, c := range table.Columns {
		assert.True(t, c.Clustered)
	}
}
