package bptree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFind(t *testing.T) {
	tree := New()
	for i := int32(0); i < 2000; i++ {
		tree.Insert(i%50, i, false)
	}

	positions := tree.Find(7)
	assert.Len(t, positions, 40)
	for _, p := range positions {
		assert.Equal(t, int32(7), p%50)
	}
}

func TestFindPosRangeCoversAllMatches(t *testing.T) {
	tree := New()
	for i := int32(0); i < 1000; i++ {
		tree.Insert(i, i, false)
	}

	min, max := int32(10), int32(20)
	positions := tree.FindPosRange(&min, &max)
	assert.Len(t, positions, 10)
	assert.Equal(t, int32(10), positions[0])
	assert.Equal(t, int32(19), positions[len(positions)-1])
}

// TestFindPosOutOfRangeFallsBackToEdge exercises DESIGN.md Open Question
// 1: a value past every leaf's range degrades to one past the edge
// leaf's last position instead of erroring, so an out-of-range upper
// bound still yields "scan through the end of the data".
func TestFindPosOutOfRangeFallsBackToEdge(t *testing.T) {
	tree := New()
	for i := int32(0); i < 600; i++ {
		tree.Insert(i, i, false)
	}

	pos := tree.FindPos(100000, false)
	assert.Equal(t, int32(600), pos)
}

func TestRemoveShiftsTrailingPositions(t *testing.T) {
	tree := New()
	for i := int32(0); i < 10; i++ {
		tree.Insert(i, i, false)
	}

	tree.Remove(3, 3)

	positions := tree.Find(9)
	require.Len(t, positions, 1)
	assert.Equal(t, int32(8), positions[0])
}

func TestDumpLoadRoundTrip(t *testing.T) {
	tree := New()
	for i := int32(0); i < 3000; i++ {
		tree.Insert(i%97, i, false)
	}

	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, tree.Find(42), loaded.Find(42))
	min, max := int32(0), int32(96)
	assert.Equal(t, tree.FindPosRange(&min, &max), loaded.FindPosRange(&min, &max))
}
