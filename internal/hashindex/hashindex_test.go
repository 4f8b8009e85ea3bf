package hashindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndProbe(t *testing.T) {
	table := New()
	for i := int32(0); i < 5000; i++ {
		table.Insert(i, i*10)
	}

	for i := int32(0); i < 5000; i++ {
		vals := table.Probe(i)
		assert.Equal(t, []int32{i * 10}, vals)
	}
}

func TestProbeMissingKeyReturnsNil(t *testing.T) {
	table := New()
	table.Insert(1, 100)
	assert.Nil(t, table.Probe(999))
}

func TestProbeToleratesDuplicateKeys(t *testing.T) {
	table := New()
	table.Insert(7, 1)
	table.Insert(7, 2)
	table.Insert(7, 3)

	vals := table.Probe(7)
	assert.ElementsMatch(t, []int32{1, 2, 3}, vals)
}

func TestDirectoryGrowsUnderLoad(t *testing.T) {
	table := New()
	for i := int32(0); i < 20000; i++ {
		table.Insert(i, i)
	}
	assert.Greater(t, table.numBits, initialNumBits)
	for _, b := range table.buckets {
		assert.LessOrEqual(t, len(b.keys), BucketSize)
	}
}
