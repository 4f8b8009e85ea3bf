package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEvaluatesEachComparatorIndependently(t *testing.T) {
	data := []int32{1, 5, 10, 15, 20}
	comparators := []Comparator{
		{HasLow: true, Low: 5, HasHigh: true, High: 15}, // [5,15)
		{HasLow: true, Low: 10, HasHigh: false},          // [10, +inf)
	}

	results := Run(data, nil, comparators)
	require.Len(t, results, 2)
	assert.Equal(t, []int32{1, 2}, results[0])
	assert.Equal(t, []int32{2, 3, 4}, results[1])
}

func TestRunSkipsValuesOutsideGlobalEnvelope(t *testing.T) {
	data := []int32{-100, 5, 100}
	comparators := []Comparator{
		{HasLow: true, Low: 0, HasHigh: true, High: 10},
	}
	results := Run(data, nil, comparators)
	assert.Equal(t, []int32{1}, results[0])
}

func TestRunParallelMatchesSerial(t *testing.T) {
	data := make([]int32, 1000)
	for i := range data {
		data[i] = int32(i % 50)
	}
	comparators := []Comparator{
		{HasLow: true, Low: 10, HasHigh: true, High: 20},
	}

	serial := Run(data, nil, comparators)
	parallel, err := RunParallel(context.Background(), data, nil, comparators, 64)
	require.NoError(t, err)
	assert.Equal(t, serial[0], parallel[0])
}
