package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SteveKekacs/column-store-db/internal/catalog"
	"github.com/SteveKekacs/column-store-db/internal/dberrors"
)

func TestBinaryCodecRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	codec := &BinaryCodec{R: &buf, W: &buf}

	sent := Message{
		Status:   dberrors.Done(),
		Payload:  "ok",
		HasPrint: true,
		PrintPayload: PrintPayload{
			NumResults: 3,
			NumCols:    2,
		},
	}
	require.NoError(t, codec.WriteMessage(sent))

	got, err := codec.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, sent.Status.Code, got.Status.Code)
	assert.Equal(t, sent.Payload, got.Payload)
	assert.True(t, got.HasPrint)
	assert.Equal(t, sent.PrintPayload, got.PrintPayload)
}

func TestBinaryCodecRoundTripNoPrintPayload(t *testing.T) {
	var buf bytes.Buffer
	codec := &BinaryCodec{R: &buf, W: &buf}

	sent := Message{Status: dberrors.Fail(dberrors.ObjectDoesNotExist, "no such table"), Payload: ""}
	require.NoError(t, codec.WriteMessage(sent))

	got, err := codec.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, dberrors.ObjectDoesNotExist, got.Status.Code)
	assert.False(t, got.HasPrint)
}

func TestPrintResultsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	codec := &BinaryCodec{R: &buf, W: &buf}

	results := []*catalog.Result{
		catalog.IntResult([]int32{1, 2, 3}),
		catalog.LongResult([]int64{10, 20, 30}),
		catalog.FloatResult([]float64{1.5, 2.5, 3.5}),
	}
	require.NoError(t, codec.WritePrintResults(results))

	got, err := codec.ReadPrintResults(3, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, catalog.Int, got[0].DataType)
	assert.Equal(t, []int32{1, 2, 3}, got[0].Ints)
	assert.Equal(t, catalog.Long, got[1].DataType)
	assert.Equal(t, []int64{10, 20, 30}, got[1].Longs)
	assert.Equal(t, catalog.Float, got[2].DataType)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, got[2].Floats)
}
