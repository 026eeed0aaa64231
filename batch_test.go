package s1l0

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// bypassRow10 is the 8-byte bypass-encoded payload for 1 quad, sign=1
// magnitude=1 on every channel, decoding to (-1-1i, -1-1i) per row (the
// same fixture verified in TestDecodeBypassSignMagnitude).
var bypassRow10 = []byte{0x80, 0x40, 0x80, 0x40, 0x80, 0x40, 0x80, 0x40}

func bypassTable(nRows int) *MetadataTable {
	buf := make([]byte, 0, nRows*len(bypassRow10))
	rows := make([]PacketMetadata, nRows)

	for i := 0; i < nRows; i++ {
		offset := int64(len(buf))
		buf = append(buf, bypassRow10...)

		rows[i] = PacketMetadata{
			Index: i,
			Secondary: RawSecondaryHeader{
				BAQMode:  uint8(BaqBypass),
				NumQuads: 1,
			},
			PayloadOffset: offset,
			PayloadLength: len(bypassRow10),
		}
	}

	return &MetadataTable{rows: rows, buf: buf}
}

func TestDecodeSelectionShapeAndValues(t *testing.T) {
	table := bypassTable(3)

	matrix, rowErrors, err := DecodeSelection(context.Background(), table, []int{0, 1, 2}, 0)
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Equal(t, 3, matrix.Rows)
	require.Equal(t, 2, matrix.Cols)

	want := complex(float32(-1), float32(-1))
	for i := 0; i < matrix.Rows; i++ {
		for _, v := range matrix.Row(i) {
			require.Equal(t, want, v)
		}
	}
}

func TestDecodeSelectionOrderingIndependentOfCompletion(t *testing.T) {
	// Output row i must correspond to indices[i] regardless of which
	// packet's task happens to finish first (spec.md §8 property 8).
	table := bypassTable(5)
	// give packet k an IE magnitude of k+1 (sign=1) so every row is distinct.
	for k := 0; k < 5; k++ {
		binary.BigEndian.PutUint16(table.buf[k*len(bypassRow10):], 0x8000|uint16(k+1)<<6)
	}

	indices := []int{4, 3, 2, 1, 0}
	matrix, rowErrors, err := DecodeSelection(context.Background(), table, indices, 1)
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Equal(t, 5, matrix.Rows)

	for i := 0; i < matrix.Rows; i++ {
		want := complex(-float32(indices[i]+1), float32(-1))
		require.Equal(t, want, matrix.Row(i)[0])
	}
}

func TestDecodeSelectionEmpty(t *testing.T) {
	table := bypassTable(1)
	matrix, rowErrors, err := DecodeSelection(context.Background(), table, nil, 0)
	require.NoError(t, err)
	require.Nil(t, rowErrors)
	require.Equal(t, 0, matrix.Rows)
}

func TestDecodeSelectionInconsistentNumQuads(t *testing.T) {
	table := bypassTable(2)
	table.rows[1].Secondary.NumQuads = 2

	_, _, err := DecodeSelection(context.Background(), table, []int{0, 1}, 0)
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrInconsistentChunk, decErr.Kind)
}

func TestDecodeSelectionUnsupportedBaqReportedAsRowError(t *testing.T) {
	table := bypassTable(2)
	table.rows[1].Secondary.BAQMode = uint8(Baq3Bit)

	matrix, rowErrors, err := DecodeSelection(context.Background(), table, []int{0, 1}, 0)
	require.NoError(t, err)
	require.Len(t, rowErrors, 1)
	require.Equal(t, 1, rowErrors[0].Row)

	var decErr *DecodeError
	require.ErrorAs(t, rowErrors[0].Err, &decErr)
	require.Equal(t, ErrUnsupportedBaq, decErr.Kind)

	// the failed row stays zeroed; the successful row still decoded.
	require.Equal(t, complex(float32(-1), float32(-1)), matrix.Row(0)[0])
	require.Equal(t, complex64(0), matrix.Row(1)[0])
}
