package s1l0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalHuffmanTablesFullyCover(t *testing.T) {
	// spec.md §8 property 6: every BRC's code lengths form a complete
	// prefix code, so its flat lookup table has no unassigned (invalid)
	// slot anywhere in its 2^maxlen span.
	for brc := 0; brc < fdbaqBRCCount; brc++ {
		table := brcLookup[brc]
		require.Len(t, table, 1<<uint(brcMaxCodeLength[brc]))

		for i, entry := range table {
			require.True(t, entry.Valid, "brc %d: slot %d has no assigned codeword", brc, i)
			require.LessOrEqual(t, int(entry.CodeLen), brcMaxCodeLength[brc])
			require.Less(t, int(entry.Magnitude), brcAlphabetSize[brc])
		}
	}
}

func TestCanonicalCodesAreShortestFirst(t *testing.T) {
	// The smallest (most probable) magnitude symbol always gets the
	// shortest codeword; BRC 0's alphabet {0,1,2,3} has lengths {1,2,3,3}.
	codes := canonicalCodes(brcCodeLengths[0])
	require.Len(t, codes, 4)
	require.Equal(t, uint32(0), codes[0])
	require.Equal(t, uint32(2), codes[1])
	require.Equal(t, uint32(6), codes[2])
	require.Equal(t, uint32(7), codes[3])
}

func TestDecodeHuffmanBlockBRC0(t *testing.T) {
	// Bitstream "00101000": symbol0 (code "0") + sign 0, then symbol1
	// (code "10") + sign 1, padded with trailing zero bits.
	r := NewBitReader([]byte{0x28})
	out := make([]float32, 2)

	err := decodeHuffmanBlock(r, 0, 0, out)
	require.NoError(t, err)
	require.Equal(t, float32(0), out[0])
	require.Equal(t, float32(-1), out[1])
}

func TestDecodeHuffmanBlockOverflow(t *testing.T) {
	// An all-ones stream of only 8 bits can never resolve a BRC-4 codeword:
	// the prefix 11111111 needs a 9th bit (max length 9), so the block must
	// report a Huffman overflow error.
	r := NewBitReader([]byte{0xFF})
	out := make([]float32, 1)

	err := decodeHuffmanBlock(r, 4, 0, out)
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrHuffmanOverflow, decErr.Kind)
}

func TestDequantizeSimpleCase(t *testing.T) {
	// thidx below threshold, magnitude below A[brc]: direct reconstruction.
	v := dequantize(false, 2, 0, 1)
	require.Equal(t, float32(2), v)

	v = dequantize(true, 2, 0, 1)
	require.Equal(t, float32(-2), v)
}

func TestDequantizeSaturatedCase(t *testing.T) {
	// magnitude == A[brc]: saturated branch reconstructs from NRL[thidx].
	a := brcA[0]
	v := dequantize(false, uint8(a), 0, 5)
	require.Equal(t, nrlTable[0][5], v)
}

func TestDequantizeTableLookupCase(t *testing.T) {
	// thidx above the simple threshold and magnitude < A[brc]: table branch.
	v := dequantize(false, 1, 0, brcSimpleThidxThreshold[0]+1)
	expect := sfTable[brcSimpleThidxThreshold[0]+1] * nrlTable[0][1]
	require.Equal(t, expect, v)
}

func TestDecodeFDBAQZeroQuads(t *testing.T) {
	out, err := decodeFDBAQ(nil, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecodeFDBAQInvalidBRC(t *testing.T) {
	// BRC field only has 3 defined bits of range 0..4; code 5 must fail.
	r := []byte{0b101_00000}
	_, err := decodeFDBAQ(r, 1)
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrHuffmanOverflow, decErr.Kind)
}
