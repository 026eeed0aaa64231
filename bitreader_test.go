package s1l0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReaderReadU(t *testing.T) {
	// 0b1011_0110, 0b1100_0000 -> first 3 bits = 101 (5), next 5 bits = 10110 (22)
	data := []byte{0xB6, 0xC0}
	r := NewBitReader(data)

	v, err := r.ReadU(3)
	require.NoError(t, err)
	require.Equal(t, uint32(5), v)

	v, err = r.ReadU(5)
	require.NoError(t, err)
	require.Equal(t, uint32(22), v)

	require.Equal(t, 8, r.Position())
}

func TestBitReaderReadUAcrossByteBoundary(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xFF}
	r := NewBitReader(data)

	v, err := r.ReadU(24)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFF00FF), v)
}

func TestBitReaderTruncated(t *testing.T) {
	r := NewBitReader([]byte{0x01})
	_, err := r.ReadU(16)
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrTruncatedPayload, decErr.Kind)
}

func TestBitReaderSignMagnitude(t *testing.T) {
	// sign=1, magnitude=0b1000000 (64) over 8 bits: 1_1000000
	r := NewBitReader([]byte{0b1100_0000})
	sign, mag, err := r.ReadSignMagnitude(8)
	require.NoError(t, err)
	require.True(t, sign)
	require.Equal(t, uint32(64), mag)
}

func TestBitReaderSignMagnitudeSignedZero(t *testing.T) {
	// sign bit set, magnitude zero: a valid "negative zero".
	r := NewBitReader([]byte{0b1000_0000})
	sign, mag, err := r.ReadSignMagnitude(8)
	require.NoError(t, err)
	require.True(t, sign)
	require.Equal(t, uint32(0), mag)
}

func TestBitReaderAlignToByte(t *testing.T) {
	r := NewBitReader([]byte{0xFF, 0xFF})
	_, err := r.ReadU(3)
	require.NoError(t, err)

	r.AlignToByte()
	require.Equal(t, 8, r.Position())
}

func TestBitReaderAlignToByte16(t *testing.T) {
	r := NewBitReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	_, err := r.ReadU(3)
	require.NoError(t, err)

	r.AlignToByte16()
	require.Equal(t, 16, r.Position())

	_, err = r.ReadU(1)
	require.NoError(t, err)
	r.AlignToByte16()
	require.Equal(t, 32, r.Position())
}

func TestBitReaderRemaining(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0x00})
	require.Equal(t, 16, r.Remaining())

	_, err := r.ReadU(10)
	require.NoError(t, err)
	require.Equal(t, 6, r.Remaining())
}

func TestBitReaderPeekDoesNotAdvance(t *testing.T) {
	r := NewBitReader([]byte{0xAB, 0xCD})

	peeked, err := r.PeekU(8)
	require.NoError(t, err)
	require.Equal(t, uint32(0xAB), peeked)
	require.Equal(t, 0, r.Position())

	read, err := r.ReadU(8)
	require.NoError(t, err)
	require.Equal(t, peeked, read)
}

func TestBitReaderPeekUpToNearEnd(t *testing.T) {
	r := NewBitReader([]byte{0b1010_1011})
	_, err := r.ReadU(4)
	require.NoError(t, err)

	// only 4 bits (1011) remain; peeking 8 should report avail=4 and
	// left-align the remaining bits within the 8-bit result.
	value, avail, err := r.PeekUpTo(8)
	require.NoError(t, err)
	require.Equal(t, 4, avail)
	require.Equal(t, uint32(0b1011_0000), value)

	// the reader itself must not have advanced.
	require.Equal(t, 4, r.Position())
}
