package s1l0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBypassAllZero(t *testing.T) {
	// 4 channels * 1 quad * 10 bits, each zero, padded to 16 bits/channel.
	payload := make([]byte, 8)
	out, err := decodeBypass(payload, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, complex64(0), out[0])
	require.Equal(t, complex64(0), out[1])
}

func TestDecodeBypassSignMagnitude(t *testing.T) {
	// Each channel word: sign=1, magnitude=1 (10-bit field "1000000001"),
	// padded with 6 zero bits to the 16-bit channel alignment boundary.
	word := []byte{0x80, 0x40}
	payload := append(append(append(append([]byte{}, word...), word...), word...), word...)

	out, err := decodeBypass(payload, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, complex(float32(-1), float32(-1)), out[0])
	require.Equal(t, complex(float32(-1), float32(-1)), out[1])
}

func TestDecodeBypassSignSymmetry(t *testing.T) {
	// Flipping every sign bit negates the decoded output bit-exactly
	// (spec.md §8 property 5).
	positive := []byte{0x00, 0x40, 0x10, 0x80, 0x08, 0x40, 0x04, 0x00}
	negative := make([]byte, len(positive))
	for i := range positive {
		negative[i] = positive[i]
	}
	// flip the sign bit (MSB) of each 10-bit channel field; with 1 quad
	// per channel, the sign bit is the MSB of the channel's first byte.
	negative[0] ^= 0x80
	negative[2] ^= 0x80
	negative[4] ^= 0x80
	negative[6] ^= 0x80

	pos, err := decodeBypass(positive, 1)
	require.NoError(t, err)
	neg, err := decodeBypass(negative, 1)
	require.NoError(t, err)

	for i := range pos {
		require.Equal(t, -pos[i], neg[i])
	}
}

func TestDecodeBypassZeroQuads(t *testing.T) {
	out, err := decodeBypass(nil, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecodeBypassTruncated(t *testing.T) {
	_, err := decodeBypass([]byte{0x00}, 1)
	require.Error(t, err)
}
