package s1l0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePrimaryHeader(t *testing.T) {
	// w0 = 0000 1000 0000 0000 -> version=0, type=0, sec_hdr_flag=1, apid=0.
	// w1 = 1100 0000 0100 0010 -> seq_flags=0b11, seq_count=0x0042.
	buf := []byte{
		0x08, 0x00,
		0xC0, 0x42,
		0x00, 0x3D, // length = 61
	}

	h, err := decodePrimaryHeader(buf)
	require.NoError(t, err)

	require.Equal(t, uint8(0), h.Version)
	require.Equal(t, uint8(0), h.Type)
	require.True(t, h.SecondaryHeaderFlag)
	require.Equal(t, uint16(0), h.APIDProcessID)
	require.Equal(t, uint8(3), h.SequenceFlags)
	require.Equal(t, uint16(0x0042), h.PacketSequenceCount)
	require.Equal(t, uint16(61), h.PacketDataLength)
	require.Equal(t, 62, h.PayloadLength())
}

func TestDecodePrimaryHeaderTruncated(t *testing.T) {
	_, err := decodePrimaryHeader([]byte{0x00, 0x00, 0x00})
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrTruncatedFile, decErr.Kind)
}
