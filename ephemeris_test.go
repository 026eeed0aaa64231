package s1l0

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildEphemerisBlock encodes one 128-byte sub-commutated block matching
// decodeEphemerisBlock's word-offset layout, for round-trip testing.
func buildEphemerisBlock(t *testing.T) []byte {
	t.Helper()
	block := make([]byte, 128)

	binary.BigEndian.PutUint64(block[0:8], math.Float64bits(1.0))   // PosX
	binary.BigEndian.PutUint64(block[8:16], math.Float64bits(2.0))  // PosY
	binary.BigEndian.PutUint64(block[16:24], math.Float64bits(3.0)) // PosZ

	binary.BigEndian.PutUint32(block[24:28], math.Float32bits(4.0)) // VelX
	binary.BigEndian.PutUint32(block[28:32], math.Float32bits(5.0)) // VelY
	binary.BigEndian.PutUint32(block[32:36], math.Float32bits(6.0)) // VelZ

	binary.BigEndian.PutUint32(block[36:40], math.Float32bits(0.1)) // Q0
	binary.BigEndian.PutUint32(block[40:44], math.Float32bits(0.2)) // Q1
	binary.BigEndian.PutUint32(block[44:48], math.Float32bits(0.3)) // Q2
	binary.BigEndian.PutUint32(block[48:52], math.Float32bits(0.4)) // Q3

	binary.BigEndian.PutUint32(block[52:56], math.Float32bits(0.01)) // OmegaX
	binary.BigEndian.PutUint32(block[56:60], math.Float32bits(0.02)) // OmegaY
	binary.BigEndian.PutUint32(block[60:64], math.Float32bits(0.03)) // OmegaZ

	base := 64
	binary.BigEndian.PutUint16(block[base:base+2], 2024)
	binary.BigEndian.PutUint16(block[base+2:base+4], uint16(3)<<8|uint16(15))
	binary.BigEndian.PutUint16(block[base+4:base+6], uint16(12)<<8|uint16(34))
	binary.BigEndian.PutUint16(block[base+6:base+8], uint16(56)<<10|uint16(789))

	return block
}

func blockToRows(block []byte, startIndex int) []PacketMetadata {
	rows := make([]PacketMetadata, ephemerisRunLength)
	for j := 0; j < ephemerisRunLength; j++ {
		word := beU16(block, 2*j)
		rows[j] = PacketMetadata{
			Index: startIndex + j,
			Secondary: RawSecondaryHeader{
				SubCommCounter:  uint8(j + 1),
				SubCommDataWord: word,
			},
		}
	}
	return rows
}

func TestDecodeEphemerisCompleteRun(t *testing.T) {
	block := buildEphemerisBlock(t)
	table := &MetadataTable{rows: blockToRows(block, 0)}

	records, skipped := DecodeEphemeris(table)
	require.Equal(t, 0, skipped)
	require.Len(t, records, 1)

	r := records[0]
	require.Equal(t, 0, r.FirstPacketIndex)
	require.InDelta(t, 1.0, r.PosX, 1e-9)
	require.InDelta(t, 2.0, r.PosY, 1e-9)
	require.InDelta(t, 3.0, r.PosZ, 1e-9)
	require.InDelta(t, 4.0, r.VelX, 1e-6)
	require.InDelta(t, 0.1, r.Q0, 1e-6)
	require.InDelta(t, 0.03, r.OmegaZ, 1e-6)

	require.Equal(t, 2024, r.PODYear)
	require.Equal(t, 3, r.PODMonth)
	require.Equal(t, 15, r.PODDay)
	require.Equal(t, 12, r.PODHour)
	require.Equal(t, 34, r.PODMin)
	require.Equal(t, 56, r.PODSec)
	require.Equal(t, 789, r.PODMillisec)
}

func TestDecodeEphemerisTwoConsecutiveRuns(t *testing.T) {
	block := buildEphemerisBlock(t)
	rows := append(blockToRows(block, 0), blockToRows(block, 64)...)
	table := &MetadataTable{rows: rows}

	records, skipped := DecodeEphemeris(table)
	require.Equal(t, 0, skipped)
	require.Len(t, records, 2)
	require.Equal(t, 0, records[0].FirstPacketIndex)
	require.Equal(t, 64, records[1].FirstPacketIndex)
}

func TestDecodeEphemerisIncompleteRunSkipped(t *testing.T) {
	block := buildEphemerisBlock(t)
	rows := blockToRows(block, 0)
	// break the run: counter out of sequence partway through.
	rows[40].Secondary.SubCommCounter = 99

	table := &MetadataTable{rows: rows}
	records, skipped := DecodeEphemeris(table)

	require.Empty(t, records)
	require.Equal(t, 1, skipped)
}

func TestDecodeEphemerisTrailingShortRun(t *testing.T) {
	block := buildEphemerisBlock(t)
	rows := blockToRows(block, 0)[:30] // fewer than 64 packets remain

	table := &MetadataTable{rows: rows}
	records, skipped := DecodeEphemeris(table)

	require.Empty(t, records)
	require.Equal(t, 1, skipped)
}

func TestDecodeEphemerisNoCandidateCounters(t *testing.T) {
	table := &MetadataTable{rows: []PacketMetadata{
		{Secondary: RawSecondaryHeader{SubCommCounter: 5}},
		{Secondary: RawSecondaryHeader{SubCommCounter: 6}},
	}}

	records, skipped := DecodeEphemeris(table)
	require.Empty(t, records)
	require.Equal(t, 0, skipped)
}
