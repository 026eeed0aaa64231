package s1l0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func chunkRow(index int, pri uint32, az uint16) PacketMetadata {
	return PacketMetadata{
		Index: index,
		Secondary: RawSecondaryHeader{
			SignalType:           uint8(SignalEcho),
			SwathNum:             1,
			NumQuads:             100,
			BAQMode:              uint8(BaqBypass),
			SWST:                 10,
			SWL:                  20,
			PRI:                  30,
			ElevationBeamAddress: 5,
			PRICount:             pri,
			AzimuthBeamAddress:   az,
		},
	}
}

func TestGroupChunksSingleRun(t *testing.T) {
	table := &MetadataTable{rows: []PacketMetadata{
		chunkRow(0, 1, 1),
		chunkRow(1, 2, 2),
		chunkRow(2, 3, 3),
	}}

	ranges := GroupChunks(table)
	require.Len(t, ranges, 1)
	require.Equal(t, ChunkRange{ChunkID: 0, Start: 0, End: 3}, ranges[0])
}

func TestGroupChunksSplitsOnKeyChange(t *testing.T) {
	first := chunkRow(0, 1, 1)
	second := chunkRow(1, 2, 2)
	second.Secondary.SwathNum = 2 // breaks the constants tuple

	table := &MetadataTable{rows: []PacketMetadata{first, second}}
	ranges := GroupChunks(table)

	require.Len(t, ranges, 2)
	require.Equal(t, ChunkRange{ChunkID: 0, Start: 0, End: 1}, ranges[0])
	require.Equal(t, ChunkRange{ChunkID: 1, Start: 1, End: 2}, ranges[1])
}

func TestGroupChunksSplitsOnAzimuthNotIncreasing(t *testing.T) {
	table := &MetadataTable{rows: []PacketMetadata{
		chunkRow(0, 1, 5),
		chunkRow(1, 2, 5), // azimuth did not strictly increase
	}}

	ranges := GroupChunks(table)
	require.Len(t, ranges, 2)
}

func TestGroupChunksPRICountWrapsMod2_32(t *testing.T) {
	// PRICount is defined mod 2^32; 0xFFFFFFFF followed by 0 increments
	// by exactly 1 under wraparound and must NOT split the chunk.
	table := &MetadataTable{rows: []PacketMetadata{
		chunkRow(0, 0xFFFFFFFF, 1),
		chunkRow(1, 0, 2),
	}}

	ranges := GroupChunks(table)
	require.Len(t, ranges, 1)
	require.Equal(t, ChunkRange{ChunkID: 0, Start: 0, End: 2}, ranges[0])
}

func TestGroupChunksPRISkipSplits(t *testing.T) {
	table := &MetadataTable{rows: []PacketMetadata{
		chunkRow(0, 1, 1),
		chunkRow(1, 3, 2), // skipped a PRI count
	}}

	ranges := GroupChunks(table)
	require.Len(t, ranges, 2)
}

func TestGroupChunksEmptyTable(t *testing.T) {
	table := &MetadataTable{}
	require.Nil(t, GroupChunks(table))
}

func TestAzimuthBeamAddressSpan(t *testing.T) {
	table := &MetadataTable{rows: []PacketMetadata{
		chunkRow(0, 1, 10),
		chunkRow(1, 2, 20),
		chunkRow(2, 3, 30),
	}}

	min, max := AzimuthBeamAddressSpan(table, ChunkRange{Start: 0, End: 3})
	require.Equal(t, uint16(10), min)
	require.Equal(t, uint16(30), max)
}
