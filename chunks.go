package s1l0

import "github.com/samber/lo"

// ChunkRange is a maximal contiguous run of packets sharing the
// acquisition-chunk equivalence relation of §4.7.
type ChunkRange struct {
	ChunkID int
	Start   int
	End     int // exclusive
}

// chunkKey is the constants tuple that must hold equal across a chunk.
type chunkKey struct {
	signalType         uint8
	swathNum           uint8
	numQuads           uint16
	baqMode            uint8
	swst               uint32
	swl                uint32
	pri                uint32
	elevationBeamAddr  uint16
}

func keyOf(row PacketMetadata) chunkKey {
	s := row.Secondary
	return chunkKey{
		signalType:        s.SignalType,
		swathNum:          s.SwathNum,
		numQuads:          s.NumQuads,
		baqMode:           s.BAQMode,
		swst:              s.SWST,
		swl:               s.SWL,
		pri:               s.PRI,
		elevationBeamAddr: s.ElevationBeamAddress,
	}
}

// GroupChunks performs the single linear pass of §4.7 over the metadata
// table, opening a new chunk whenever the constants tuple changes, the
// PRI count fails to increment by exactly 1 (mod 2^32), or the azimuth
// beam address fails to strictly increase. Deterministic and idempotent
// on the same input, grounded on the teacher's PGroups (ping.go): a
// single forward scan accumulating [start, stop) ranges against a
// reference state that is replaced whenever the current packet breaks it.
func GroupChunks(table *MetadataTable) []ChunkRange {
	n := table.Len()
	if n == 0 {
		return nil
	}

	var ranges []ChunkRange

	chunkID := 0
	start := 0
	curKey := keyOf(table.Row(0))
	prevPRI := table.Row(0).Secondary.PRICount
	prevAz := table.Row(0).Secondary.AzimuthBeamAddress

	for i := 1; i < n; i++ {
		row := table.Row(i)
		k := keyOf(row)

		priOK := row.Secondary.PRICount == prevPRI+1
		azOK := row.Secondary.AzimuthBeamAddress > prevAz

		if k != curKey || !priOK || !azOK {
			ranges = append(ranges, ChunkRange{ChunkID: chunkID, Start: start, End: i})
			chunkID++
			start = i
			curKey = k
		}

		prevPRI = row.Secondary.PRICount
		prevAz = row.Secondary.AzimuthBeamAddress
	}

	ranges = append(ranges, ChunkRange{ChunkID: chunkID, Start: start, End: n})

	return ranges
}

// AzimuthBeamAddressSpan reports the minimum and maximum azimuth beam
// address observed across r, a QA-style cross-check that a chunk's strictly
// increasing azimuth sequence spans the range its size implies. Grounded on
// the teacher's qa.go min/max-beam-count check (`lo.Min`/`lo.Max` over a
// per-ping slice), applied here to azimuth beam address instead of beam
// count.
func AzimuthBeamAddressSpan(table *MetadataTable, r ChunkRange) (min, max uint16) {
	addrs := make([]uint16, 0, r.End-r.Start)
	for i := r.Start; i < r.End; i++ {
		addrs = append(addrs, table.Row(i).Secondary.AzimuthBeamAddress)
	}

	return lo.Min(addrs), lo.Max(addrs)
}
