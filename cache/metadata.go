package cache

import (
	tiledb "github.com/TileDB-Inc/TileDB-Go"

	"github.com/sarl0/s1l0"
)

// metadataRow is the flattened, TileDB-taggable projection of one
// PacketMetadata record written by WriteMetadata. Tag-driven schema
// construction (addSchemaAttrs) needs a flat struct with one tag set per
// exported field; PacketMetadata itself nests Primary/Secondary structs,
// so this type exists purely as the cache package's wire shape, built
// fresh from each row's Parsed() presentation.
type metadataRow struct {
	RowID uint64 `tiledb:"dtype=uint64,ftype=dim"`

	PacketSequenceCount uint16 `tiledb:"dtype=uint16,ftype=attr" filters:"zstd(level=16)"`
	PacketDataLength    uint16 `tiledb:"dtype=uint16,ftype=attr" filters:"zstd(level=16)"`

	CoarseTime uint32  `tiledb:"dtype=uint32,ftype=attr" filters:"zstd(level=16)"`
	FineTime   float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`

	DataTakeID  uint32 `tiledb:"dtype=uint32,ftype=attr" filters:"zstd(level=16)"`
	ECCNumber   uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	RxChannelID uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`

	SpacePacketCount uint32 `tiledb:"dtype=uint32,ftype=attr" filters:"zstd(level=16)"`
	PRICount         uint32 `tiledb:"dtype=uint32,ftype=attr" filters:"bitw(window=-1)"`

	SWST float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`
	SWL  float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`
	PRI  float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`

	ChirpRampRateHz  float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`
	ChirpStartFreqHz float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`

	Polarisation uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	SignalType   uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	SwathNum     uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	NumQuads     uint16 `tiledb:"dtype=uint16,ftype=attr" filters:"zstd(level=16)"`
	BAQMode      uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	RGDEC        uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`

	AzimuthBeamAddress   int16 `tiledb:"dtype=int16,ftype=attr" filters:"zstd(level=16)"`
	ElevationBeamAddress int16 `tiledb:"dtype=int16,ftype=attr" filters:"zstd(level=16)"`

	SubCommCounter  uint8  `tiledb:"dtype=uint8,ftype=attr" filters:"zstd(level=16)"`
	SubCommDataWord uint16 `tiledb:"dtype=uint16,ftype=attr" filters:"zstd(level=16)"`
}

func toMetadataRow(row s1l0.PacketMetadata) metadataRow {
	p := row.Parsed()

	return metadataRow{
		RowID: uint64(row.Index),

		PacketSequenceCount: row.Primary.PacketSequenceCount,
		PacketDataLength:    row.Primary.PacketDataLength,

		CoarseTime: p.CoarseTime,
		FineTime:   p.FineTime,

		DataTakeID:  p.DataTakeID,
		ECCNumber:   p.ECCNumber,
		RxChannelID: p.RxChannelID,

		SpacePacketCount: p.SpacePacketCount,
		PRICount:         p.PRICount,

		SWST: p.SWST,
		SWL:  p.SWL,
		PRI:  p.PRI,

		ChirpRampRateHz:  p.ChirpRampRateHz,
		ChirpStartFreqHz: p.ChirpStartFreqHz,

		Polarisation: uint8(p.Polarisation),
		SignalType:   uint8(p.SignalType),
		SwathNum:     p.SwathNum,
		NumQuads:     p.NumQuads,
		BAQMode:      uint8(p.BAQMode),
		RGDEC:        uint8(p.RGDEC),

		AzimuthBeamAddress:   p.AzimuthBeamAddress,
		ElevationBeamAddress: p.ElevationBeamAddress,

		SubCommCounter:  p.SubCommCounter,
		SubCommDataWord: p.SubCommDataWord,
	}
}

// WriteMetadata writes every row of table as a dense TileDB array at uri,
// one cell per packet, columns per metadataRow field. Grounded on the
// teacher's PingHeaders.ToTileDB (ping.go/tiledb.go): build the schema
// from tagged struct fields, open for writing, bind one buffer per
// column, submit over the full row range.
func WriteMetadata(ctx *tiledb.Context, uri string, table *s1l0.MetadataTable) error {
	nrows := uint64(table.Len())

	if err := createArray(ctx, uri, nrows, 50000, func(schema *tiledb.ArraySchema) error {
		return addSchemaAttrs(ctx, schema, &metadataRow{})
	}); err != nil {
		return err
	}

	rows := make([]metadataRow, nrows)
	for i := range rows {
		rows[i] = toMetadataRow(table.Row(i))
	}

	return writeWholeArray(ctx, uri, nrows, func(query *tiledb.Query) error {
		return setMetadataBuffers(query, rows)
	})
}

func setMetadataBuffers(query *tiledb.Query, rows []metadataRow) error {
	n := len(rows)

	seqCount := make([]uint16, n)
	dataLen := make([]uint16, n)
	coarse := make([]uint32, n)
	fine := make([]float64, n)
	dataTake := make([]uint32, n)
	ecc := make([]uint8, n)
	rxChan := make([]uint8, n)
	spc := make([]uint32, n)
	pri := make([]uint32, n)
	swst := make([]float64, n)
	swl := make([]float64, n)
	priSec := make([]float64, n)
	rampHz := make([]float64, n)
	startHz := make([]float64, n)
	pol := make([]uint8, n)
	sig := make([]uint8, n)
	swath := make([]uint8, n)
	numQuads := make([]uint16, n)
	baq := make([]uint8, n)
	rgdec := make([]uint8, n)
	azim := make([]int16, n)
	elev := make([]int16, n)
	subCtr := make([]uint8, n)
	subWord := make([]uint16, n)

	for i, r := range rows {
		seqCount[i] = r.PacketSequenceCount
		dataLen[i] = r.PacketDataLength
		coarse[i] = r.CoarseTime
		fine[i] = r.FineTime
		dataTake[i] = r.DataTakeID
		ecc[i] = r.ECCNumber
		rxChan[i] = r.RxChannelID
		spc[i] = r.SpacePacketCount
		pri[i] = r.PRICount
		swst[i] = r.SWST
		swl[i] = r.SWL
		priSec[i] = r.PRI
		rampHz[i] = r.ChirpRampRateHz
		startHz[i] = r.ChirpStartFreqHz
		pol[i] = r.Polarisation
		sig[i] = r.SignalType
		swath[i] = r.SwathNum
		numQuads[i] = r.NumQuads
		baq[i] = r.BAQMode
		rgdec[i] = r.RGDEC
		azim[i] = r.AzimuthBeamAddress
		elev[i] = r.ElevationBeamAddress
		subCtr[i] = r.SubCommCounter
		subWord[i] = r.SubCommDataWord
	}

	buffers := []struct {
		name string
		data any
	}{
		{"PacketSequenceCount", seqCount},
		{"PacketDataLength", dataLen},
		{"CoarseTime", coarse},
		{"FineTime", fine},
		{"DataTakeID", dataTake},
		{"ECCNumber", ecc},
		{"RxChannelID", rxChan},
		{"SpacePacketCount", spc},
		{"PRICount", pri},
		{"SWST", swst},
		{"SWL", swl},
		{"PRI", priSec},
		{"ChirpRampRateHz", rampHz},
		{"ChirpStartFreqHz", startHz},
		{"Polarisation", pol},
		{"SignalType", sig},
		{"SwathNum", swath},
		{"NumQuads", numQuads},
		{"BAQMode", baq},
		{"RGDEC", rgdec},
		{"AzimuthBeamAddress", azim},
		{"ElevationBeamAddress", elev},
		{"SubCommCounter", subCtr},
		{"SubCommDataWord", subWord},
	}

	for _, b := range buffers {
		if _, err := query.SetDataBuffer(b.name, b.data); err != nil {
			return err
		}
	}

	return nil
}
