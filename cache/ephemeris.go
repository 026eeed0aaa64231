package cache

import (
	tiledb "github.com/TileDB-Inc/TileDB-Go"

	"github.com/sarl0/s1l0"
)

// ephemerisRow is the TileDB-taggable projection of one EphemerisRecord,
// grounded on the teacher's Attitude.ToTileDB (attitude.go) applied to
// the position/velocity/quaternion/angular-rate/time-stamp tuple of
// spec.md §4.8 instead of pitch/roll/heave/heading.
type ephemerisRow struct {
	RowID uint64 `tiledb:"dtype=uint64,ftype=dim"`

	FirstPacketIndex int64 `tiledb:"dtype=int64,ftype=attr" filters:"bitw(window=-1)"`

	PosX float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`
	PosY float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`
	PosZ float64 `tiledb:"dtype=float64,ftype=attr" filters:"zstd(level=16)"`

	VelX float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	VelY float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	VelZ float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`

	Q0 float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	Q1 float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	Q2 float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	Q3 float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`

	OmegaX float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	OmegaY float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	OmegaZ float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`

	PODYear     int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODMonth    int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODDay      int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODHour     int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODMin      int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODSec      int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
	PODMillisec int32 `tiledb:"dtype=int32,ftype=attr" filters:"zstd(level=16)"`
}

func toEphemerisRow(i int, rec s1l0.EphemerisRecord) ephemerisRow {
	return ephemerisRow{
		RowID:            uint64(i),
		FirstPacketIndex: int64(rec.FirstPacketIndex),

		PosX: rec.PosX,
		PosY: rec.PosY,
		PosZ: rec.PosZ,

		VelX: rec.VelX,
		VelY: rec.VelY,
		VelZ: rec.VelZ,

		Q0: rec.Q0,
		Q1: rec.Q1,
		Q2: rec.Q2,
		Q3: rec.Q3,

		OmegaX: rec.OmegaX,
		OmegaY: rec.OmegaY,
		OmegaZ: rec.OmegaZ,

		PODYear:     int32(rec.PODYear),
		PODMonth:    int32(rec.PODMonth),
		PODDay:      int32(rec.PODDay),
		PODHour:     int32(rec.PODHour),
		PODMin:      int32(rec.PODMin),
		PODSec:      int32(rec.PODSec),
		PODMillisec: int32(rec.PODMillisec),
	}
}

// WriteEphemeris writes one dense TileDB array row per reassembled
// ephemeris record.
func WriteEphemeris(ctx *tiledb.Context, uri string, records []s1l0.EphemerisRecord) error {
	nrows := uint64(len(records))

	if err := createArray(ctx, uri, nrows, 10000, func(schema *tiledb.ArraySchema) error {
		return addSchemaAttrs(ctx, schema, &ephemerisRow{})
	}); err != nil {
		return err
	}

	rows := make([]ephemerisRow, nrows)
	for i, rec := range records {
		rows[i] = toEphemerisRow(i, rec)
	}

	return writeWholeArray(ctx, uri, nrows, func(query *tiledb.Query) error {
		return setEphemerisBuffers(query, rows)
	})
}

func setEphemerisBuffers(query *tiledb.Query, rows []ephemerisRow) error {
	n := len(rows)

	firstIdx := make([]int64, n)
	posX, posY, posZ := make([]float64, n), make([]float64, n), make([]float64, n)
	velX, velY, velZ := make([]float32, n), make([]float32, n), make([]float32, n)
	q0, q1, q2, q3 := make([]float32, n), make([]float32, n), make([]float32, n), make([]float32, n)
	omX, omY, omZ := make([]float32, n), make([]float32, n), make([]float32, n)
	year, month, day := make([]int32, n), make([]int32, n), make([]int32, n)
	hour, min, sec, ms := make([]int32, n), make([]int32, n), make([]int32, n), make([]int32, n)

	for i, r := range rows {
		firstIdx[i] = r.FirstPacketIndex
		posX[i], posY[i], posZ[i] = r.PosX, r.PosY, r.PosZ
		velX[i], velY[i], velZ[i] = r.VelX, r.VelY, r.VelZ
		q0[i], q1[i], q2[i], q3[i] = r.Q0, r.Q1, r.Q2, r.Q3
		omX[i], omY[i], omZ[i] = r.OmegaX, r.OmegaY, r.OmegaZ
		year[i], month[i], day[i] = r.PODYear, r.PODMonth, r.PODDay
		hour[i], min[i], sec[i], ms[i] = r.PODHour, r.PODMin, r.PODSec, r.PODMillisec
	}

	buffers := []struct {
		name string
		data any
	}{
		{"FirstPacketIndex", firstIdx},
		{"PosX", posX}, {"PosY", posY}, {"PosZ", posZ},
		{"VelX", velX}, {"VelY", velY}, {"VelZ", velZ},
		{"Q0", q0}, {"Q1", q1}, {"Q2", q2}, {"Q3", q3},
		{"OmegaX", omX}, {"OmegaY", omY}, {"OmegaZ", omZ},
		{"PODYear", year}, {"PODMonth", month}, {"PODDay", day},
		{"PODHour", hour}, {"PODMin", min}, {"PODSec", sec}, {"PODMillisec", ms},
	}

	for _, b := range buffers {
		if _, err := query.SetDataBuffer(b.name, b.data); err != nil {
			return err
		}
	}

	return nil
}
