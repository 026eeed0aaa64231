package s1l0

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// coarseTimeEpochJD is the Julian day number of 2000-01-01T00:00:00 UTC,
// the coarse-time epoch resolved in item 4 of SPEC_FULL.md §12.
// Computed once via the teacher's own calendar-to-Julian-day conversion
// (params.go's parse_reftime uses julian.DayOfYearToCalendar; this is its
// inverse, julian.CalendarGregorianToJD, applied to a fixed calendar date
// instead of a parsed day-of-year string).
var coarseTimeEpochJD = julian.CalendarGregorianToJD(2000, 1, 1.0)

// RawSecondaryHeader holds every field of the 62-byte (496-bit) SAR
// secondary header exactly as the bits decode, with no scaling or enum
// interpretation applied. Raw is the canonical representation; Parsed
// (see ToParsed) is a pure function of it, matching the teacher's own
// raw-struct-first, scale-on-demand decode style (ping.go's
// decode_ping_hdr producing an integer header, scaled lazily by callers).
//
// Field order and widths (496 bits total, MSB-first):
//
//	CoarseTime            32   FineTime              16
//	SyncMarker            32   DataTakeID            32
//	ECCNumber              8   TestMode               3
//	RxChannelID            1   SpacePacketCount      32
//	PRICount              32   SWST                  24
//	SWL                   24   PRI                   24
//	ChirpRampRateSign      1   ChirpRampRateMag      21
//	ChirpStartFreqSign     1   ChirpStartFreqMag     21
//	Polarisation           3   TempComp               2
//	SASSBFlag              1   CalibrationParams      8
//	SignalType             4   SwathNum               8
//	NumQuads              16   BAQMode                5
//	RGDEC                  5   AzimuthBeamAddress    16
//	ElevationBeamAddress  16   SubCommCounter         6
//	SubCommDataWord       16   ErrorFlag              1
//	BAQBlockLength         8   Spare                 77
type RawSecondaryHeader struct {
	CoarseTime   uint32
	FineTime     uint16
	SyncMarker   uint32
	DataTakeID   uint32
	ECCNumber    uint8
	TestMode     uint8
	RxChannelID  uint8

	SpacePacketCount uint32
	PRICount         uint32

	SWST uint32
	SWL  uint32
	PRI  uint32

	ChirpRampRateSign bool
	ChirpRampRateMag  uint32

	ChirpStartFreqSign bool
	ChirpStartFreqMag  uint32

	Polarisation uint8
	TempComp     uint8

	SASSBFlag         bool
	CalibrationParams uint8

	SignalType uint8
	SwathNum   uint8
	NumQuads   uint16

	BAQMode uint8
	RGDEC   uint8

	AzimuthBeamAddress   uint16
	ElevationBeamAddress uint16

	SubCommCounter  uint8
	SubCommDataWord uint16

	ErrorFlag      bool
	BAQBlockLength uint8

	Spare uint32
}

// decodeSecondaryHeaderRaw reads the 62-byte (496-bit) secondary header
// from the start of buf in field order. buf must be at least
// SecondaryHeaderSize bytes.
func decodeSecondaryHeaderRaw(buf []byte) (RawSecondaryHeader, error) {
	if len(buf) < SecondaryHeaderSize {
		return RawSecondaryHeader{}, newTruncatedFile(0, SecondaryHeaderSize-len(buf))
	}

	r := NewBitReader(buf[:SecondaryHeaderSize])
	var h RawSecondaryHeader
	var err error

	read := func(n int) uint32 {
		if err != nil {
			return 0
		}
		var v uint32
		v, err = r.ReadU(n)
		return v
	}

	readSM := func(n int) (bool, uint32) {
		if err != nil {
			return false, 0
		}
		var sign bool
		var mag uint32
		sign, mag, err = r.ReadSignMagnitude(n)
		return sign, mag
	}

	h.CoarseTime = read(32)
	h.FineTime = uint16(read(16))
	h.SyncMarker = read(32)
	h.DataTakeID = read(32)
	h.ECCNumber = uint8(read(8))
	h.TestMode = uint8(read(3))
	h.RxChannelID = uint8(read(1))

	h.SpacePacketCount = read(32)
	h.PRICount = read(32)

	h.SWST = read(24)
	h.SWL = read(24)
	h.PRI = read(24)

	h.ChirpRampRateSign, h.ChirpRampRateMag = readSM(22)
	h.ChirpStartFreqSign, h.ChirpStartFreqMag = readSM(22)

	h.Polarisation = uint8(read(3))
	h.TempComp = uint8(read(2))

	h.SASSBFlag = read(1) != 0
	h.CalibrationParams = uint8(read(8))

	h.SignalType = uint8(read(4))
	h.SwathNum = uint8(read(8))
	h.NumQuads = uint16(read(16))

	h.BAQMode = uint8(read(5))
	h.RGDEC = uint8(read(5))

	h.AzimuthBeamAddress = uint16(read(16))
	h.ElevationBeamAddress = uint16(read(16))

	h.SubCommCounter = uint8(read(6))
	h.SubCommDataWord = uint16(read(16))

	h.ErrorFlag = read(1) != 0
	h.BAQBlockLength = uint8(read(8))

	// Spare is 77 bits of reserved padding, wider than a single ReadU(32)
	// call can return; only the low 32 bits are retained for inspection.
	if err == nil {
		err = r.Skip(77 - 32)
	}
	h.Spare = read(32)

	if err != nil {
		return RawSecondaryHeader{}, err
	}

	return h, nil
}

// ParsedSecondaryHeader is the typed, scaled presentation of a secondary
// header: durations in seconds, frequencies in Hz, enums resolved to named
// variants (or tagged Reserved). It is a pure function of RawSecondaryHeader.
type ParsedSecondaryHeader struct {
	CoarseTime  uint32
	FineTime    float64
	SyncMarker  uint32
	DataTakeID  uint32
	ECCNumber   uint8
	TestMode    uint8
	RxChannelID uint8

	SpacePacketCount uint32
	PRICount         uint32

	SWST float64
	SWL  float64
	PRI  float64

	ChirpRampRateHz float64
	ChirpStartFreqHz float64

	Polarisation       Polarisation
	PolarisationKnown  bool
	TempComp           uint8

	SASSBFlag         bool
	CalibrationParams uint8

	SignalType      SignalType
	SignalTypeKnown bool
	SwathNum        uint8
	NumQuads        uint16

	BAQMode      BaqMode
	BAQModeKnown bool
	RGDEC        Rgdec
	RGDECKnown   bool

	AzimuthBeamAddress   int16
	ElevationBeamAddress int16

	SubCommCounter  uint8
	SubCommDataWord uint16
}

// ToParsed applies the scaling rules of §4.2: time fields divide by FRef,
// chirp ramp rate and start frequency apply their sign-magnitude formulas,
// fine time divides by 2^16, and enum fields resolve to named variants
// (falling back to the Reserved tag for undefined codes).
func (h RawSecondaryHeader) ToParsed() ParsedSecondaryHeader {
	rampSign := 1.0
	if h.ChirpRampRateSign {
		rampSign = -1.0
	}

	freqSign := 1.0
	if h.ChirpStartFreqSign {
		freqSign = -1.0
	}

	baq := BaqMode(h.BAQMode)
	rgdec := Rgdec(h.RGDEC)
	pol := Polarisation(h.Polarisation)
	sig := SignalType(h.SignalType)

	return ParsedSecondaryHeader{
		CoarseTime:  h.CoarseTime,
		FineTime:    float64(h.FineTime) / 65536.0,
		SyncMarker:  h.SyncMarker,
		DataTakeID:  h.DataTakeID,
		ECCNumber:   h.ECCNumber,
		TestMode:    h.TestMode,
		RxChannelID: h.RxChannelID,

		SpacePacketCount: h.SpacePacketCount,
		PRICount:         h.PRICount,

		SWST: float64(h.SWST) / FRef,
		SWL:  float64(h.SWL) / FRef,
		PRI:  float64(h.PRI) / FRef,

		ChirpRampRateHz:  rampSign * float64(h.ChirpRampRateMag) * FRef * FRef / (1 << 21),
		ChirpStartFreqHz: freqSign * float64(h.ChirpStartFreqMag) * FRef / (1 << 14),

		Polarisation:      pol,
		PolarisationKnown: pol.Known(),
		TempComp:          h.TempComp,

		SASSBFlag:         h.SASSBFlag,
		CalibrationParams: h.CalibrationParams,

		SignalType:      sig,
		SignalTypeKnown: sig.String() != Reserved,
		SwathNum:        h.SwathNum,
		NumQuads:        h.NumQuads,

		BAQMode:      baq,
		BAQModeKnown: baq.Known(),
		RGDEC:        rgdec,
		RGDECKnown:   rgdec.Known(),

		AzimuthBeamAddress:   int16(h.AzimuthBeamAddress),
		ElevationBeamAddress: int16(h.ElevationBeamAddress),

		SubCommCounter:  h.SubCommCounter,
		SubCommDataWord: h.SubCommDataWord,
	}
}

// SensingTime resolves CoarseTime/FineTime to an absolute UTC timestamp
// against the 2000-01-01T00:00:00 UTC epoch (SPEC_FULL.md §12 item 4),
// via the teacher's own Julian-day calendar machinery
// (julian.CalendarGregorianToJD/JDToCalendar) rather than a hand-rolled
// leap-year-aware day count.
func (p ParsedSecondaryHeader) SensingTime() time.Time {
	days := (float64(p.CoarseTime) + p.FineTime) / 86400.0
	year, month, dayFrac := julian.JDToCalendar(coarseTimeEpochJD + days)

	day := int(dayFrac)
	secondsOfDay := (dayFrac - float64(day)) * 86400.0

	hour := int(secondsOfDay / 3600.0)
	minute := int(math.Mod(secondsOfDay, 3600.0) / 60.0)
	second := math.Mod(secondsOfDay, 60.0)
	sec := int(second)
	nsec := int(math.Round((second - float64(sec)) * 1e9))

	return time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
}

// ToRaw reconstructs the RawSecondaryHeader a ParsedSecondaryHeader was
// derived from, inverting ToParsed exactly (used by the raw/parsed
// idempotence property: parse(raw(parsed(x))) == parse(x)).
func (p ParsedSecondaryHeader) ToRaw() RawSecondaryHeader {
	rampMag := p.ChirpRampRateHz
	rampSign := rampMag < 0
	if rampSign {
		rampMag = -rampMag
	}

	freqMag := p.ChirpStartFreqHz
	freqSign := freqMag < 0
	if freqSign {
		freqMag = -freqMag
	}

	return RawSecondaryHeader{
		CoarseTime:  p.CoarseTime,
		FineTime:    uint16(p.FineTime * 65536.0),
		SyncMarker:  p.SyncMarker,
		DataTakeID:  p.DataTakeID,
		ECCNumber:   p.ECCNumber,
		TestMode:    p.TestMode,
		RxChannelID: p.RxChannelID,

		SpacePacketCount: p.SpacePacketCount,
		PRICount:         p.PRICount,

		SWST: uint32(p.SWST * FRef),
		SWL:  uint32(p.SWL * FRef),
		PRI:  uint32(p.PRI * FRef),

		ChirpRampRateSign: rampSign,
		ChirpRampRateMag:  uint32(rampMag * (1 << 21) / (FRef * FRef)),

		ChirpStartFreqSign: freqSign,
		ChirpStartFreqMag:  uint32(freqMag * (1 << 14) / FRef),

		Polarisation: uint8(p.Polarisation),
		TempComp:     p.TempComp,

		SASSBFlag:         p.SASSBFlag,
		CalibrationParams: p.CalibrationParams,

		SignalType: uint8(p.SignalType),
		SwathNum:   p.SwathNum,
		NumQuads:   p.NumQuads,

		BAQMode: uint8(p.BAQMode),
		RGDEC:   uint8(p.RGDEC),

		AzimuthBeamAddress:   uint16(p.AzimuthBeamAddress),
		ElevationBeamAddress: uint16(p.ElevationBeamAddress),

		SubCommCounter:  p.SubCommCounter,
		SubCommDataWord: p.SubCommDataWord,
	}
}
