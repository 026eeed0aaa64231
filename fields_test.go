package s1l0

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleRawHeader() RawSecondaryHeader {
	return RawSecondaryHeader{
		CoarseTime:   123,
		FineTime:     32768, // 0.5 after the /65536 scale
		SyncMarker:   0xDEADBEEF,
		DataTakeID:   42,
		ECCNumber:    7,
		TestMode:     5,
		RxChannelID:  1,

		SpacePacketCount: 99,
		PRICount:         1000,

		SWST: 100,
		SWL:  200,
		PRI:  300,

		ChirpRampRateSign: false,
		ChirpRampRateMag:  1000,

		ChirpStartFreqSign: true,
		ChirpStartFreqMag:  500,

		Polarisation: uint8(PolVH),
		TempComp:     1,

		SASSBFlag:         true,
		CalibrationParams: 9,

		SignalType: uint8(SignalNoise),
		SwathNum:   5,
		NumQuads:   1000,

		BAQMode: uint8(BaqFDBAQMode0),
		RGDEC:   3,

		AzimuthBeamAddress:   1000,
		ElevationBeamAddress: 2000,

		SubCommCounter:  10,
		SubCommDataWord: 555,
	}
}

func TestToParsedScaling(t *testing.T) {
	raw := sampleRawHeader()
	p := raw.ToParsed()

	require.InDelta(t, 0.5, p.FineTime, 1e-12)
	require.InDelta(t, 100.0/FRef, p.SWST, 1e-15)
	require.InDelta(t, 200.0/FRef, p.SWL, 1e-15)
	require.InDelta(t, 300.0/FRef, p.PRI, 1e-15)

	require.Greater(t, p.ChirpRampRateHz, 0.0, "unsigned ramp rate must decode positive")
	require.Less(t, p.ChirpStartFreqHz, 0.0, "sign bit set must decode negative")

	require.Equal(t, PolVH, p.Polarisation)
	require.True(t, p.PolarisationKnown)

	require.Equal(t, SignalNoise, p.SignalType)
	require.True(t, p.SignalTypeKnown)

	require.Equal(t, BaqFDBAQMode0, p.BAQMode)
	require.True(t, p.BAQModeKnown)
	require.True(t, p.BAQMode.IsFDBAQ())
	require.False(t, p.BAQMode.IsBypass())

	require.Equal(t, Rgdec(3), p.RGDEC)
	require.True(t, p.RGDECKnown)
}

func TestParsedRawIdempotence(t *testing.T) {
	// spec.md §8 property 3: parse(raw(parsed(x))) == parse(x).
	raw := sampleRawHeader()
	parsed := raw.ToParsed()
	roundTripped := parsed.ToRaw().ToParsed()

	require.Equal(t, parsed.CoarseTime, roundTripped.CoarseTime)
	require.InDelta(t, parsed.FineTime, roundTripped.FineTime, 1e-9)
	require.Equal(t, parsed.SyncMarker, roundTripped.SyncMarker)
	require.Equal(t, parsed.DataTakeID, roundTripped.DataTakeID)
	require.InDelta(t, parsed.SWST, roundTripped.SWST, 1e-9)
	require.InDelta(t, parsed.SWL, roundTripped.SWL, 1e-9)
	require.InDelta(t, parsed.PRI, roundTripped.PRI, 1e-9)
	require.InDelta(t, parsed.ChirpRampRateHz, roundTripped.ChirpRampRateHz, 1e-3)
	require.InDelta(t, parsed.ChirpStartFreqHz, roundTripped.ChirpStartFreqHz, 1e-3)
	require.Equal(t, parsed.Polarisation, roundTripped.Polarisation)
	require.Equal(t, parsed.SignalType, roundTripped.SignalType)
	require.Equal(t, parsed.BAQMode, roundTripped.BAQMode)
	require.Equal(t, parsed.RGDEC, roundTripped.RGDEC)
	require.Equal(t, parsed.AzimuthBeamAddress, roundTripped.AzimuthBeamAddress)
	require.Equal(t, parsed.ElevationBeamAddress, roundTripped.ElevationBeamAddress)
	require.Equal(t, parsed.NumQuads, roundTripped.NumQuads)
}

func TestSensingTimeEpoch(t *testing.T) {
	p := ParsedSecondaryHeader{CoarseTime: 0, FineTime: 0}
	got := p.SensingTime()
	require.True(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestSensingTimeOneDayLater(t *testing.T) {
	p := ParsedSecondaryHeader{CoarseTime: 86400, FineTime: 0}
	got := p.SensingTime()
	require.True(t, time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestSensingTimeSubSecond(t *testing.T) {
	p := ParsedSecondaryHeader{CoarseTime: 10, FineTime: 0.5}
	got := p.SensingTime()
	require.Equal(t, 10, got.Second())
	require.InDelta(t, 0.5e9, float64(got.Nanosecond()), 1e6)
}

func TestDecodeSecondaryHeaderRawTruncated(t *testing.T) {
	_, err := decodeSecondaryHeaderRaw(make([]byte, SecondaryHeaderSize-1))
	require.Error(t, err)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, ErrTruncatedFile, decErr.Kind)
}

func TestRgdecSampleRateFraction(t *testing.T) {
	l, m, ok := Rgdec0.SampleRateFraction()
	require.True(t, ok)
	require.Equal(t, 3, l)
	require.Equal(t, 4, m)

	_, _, ok = Rgdec2.SampleRateFraction()
	require.False(t, ok, "code 2 is reserved and must report ok=false")
}

func TestBaqModeReservedCode(t *testing.T) {
	m := BaqMode(7)
	require.False(t, m.Known())
	require.Equal(t, Reserved, m.String())
	require.False(t, m.IsFDBAQ())
	require.False(t, m.IsBypass())
}
