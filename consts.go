package s1l0

// FRef is the radar reference clock frequency, in Hz, that all raw timing
// counters (SWST, SWL, PRI, chirp ramp time) are expressed in cycles of.
const FRef = 37.53472224e6

// Reserved marks a decoded enum value that does not match any of the
// defined variants for its field. The raw integer is always retained
// alongside it; Reserved is a non-fatal tag, not a decode failure.
const Reserved = "Reserved"

// BaqMode is the 5-bit BAQ mode field of the secondary header.
type BaqMode uint8

const (
	BaqBypass    BaqMode = 0
	Baq3Bit      BaqMode = 3
	Baq4Bit      BaqMode = 4
	Baq5Bit      BaqMode = 5
	BaqFDBAQMode0 BaqMode = 12
	BaqFDBAQMode1 BaqMode = 13
	BaqFDBAQMode2 BaqMode = 14
)

// String names the BAQ mode, or Reserved for a code outside the defined set.
func (m BaqMode) String() string {
	switch m {
	case BaqBypass:
		return "Bypass"
	case Baq3Bit:
		return "BAQ3Bit"
	case Baq4Bit:
		return "BAQ4Bit"
	case Baq5Bit:
		return "BAQ5Bit"
	case BaqFDBAQMode0:
		return "FDBAQMode0"
	case BaqFDBAQMode1:
		return "FDBAQMode1"
	case BaqFDBAQMode2:
		return "FDBAQMode2"
	default:
		return Reserved
	}
}

// IsFDBAQ reports whether m is one of the three FDBAQ variants.
func (m BaqMode) IsFDBAQ() bool {
	return m == BaqFDBAQMode0 || m == BaqFDBAQMode1 || m == BaqFDBAQMode2
}

// IsBypass reports whether m is the fixed-width Bypass encoding.
func (m BaqMode) IsBypass() bool {
	return m == BaqBypass
}

// IsReservedBaq reports whether m is one of the non-goal 3/4/5-bit BAQ modes.
func (m BaqMode) IsReservedBaq() bool {
	return m == Baq3Bit || m == Baq4Bit || m == Baq5Bit
}

// Known reports whether m is one of the seven defined BAQ mode codes.
func (m BaqMode) Known() bool {
	switch m {
	case BaqBypass, Baq3Bit, Baq4Bit, Baq5Bit, BaqFDBAQMode0, BaqFDBAQMode1, BaqFDBAQMode2:
		return true
	default:
		return false
	}
}

// Rgdec is the 5-bit range decimation code, selecting a sample-rate
// fraction (L/M) of 4*FRef. Code 2 is reserved and absent from the table.
type Rgdec uint8

const (
	Rgdec0  Rgdec = 0
	Rgdec1  Rgdec = 1
	Rgdec2  Rgdec = 2 // reserved, no defined L/M
	Rgdec3  Rgdec = 3
	Rgdec4  Rgdec = 4
	Rgdec5  Rgdec = 5
	Rgdec6  Rgdec = 6
	Rgdec7  Rgdec = 7
	Rgdec8  Rgdec = 8
	Rgdec9  Rgdec = 9
	Rgdec10 Rgdec = 10
	Rgdec11 Rgdec = 11
)

// rgdecLM maps a range decimation code to its (L, M) sample-rate fraction
// pair, such that the sample rate equals (L/M) * 4 * FRef. Code 2 is
// reserved and intentionally absent.
var rgdecLM = map[Rgdec][2]int{
	Rgdec0:  {3, 4},
	Rgdec1:  {2, 3},
	Rgdec3:  {5, 9},
	Rgdec4:  {4, 9},
	Rgdec5:  {3, 8},
	Rgdec6:  {1, 3},
	Rgdec7:  {1, 4},
	Rgdec8:  {3, 19},
	Rgdec9:  {5, 32},
	Rgdec10: {3, 26},
	Rgdec11: {4, 37},
}

// SampleRateFraction returns (L, M, ok); ok is false for the reserved code 2
// or any code outside 0..11.
func (r Rgdec) SampleRateFraction() (l, m int, ok bool) {
	lm, found := rgdecLM[r]
	if !found {
		return 0, 0, false
	}

	return lm[0], lm[1], true
}

// Known reports whether r is a defined (non-reserved) range decimation code.
func (r Rgdec) Known() bool {
	_, ok := rgdecLM[r]
	return ok
}

// Polarisation is the 3-bit receive polarisation field.
type Polarisation uint8

const (
	PolHH Polarisation = 0
	PolHV Polarisation = 1
	PolVH Polarisation = 2
	PolVV Polarisation = 3
)

func (p Polarisation) String() string {
	switch p {
	case PolHH:
		return "HH"
	case PolHV:
		return "HV"
	case PolVH:
		return "VH"
	case PolVV:
		return "VV"
	default:
		return Reserved
	}
}

// Known reports whether p is one of the four defined polarisations.
func (p Polarisation) Known() bool {
	return p <= PolVV
}

// SignalType is the 4-bit echo/noise/calibration signal type field.
type SignalType uint8

const (
	SignalEcho                  SignalType = 0
	SignalNoise                 SignalType = 1
	SignalTxCal                 SignalType = 8
	SignalRxCal                 SignalType = 9
	SignalEPDNCal               SignalType = 10
	SignalTACal                 SignalType = 11
	SignalTxHCal                SignalType = 12
	SignalCal                   SignalType = 13
	SignalTxCalIso              SignalType = 14
	SignalRFCharacterisation    SignalType = 15
)

func (s SignalType) String() string {
	switch s {
	case SignalEcho:
		return "Echo"
	case SignalNoise:
		return "Noise"
	case SignalTxCal:
		return "TxCal"
	case SignalRxCal:
		return "RxCal"
	case SignalEPDNCal:
		return "EPDNCal"
	case SignalTACal:
		return "TACal"
	case SignalTxHCal:
		return "TxHCal"
	case SignalCal:
		return "Cal"
	case SignalTxCalIso:
		return "TxCalIsolation"
	case SignalRFCharacterisation:
		return "RFCharacterisation"
	default:
		return Reserved
	}
}

// IsEcho reports whether s is the nominal radar echo signal type.
func (s SignalType) IsEcho() bool {
	return s == SignalEcho
}
