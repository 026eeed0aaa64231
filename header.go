package s1l0

import "encoding/binary"

// PrimaryHeaderSize is the fixed CCSDS-style primary header length in bytes.
const PrimaryHeaderSize = 6

// SecondaryHeaderSize is the fixed SAR secondary header length in bytes,
// always the first 62 bytes of every packet's payload.
const SecondaryHeaderSize = 62

// PrimaryHeader is the 6-byte, 48-bit CCSDS-style space packet primary
// header common to every packet in the file.
type PrimaryHeader struct {
	Version              uint8
	Type                 uint8
	SecondaryHeaderFlag   bool
	APIDProcessID        uint16
	APIDCategory         uint8
	SequenceFlags        uint8
	PacketSequenceCount  uint16
	PacketDataLength     uint16
}

// PayloadLength returns the number of payload bytes following the primary
// header, derived from the packet-data-length field (invariant: payload
// bytes = PacketDataLength + 1).
func (h PrimaryHeader) PayloadLength() int {
	return int(h.PacketDataLength) + 1
}

// decodePrimaryHeader parses a 6-byte CCSDS primary header. Field widths,
// following the teacher's fixed-header decode pattern of reading a packed
// big-endian word and masking sub-fields: 3-bit version, 1-bit type, 1-bit
// secondary header flag, 11-bit APID (7-bit process id + 4-bit category),
// 2-bit sequence flags, 14-bit sequence count, 16-bit packet data length.
func decodePrimaryHeader(buf []byte) (PrimaryHeader, error) {
	if len(buf) < PrimaryHeaderSize {
		return PrimaryHeader{}, newTruncatedFile(0, PrimaryHeaderSize-len(buf))
	}

	w0 := binary.BigEndian.Uint16(buf[0:2])
	w1 := binary.BigEndian.Uint16(buf[2:4])
	length := binary.BigEndian.Uint16(buf[4:6])

	apid := w0 & 0x07FF

	h := PrimaryHeader{
		Version:             uint8(w0 >> 13 & 0x7),
		Type:                uint8(w0 >> 12 & 0x1),
		SecondaryHeaderFlag:  w0&0x0800 != 0,
		APIDProcessID:       apid >> 4,
		APIDCategory:        uint8(apid & 0xF),
		SequenceFlags:       uint8(w1 >> 14 & 0x3),
		PacketSequenceCount: w1 & 0x3FFF,
		PacketDataLength:    length,
	}

	return h, nil
}
