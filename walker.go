package s1l0

// PacketMetadata is one record per space packet: primary header, raw
// secondary header, and a descriptor of where its compressed sample
// payload lives in the underlying file buffer.
type PacketMetadata struct {
	Index int

	Primary   PrimaryHeader
	Secondary RawSecondaryHeader

	// PayloadOffset/PayloadLength describe the compressed-sample slice
	// following the 62-byte secondary header, as absolute offsets into
	// the file buffer the Packet Walker was given.
	PayloadOffset int64
	PayloadLength int

	// HeaderOffset is the absolute offset of this packet's primary
	// header in the file buffer.
	HeaderOffset int64
}

// Parsed returns the typed, scaled presentation of the packet's secondary
// header fields.
func (m PacketMetadata) Parsed() ParsedSecondaryHeader {
	return m.Secondary.ToParsed()
}

// NumQuads is a convenience accessor used throughout batch decoding and
// chunk grouping.
func (m PacketMetadata) NumQuads() uint16 {
	return m.Secondary.NumQuads
}

// BAQMode is a convenience accessor for the packet's BAQ mode code.
func (m PacketMetadata) BAQMode() BaqMode {
	return BaqMode(m.Secondary.BAQMode)
}

// walkPackets iterates data from offset 0, reading the 6-byte primary
// header and the (length+1)-byte payload that follows it, handing the
// payload's first 62 bytes to the secondary header decoder and recording
// the remainder as the compressed-sample slice. It advances strictly by
// the primary header's declared length field; EOF exactly on a packet
// boundary ends the walk successfully, EOF mid-packet is TruncatedFile.
// No resynchronization is attempted on a malformed boundary, mirroring
// the teacher's single forward-scanning Info() walk over fixed-size
// record headers (file.go).
func walkPackets(data []byte) ([]PacketMetadata, error) {
	var records []PacketMetadata

	offset := int64(0)
	size := int64(len(data))

	for offset < size {
		if offset+PrimaryHeaderSize > size {
			return records, newTruncatedFile(offset, int(offset+PrimaryHeaderSize-size))
		}

		primary, err := decodePrimaryHeader(data[offset : offset+PrimaryHeaderSize])
		if err != nil {
			return records, err
		}

		payloadLen := primary.PayloadLength()
		payloadStart := offset + PrimaryHeaderSize

		if payloadStart+int64(payloadLen) > size {
			return records, newTruncatedFile(payloadStart, int(payloadStart+int64(payloadLen)-size))
		}

		if payloadLen < SecondaryHeaderSize {
			return records, &DecodeError{
				Kind:   ErrTruncatedFile,
				Offset: payloadStart,
				Detail: "payload shorter than the fixed secondary header",
			}
		}

		secondary, err := decodeSecondaryHeaderRaw(data[payloadStart : payloadStart+int64(SecondaryHeaderSize)])
		if err != nil {
			return records, err
		}

		samplesStart := payloadStart + SecondaryHeaderSize
		samplesLen := payloadLen - SecondaryHeaderSize

		records = append(records, PacketMetadata{
			Index:         len(records),
			Primary:       primary,
			Secondary:     secondary,
			PayloadOffset: samplesStart,
			PayloadLength: samplesLen,
			HeaderOffset:  offset,
		})

		offset = payloadStart + int64(payloadLen)
	}

	return records, nil
}
