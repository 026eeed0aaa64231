package s1l0

// MetadataTable is the full-file scan result: every packet's metadata plus
// a read-only view of the buffer its payload slices index into. Rows are
// produced once and are immutable afterward, matching the teacher's own
// split of "metadata" (the decoded fields) from "index" (positions into
// the underlying stream) into a pair of struct-of-arrays-shaped types
// rather than a row-object table (file.go's FileInfo/Index split).
type MetadataTable struct {
	rows []PacketMetadata
	buf  []byte
}

// ParseMetadata performs the one-shot full-file scan: it walks data once
// via the Packet Walker and returns a MetadataTable over the resulting
// rows and the buffer itself (payload slices are views into buf, which
// must outlive the table and any decode against it).
func ParseMetadata(data []byte) (*MetadataTable, error) {
	rows, err := walkPackets(data)
	if err != nil {
		return nil, err
	}

	return &MetadataTable{rows: rows, buf: data}, nil
}

// Len returns the number of packet rows in the table.
func (t *MetadataTable) Len() int {
	return len(t.rows)
}

// Row returns the metadata record for packet i.
func (t *MetadataTable) Row(i int) PacketMetadata {
	return t.rows[i]
}

// Rows returns the full slice of packet metadata records, in file order.
func (t *MetadataTable) Rows() []PacketMetadata {
	return t.rows
}

// Payload returns the compressed-sample payload bytes for row i, a view
// into the table's underlying buffer.
func (t *MetadataTable) Payload(i int) []byte {
	row := t.rows[i]
	return t.buf[row.PayloadOffset : row.PayloadOffset+int64(row.PayloadLength)]
}

// TotalBytes returns the size of the underlying file buffer, used by the
// packet-boundary-closure property (the sum of packet lengths must equal
// file size exactly).
func (t *MetadataTable) TotalBytes() int64 {
	return int64(len(t.buf))
}
