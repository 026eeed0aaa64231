package s1l0

import (
	"context"
	"io"
	"os"
)

// Stream is the teacher's exact minimal Read+Seek interface (reader.go's
// Stream), letting OpenPacketFileStream accept either a stream of data
// from a file on disk or object store, or an in-memory byte stream —
// anything implementing these two methods, such as a *bytes.Reader or a
// memory-mapped region, not just a local path.
type Stream interface {
	Read(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
}

// PacketFile is the thin file façade named as an external collaborator
// in SPEC_FULL.md §11.1: it owns the in-memory file buffer and exposes
// the four core operations as methods, grounded on the teacher's
// OpenGSF/GsfFile/Close (file.go) — a small struct wrapping a byte
// source plus the metadata table parsed when the file is opened.
type PacketFile struct {
	path string
	buf  []byte
	meta *MetadataTable
}

// OpenPacketFile reads path fully into memory and parses its metadata in
// one pass, per §6's parse_metadata(path) -> MetadataTable operation. The
// whole-file-in-memory requirement follows §5: the file buffer is read
// fully into memory before batch decoding starts and is read-only for
// the lifetime of a decode.
func OpenPacketFile(path string) (*PacketFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return newPacketFile(path, buf)
}

// OpenPacketFileStream is OpenPacketFile generalized to any Stream:
// seeks to the start, reads it fully into memory, and parses metadata
// the same way, letting a caller substitute an in-memory bytes.Reader
// or a memory-mapped region for a local path, per SPEC_FULL.md §11.1.
func OpenPacketFileStream(name string, stream Stream) (*PacketFile, error) {
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	buf, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}

	return newPacketFile(name, buf)
}

func newPacketFile(path string, buf []byte) (*PacketFile, error) {
	meta, err := ParseMetadata(buf)
	if err != nil {
		return nil, err
	}

	return &PacketFile{path: path, buf: buf, meta: meta}, nil
}

// Metadata returns the full-file metadata table.
func (f *PacketFile) Metadata() *MetadataTable {
	return f.meta
}

// Chunks groups the file's metadata into acquisition chunks.
func (f *PacketFile) Chunks() []ChunkRange {
	return GroupChunks(f.meta)
}

// Ephemeris reassembles every complete sub-commutated ephemeris run in
// the file.
func (f *PacketFile) Ephemeris() ([]EphemerisRecord, int) {
	return DecodeEphemeris(f.meta)
}

// DecodeSelection decodes indices against the file's own metadata table,
// sequencing into the package-level Batch Executor (§4.6) the same way
// Metadata/Chunks/Ephemeris sequence into their own core operations, so
// callers holding a *PacketFile never need to reach past it to decode.
func (f *PacketFile) DecodeSelection(ctx context.Context, indices []int, batchSize int) (*ComplexMatrix, []RowError, error) {
	return DecodeSelection(ctx, f.meta, indices, batchSize)
}

// Path returns the source file path the buffer was read from.
func (f *PacketFile) Path() string {
	return f.path
}

// Close releases the in-memory buffer. Payload slices obtained from the
// file's MetadataTable must not be used after Close.
func (f *PacketFile) Close() error {
	f.buf = nil
	f.meta = nil
	return nil
}
