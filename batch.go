package s1l0

import (
	"context"
	"runtime"
	"sync"

	"github.com/alitto/pond"
	"github.com/samber/lo"
)

// DefaultBatchSize is the default number of indices DecodeSelection groups
// into each submission batch.
const DefaultBatchSize = 256

// ComplexMatrix is the dense (N, 2*num_quads) decoded-sample output of a
// selection decode: row-major complex64, one row per requested packet.
type ComplexMatrix struct {
	Rows int
	Cols int
	Data []complex64
}

// NewComplexMatrix allocates a zeroed matrix of the given shape.
func NewComplexMatrix(rows, cols int) *ComplexMatrix {
	return &ComplexMatrix{Rows: rows, Cols: cols, Data: make([]complex64, rows*cols)}
}

// Row returns a view into row i.
func (m *ComplexMatrix) Row(i int) []complex64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

func (m *ComplexMatrix) setRow(i int, samples []complex64) {
	copy(m.Row(i), samples)
}

// RowError pairs a failed output row index with the cause of its failure;
// returned alongside a partially-complete matrix rather than aborting the
// whole decode (§7's per-row error policy).
type RowError struct {
	Row int
	Err error
}

// DecodeSelection dispatches payload decode for a homogeneous selection of
// metadata rows (identical num_quads) across a worker pool, one task per
// packet, writing each result into its own row of a preallocated dense
// matrix. Ordering is stable: output row i always corresponds to
// indices[i], independent of task completion order. Cancelling ctx drops
// remaining tasks; already-decoded rows are retained, undecoded rows
// surface as RowErrors.
//
// Grounded on the teacher's cmd/main.go convert_gsf_list worker pool
// (pond.New with pond.Context(ctx), fixed worker count, Submit/StopAndWait)
// moved from file-granularity fan-out to packet-row-granularity fan-out.
// Indices are split into batches of batchSize via samber/lo.Chunk (used
// elsewhere in the teacher's own qa.go) and submitted one batch after
// another without waiting for a batch to finish, so batchSize does not
// bound the number of queued tasks; the output matrix is allocated for the
// whole selection up front.
func DecodeSelection(ctx context.Context, table *MetadataTable, indices []int, batchSize int) (*ComplexMatrix, []RowError, error) {
	if len(indices) == 0 {
		return NewComplexMatrix(0, 0), nil, nil
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	numQuads := int(table.Row(indices[0]).NumQuads())
	for _, idx := range indices {
		if int(table.Row(idx).NumQuads()) != numQuads {
			return nil, nil, &DecodeError{
				Kind:   ErrInconsistentChunk,
				Detail: "selection spans differing num_quads",
			}
		}
	}

	matrix := NewComplexMatrix(len(indices), 2*numQuads)
	started := make([]bool, len(indices))

	var mu sync.Mutex
	var rowErrors []RowError

	workers := runtime.NumCPU()
	pool := pond.New(workers, 0, pond.MinWorkers(workers), pond.Context(ctx))

	batches := lo.Chunk(indices, batchSize)
	outputRow := 0

	for _, batch := range batches {
		for _, idx := range batch {
			row := table.Row(idx)
			dst := outputRow

			pool.Submit(func() {
				started[dst] = true
				samples, err := decodeRowPayload(table, row)
				if err != nil {
					mu.Lock()
					rowErrors = append(rowErrors, RowError{Row: dst, Err: err})
					mu.Unlock()
					return
				}

				matrix.setRow(dst, samples)
			})

			outputRow++
		}
	}

	pool.StopAndWait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		for i, ran := range started {
			if !ran {
				rowErrors = append(rowErrors, RowError{Row: i, Err: ctxErr})
			}
		}
	}

	return matrix, rowErrors, nil
}

// decodeRowPayload dispatches a single packet's payload to the Bypass or
// FDBAQ decoder based on its BAQ mode, a tagged-sum dispatch in place of
// the dynamic per-packet-type dispatch the teacher resolves through Go's
// interface satisfaction (sub-record decode dispatch in record.go).
func decodeRowPayload(table *MetadataTable, row PacketMetadata) ([]complex64, error) {
	mode := row.BAQMode()
	numQuads := int(row.NumQuads())
	payload := table.Payload(row.Index)

	switch {
	case mode.IsBypass():
		return decodeBypass(payload, numQuads)
	case mode.IsFDBAQ():
		return decodeFDBAQ(payload, numQuads)
	default:
		return nil, &DecodeError{
			Kind:   ErrUnsupportedBaq,
			Row:    row.Index,
			Offset: row.PayloadOffset,
			Detail: "BAQ mode " + mode.String() + " is not decodable",
		}
	}
}
