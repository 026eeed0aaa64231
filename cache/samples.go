package cache

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"

	"github.com/sarl0/s1l0"
)

// WriteSamples writes a decoded (N, 2*num_quads) complex sample matrix to
// a 2-dimensional dense TileDB array at uri: one "__tiledb_rows" dimension
// per packet, one "__tiledb_cols" dimension per interleaved I/Q sample,
// and two float32 attributes (Real, Imag), matching spec.md §6's cache
// file format (row-major (float32 real, float32 imag) pairs) expressed as
// a TileDB array instead of a flat dense file. Grounded on the teacher's
// SbpToTileDB dense-beam-array path (tiledb.go), the one place the
// teacher itself writes a 2D dense array rather than a 1D per-ping one.
func WriteSamples(ctx *tiledb.Context, uri string, matrix *s1l0.ComplexMatrix) error {
	if matrix.Rows == 0 || matrix.Cols == 0 {
		return errors.New("cache: refusing to write an empty sample matrix")
	}

	if err := createSampleArray(ctx, uri, matrix); err != nil {
		return err
	}

	realParts := make([]float32, len(matrix.Data))
	imagParts := make([]float32, len(matrix.Data))
	for i, v := range matrix.Data {
		realParts[i] = real(v)
		imagParts[i] = imag(v)
	}

	array, err := ArrayOpenWrite(ctx, uri)
	if err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	defer array.Free()
	defer array.Close()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	if _, err := query.SetDataBuffer("Real", realParts); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if _, err := query.SetDataBuffer("Imag", imagParts); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	subarr, err := array.NewSubarray()
	if err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	defer subarr.Free()

	if err := subarr.AddRangeByName("__tiledb_rows", tiledb.MakeRange(uint64(0), uint64(matrix.Rows-1))); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if err := subarr.AddRangeByName("__tiledb_cols", tiledb.MakeRange(uint64(0), uint64(matrix.Cols-1))); err != nil {
		return errors.Join(ErrWriteArray, err)
	}
	if err := query.SetSubarray(subarr); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	if err := query.Submit(); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	return query.Finalize()
}

func createSampleArray(ctx *tiledb.Context, uri string, matrix *s1l0.ComplexMatrix) error {
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer domain.Free()

	rowTile := uint64(matrix.Rows)
	if rowTile > 1024 {
		rowTile = 1024
	}
	rowDim, err := tiledb.NewDimension(ctx, "__tiledb_rows", tiledb.TILEDB_UINT64, []uint64{0, uint64(matrix.Rows - 1)}, rowTile)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer rowDim.Free()

	colTile := uint64(matrix.Cols)
	colDim, err := tiledb.NewDimension(ctx, "__tiledb_cols", tiledb.TILEDB_UINT64, []uint64{0, uint64(matrix.Cols - 1)}, colTile)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer colDim.Free()

	if err := domain.AddDimensions(rowDim, colDim); err != nil {
		return errors.Join(ErrCreateArray, err)
	}

	schema, err := tiledb.NewArraySchema(ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer schema.Free()

	if err := schema.SetDomain(domain); err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	if err := schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	if err := schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrCreateArray, err)
	}

	for _, name := range []string{"Real", "Imag"} {
		filters, err := tiledb.NewFilterList(ctx)
		if err != nil {
			return errors.Join(ErrCreateArray, err)
		}

		zstd, err := ZstdFilter(ctx, 9)
		if err != nil {
			filters.Free()
			return errors.Join(ErrCreateArray, err)
		}
		if err := filters.AddFilter(zstd); err != nil {
			zstd.Free()
			filters.Free()
			return errors.Join(ErrCreateArray, err)
		}
		zstd.Free()

		attr, err := tiledb.NewAttribute(ctx, name, tiledb.TILEDB_FLOAT32)
		if err != nil {
			filters.Free()
			return errors.Join(ErrCreateArray, err)
		}
		if err := attr.SetFilterList(filters); err != nil {
			attr.Free()
			filters.Free()
			return errors.Join(ErrCreateArray, err)
		}
		filters.Free()

		if err := schema.AddAttributes(attr); err != nil {
			attr.Free()
			return errors.Join(ErrCreateArray, err)
		}
		attr.Free()
	}

	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer array.Free()

	return array.Create(schema)
}
