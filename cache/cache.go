// Package cache writes decoded Level 0 products — the metadata table, the
// ephemeris table, and a decoded complex sample matrix — to TileDB arrays,
// the external cache-file collaborator named in spec.md §6. Grounded on
// the teacher's tiledb.go (filter/array/query construction helpers) and
// schema.go (struct-tag-driven attribute schemas via stagparser), adapted
// from GSF's ping/attitude/SVP record types to this format's
// PacketMetadata/EphemerisRecord/ComplexMatrix.
package cache

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

var (
	ErrCreateArray = errors.New("error creating tiledb array")
	ErrWriteArray  = errors.New("error writing tiledb array")
	ErrAddFilter   = errors.New("error adding filter to filter list")
)

// ArrayOpenWrite opens uri for writing, creating the underlying array
// handle; callers are responsible for Free/Close.
func ArrayOpenWrite(ctx *tiledb.Context, uri string) (*tiledb.Array, error) {
	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return nil, err
	}

	if err := array.Open(tiledb.TILEDB_WRITE); err != nil {
		array.Free()
		return nil, err
	}

	return array, nil
}

// ZstdFilter builds a Zstandard compression filter at the given level, the
// teacher's default compressor for every numeric attribute (tiledb.go).
func ZstdFilter(ctx *tiledb.Context, level int32) (*tiledb.Filter, error) {
	filt, err := tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_ZSTD)
	if err != nil {
		return nil, err
	}

	if err := filt.SetOption(tiledb.TILEDB_COMPRESSION_LEVEL, level); err != nil {
		filt.Free()
		return nil, err
	}

	return filt, nil
}

// PositiveDeltaFilter builds a positive-delta filter, used ahead of
// Zstandard on the monotonically increasing row-index dimension, exactly
// as the teacher pairs them in attitude.go.
func PositiveDeltaFilter(ctx *tiledb.Context) (*tiledb.Filter, error) {
	return tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_POSITIVE_DELTA)
}

// addFilters appends each filter to list in order, mirroring the
// teacher's AddFilters helper (tiledb.go).
func addFilters(list *tiledb.FilterList, filters ...*tiledb.Filter) error {
	for _, f := range filters {
		if err := list.AddFilter(f); err != nil {
			return errors.Join(ErrAddFilter, err)
		}
	}

	return nil
}

// rowDimension builds the single "__tiledb_rows" dimension every array in
// this package is keyed by, tiled at min(tileHint, nrows) and compressed
// with positive-delta + zstd, matching the teacher's attitude_tiledb_array
// dimension setup.
func rowDimension(ctx *tiledb.Context, nrows uint64, tileHint uint64) (*tiledb.Dimension, error) {
	tileSz := tileHint
	if nrows < tileSz {
		tileSz = nrows
	}
	if tileSz == 0 {
		tileSz = 1
	}

	dim, err := tiledb.NewDimension(ctx, "__tiledb_rows", tiledb.TILEDB_UINT64, []uint64{0, nrows - 1}, tileSz)
	if err != nil {
		return nil, err
	}

	filters, err := tiledb.NewFilterList(ctx)
	if err != nil {
		dim.Free()
		return nil, err
	}
	defer filters.Free()

	delta, err := PositiveDeltaFilter(ctx)
	if err != nil {
		dim.Free()
		return nil, err
	}
	defer delta.Free()

	zstd, err := ZstdFilter(ctx, 16)
	if err != nil {
		dim.Free()
		return nil, err
	}
	defer zstd.Free()

	if err := addFilters(filters, delta, zstd); err != nil {
		dim.Free()
		return nil, err
	}

	if err := dim.SetFilterList(filters); err != nil {
		dim.Free()
		return nil, err
	}

	return dim, nil
}

// newDenseSchema builds a single-dimension dense array schema over nrows
// rows, row-major cell and tile order, matching every array this package
// creates (teacher's attitude_tiledb_array/schema.go pattern).
func newDenseSchema(ctx *tiledb.Context, nrows uint64, tileHint uint64) (*tiledb.ArraySchema, error) {
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return nil, err
	}
	defer domain.Free()

	dim, err := rowDimension(ctx, nrows, tileHint)
	if err != nil {
		return nil, err
	}
	defer dim.Free()

	if err := domain.AddDimensions(dim); err != nil {
		return nil, err
	}

	schema, err := tiledb.NewArraySchema(ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return nil, err
	}

	if err := schema.SetDomain(domain); err != nil {
		schema.Free()
		return nil, err
	}

	if err := schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, err
	}

	if err := schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, err
	}

	return schema, nil
}

// createArray builds the dense row schema via newDenseSchema, adds its
// attributes via attrs, then creates the array on disk/object-store at uri.
func createArray(ctx *tiledb.Context, uri string, nrows uint64, tileHint uint64, attrs func(*tiledb.ArraySchema) error) error {
	schema, err := newDenseSchema(ctx, nrows, tileHint)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer schema.Free()

	if err := attrs(schema); err != nil {
		return errors.Join(ErrCreateArray, err)
	}

	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateArray, err)
	}
	defer array.Free()

	if err := array.Create(schema); err != nil {
		return errors.Join(ErrCreateArray, err)
	}

	return nil
}

// writeWholeArray opens uri for writing, sets every buffer via setBuffers,
// writes the full [0, nrows) row range, and finalizes the query. Mirrors
// the teacher's ToTileDB write sequence (attitude.go).
func writeWholeArray(ctx *tiledb.Context, uri string, nrows uint64, setBuffers func(*tiledb.Query) error) error {
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

	if err := setBuffers(query); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	if nrows > 0 {
		subarr, err := array.NewSubarray()
		if err != nil {
			return errors.Join(ErrWriteArray, err)
		}
		defer subarr.Free()

		if err := subarr.AddRangeByName("__tiledb_rows", tiledb.MakeRange(uint64(0), nrows-1)); err != nil {
			return errors.Join(ErrWriteArray, err)
		}

		if err := query.SetSubarray(subarr); err != nil {
			return errors.Join(ErrWriteArray, err)
		}
	}

	if err := query.Submit(); err != nil {
		return errors.Join(ErrWriteArray, err)
	}

	return query.Finalize()
}
