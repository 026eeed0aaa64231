package cache

import (
	"errors"
	"reflect"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	stgpsr "github.com/yuin/stagparser"
)

var (
	ErrSchemaTag = errors.New("error reading tiledb schema tag")
)

// dtypeOf maps a struct tag's dtype attribute to a TileDB datatype,
// exactly the set the teacher's CreateAttr supports (tiledb.go).
func dtypeOf(name string) (tiledb.Datatype, bool) {
	switch name {
	case "int8":
		return tiledb.TILEDB_INT8, true
	case "uint8":
		return tiledb.TILEDB_UINT8, true
	case "int16":
		return tiledb.TILEDB_INT16, true
	case "uint16":
		return tiledb.TILEDB_UINT16, true
	case "int32":
		return tiledb.TILEDB_INT32, true
	case "uint32":
		return tiledb.TILEDB_UINT32, true
	case "int64":
		return tiledb.TILEDB_INT64, true
	case "uint64":
		return tiledb.TILEDB_UINT64, true
	case "float32":
		return tiledb.TILEDB_FLOAT32, true
	case "float64":
		return tiledb.TILEDB_FLOAT64, true
	default:
		return 0, false
	}
}

// attrFilterList builds the attribute's compression filter pipeline from
// its "filters" struct tag definitions, supporting the subset of the
// teacher's filter vocabulary this repository's numeric fields actually
// use: zstd(level=N) and bitw(window=N).
func attrFilterList(ctx *tiledb.Context, defs []stgpsr.Definition) (*tiledb.FilterList, error) {
	list, err := tiledb.NewFilterList(ctx)
	if err != nil {
		return nil, err
	}

	for _, def := range defs {
		switch def.Name() {
		case "zstd":
			lvl, ok := def.Attribute("level")
			if !ok {
				list.Free()
				return nil, errors.Join(ErrSchemaTag, errors.New("zstd level not defined"))
			}
			filt, err := ZstdFilter(ctx, int32(lvl.(int64)))
			if err != nil {
				list.Free()
				return nil, err
			}
			err = list.AddFilter(filt)
			filt.Free()
			if err != nil {
				list.Free()
				return nil, err
			}
		case "bitw":
			win, ok := def.Attribute("window")
			if !ok {
				list.Free()
				return nil, errors.Join(ErrSchemaTag, errors.New("bitw window not defined"))
			}
			filt, err := tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_BIT_WIDTH_REDUCTION)
			if err != nil {
				list.Free()
				return nil, err
			}
			if err := filt.SetOption(tiledb.TILEDB_BIT_WIDTH_MAX_WINDOW, int32(win.(int64))); err != nil {
				filt.Free()
				list.Free()
				return nil, err
			}
			err = list.AddFilter(filt)
			filt.Free()
			if err != nil {
				list.Free()
				return nil, err
			}
		}
	}

	return list, nil
}

// createAttr builds one TileDB attribute for fieldName using the dtype
// and filters declared in its tiledb/filters struct tags and attaches it
// to schema, mirroring the teacher's CreateAttr (tiledb.go).
func createAttr(ctx *tiledb.Context, schema *tiledb.ArraySchema, fieldName string, tdbDefs map[string]stgpsr.Definition, filterDefs []stgpsr.Definition) error {
	def, ok := tdbDefs["dtype"]
	if !ok {
		return errors.Join(ErrSchemaTag, errors.New("dtype tag not found for "+fieldName))
	}
	dtypeName, _ := def.Attribute("dtype")
	dtype, ok := dtypeOf(dtypeName.(string))
	if !ok {
		return errors.Join(ErrSchemaTag, errors.New("unsupported dtype for "+fieldName))
	}

	filters, err := attrFilterList(ctx, filterDefs)
	if err != nil {
		return err
	}
	defer filters.Free()

	attr, err := tiledb.NewAttribute(ctx, fieldName, dtype)
	if err != nil {
		return err
	}
	defer attr.Free()

	if err := attr.SetFilterList(filters); err != nil {
		return err
	}

	return schema.AddAttributes(attr)
}

// addSchemaAttrs reflects over row (a pointer to a struct whose exported
// fields carry `tiledb:"dtype=...,ftype=attr"` and `filters:"..."` tags)
// and attaches one TileDB attribute per non-dimension field to schema.
// Fields tagged ftype=dim are skipped — this package always uses the
// single implicit "__tiledb_rows" dimension instead. Grounded on the
// teacher's schemaAttrs (attitude.go) generalized to any tagged struct
// rather than one record type per call site.
func addSchemaAttrs(ctx *tiledb.Context, schema *tiledb.ArraySchema, row any) error {
	values := reflect.ValueOf(row).Elem()
	types := values.Type()

	filterDefs, err := stgpsr.ParseStruct(row, "filters")
	if err != nil {
		return errors.Join(ErrSchemaTag, err)
	}
	tdbDefs, err := stgpsr.ParseStruct(row, "tiledb")
	if err != nil {
		return errors.Join(ErrSchemaTag, err)
	}

	for i := 0; i < values.NumField(); i++ {
		name := types.Field(i).Name

		fieldTdbDefs := make(map[string]stgpsr.Definition)
		for _, d := range tdbDefs[name] {
			fieldTdbDefs[d.Name()] = d
		}

		ftypeDef, ok := fieldTdbDefs["ftype"]
		if !ok {
			return errors.Join(ErrSchemaTag, errors.New("ftype tag not found for "+name))
		}
		ftype, _ := ftypeDef.Attribute("ftype")
		if ftype == "dim" {
			continue
		}

		if err := createAttr(ctx, schema, name, fieldTdbDefs, filterDefs[name]); err != nil {
			return err
		}
	}

	return nil
}
