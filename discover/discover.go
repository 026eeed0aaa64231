// Package discover searches a URI (local filesystem or any TileDB-VFS
// backed object store) for raw Level 0 downlink files, grounded on the
// teacher's search.FindGsf/trawl (search/search.go): a recursive VFS.List
// walk matched against a basename glob, generalized from a hardcoded
// "*.gsf" pattern to a caller-supplied one.
package discover

import (
	"path/filepath"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// DefaultPattern is the basename glob used when FindLevel0Files is called
// with an empty pattern: raw Sentinel-1 L0 downlink files conventionally
// carry a ".dat" extension, unlike the teacher's "*.gsf".
const DefaultPattern = "*.dat"

// trawl recursively walks uri via the TileDB VFS, appending every file
// whose basename matches pattern to items. Directories are descended
// unconditionally; the match is applied to files only, exactly as the
// teacher's trawl does for GSF files.
func trawl(vfs *tiledb.VFS, pattern string, uri string, items []string) ([]string, error) {
	dirs, files, err := vfs.List(uri)
	if err != nil {
		return items, err
	}

	for _, file := range files {
		match, err := filepath.Match(pattern, filepath.Base(file))
		if err != nil {
			return items, err
		}

		if match {
			items = append(items, file)
		}
	}

	for _, dir := range dirs {
		items, err = trawl(vfs, pattern, dir, items)
		if err != nil {
			return items, err
		}
	}

	return items, nil
}

// FindLevel0Files recursively searches uri for files matching pattern
// (DefaultPattern if empty), using the TileDB Go bindings so the search
// works transparently over a local filesystem or an object store such as
// S3. configURI, if non-empty, is a TileDB config file governing access
// to the backend (credentials, endpoint overrides); an empty configURI
// uses TileDB's generic default config, exactly as the teacher's
// FindGsf/config_uri parameter does.
func FindLevel0Files(uri string, configURI string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	var (
		config *tiledb.Config
		err    error
	)

	if configURI == "" {
		config, err = tiledb.NewConfig()
	} else {
		config, err = tiledb.LoadConfig(configURI)
	}
	if err != nil {
		return nil, err
	}
	defer config.Free()

	ctx, err := tiledb.NewContext(config)
	if err != nil {
		return nil, err
	}
	defer ctx.Free()

	vfs, err := tiledb.NewVFS(ctx, config)
	if err != nil {
		return nil, err
	}
	defer vfs.Free()

	return trawl(vfs, pattern, uri, make([]string, 0, 16))
}
