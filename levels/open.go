package levels

import (
	"os"
	"path/filepath"
)

// Open returns the catalog and a loader for its maps. An empty catalogPath
// uses the bundled levels. Maps are read from mapsDir when set, otherwise
// from the catalog's directory.
func Open(catalogPath, mapsDir string) (*Catalog, *Loader, error) {
	if catalogPath == "" {
		c, err := LoadCatalog(FS, CatalogFile)
		if err != nil {
			return nil, nil, err
		}
		if mapsDir != "" {
			return c, NewLoader(os.DirFS(mapsDir), nil), nil
		}
		return c, NewLoader(nil, nil), nil
	}

	dir, name := filepath.Split(catalogPath)
	if dir == "" {
		dir = "."
	}
	c, err := LoadCatalog(os.DirFS(dir), name)
	if err != nil {
		return nil, nil, err
	}
	if mapsDir == "" {
		mapsDir = dir
	}
	return c, NewLoader(os.DirFS(mapsDir), nil), nil
}
