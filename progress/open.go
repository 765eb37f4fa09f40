package progress

import (
	"fmt"
	"path/filepath"
)

// DatabaseFile is used when the sqlite path names a directory.
const DatabaseFile = "progress.db"

// OpenBackend opens the named backend kind: file, sqlite or memory.
func OpenBackend(kind, path string) (Backend, error) {
	switch kind {
	case "", "file":
		return NewFileBackend(path)
	case "sqlite":
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, DatabaseFile)
		}
		return OpenSQLite(path)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("progress: unknown backend %q", kind)
	}
}
