package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"order-up/internal/app/core"
)

// FileStore keeps each collection as a JSON array in <dir>/<collection>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load decodes the collection file into v. A file that does not exist yet is
// an empty collection; a file that exists but cannot be read or decoded is a
// store failure, never silently treated as empty.
func (s *FileStore) Load(_ context.Context, collection string, v any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", core.ErrStoreFailure, collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", core.ErrStoreFailure, collection, err)
	}
	return nil
}

// Save replaces the collection file. The data is written to a temp file in
// the same directory and renamed over the target, so readers never observe a
// half-written collection even if the process dies mid-save.
func (s *FileStore) Save(_ context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", core.ErrStoreFailure, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file for %s: %v", core.ErrStoreFailure, collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", core.ErrStoreFailure, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", core.ErrStoreFailure, collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace %s: %v", core.ErrStoreFailure, collection, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
