// Package storage persists uploaded evidence files on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/classtrack/academic-records-api/internal/core/ports"
)

// LocalStore writes uploaded files into a single directory. Stored names
// are random so colliding client file names never overwrite each other.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// writing into it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save copies the content to disk and returns the stored-file descriptor.
func (s *LocalStore) Save(ctx context.Context, fileName string, content io.Reader) (_ *ports.StoredFile, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, uuid.NewString()+filepath.Ext(fileName))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("storage: create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: close file: %w", cerr)
		}
	}()

	size, err := io.Copy(f, content)
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("storage: write file: %w", err)
	}

	return &ports.StoredFile{Path: path, Size: size}, nil
}
