package ports

import (
	"context"
	"io"
)

// StoredFile describes a file persisted by a FileStore.
type StoredFile struct {
	Path string
	Size int64
}

// FileStore persists uploaded file content and yields a descriptor for the
// stored copy.
type FileStore interface {
	Save(ctx context.Context, fileName string, content io.Reader) (*StoredFile, error)
}
