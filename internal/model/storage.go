package model

import (
	"context"
	"io"
)

// Storage is a write-only object store used for archiving artifacts.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}
