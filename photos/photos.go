package photos

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -source=./photos.go -destination=./test/mock_photos.go -package test

// Store persists uploaded patient photos in object storage.
//
// Delete is best-effort: a failed cleanup is logged and never surfaced,
// because photo cleanup must not block a record mutation that already
// committed.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string)
}

// StorageError wraps an object storage I/O failure.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("photo storage failure: %v", e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewKey generates a unique storage key for an uploaded photo.
func NewKey() string {
	return fmt.Sprintf("document_photos/%s.jpg", uuid.NewString())
}
