package service

import (
	"context"
	"io"
)

// StorageService abstracts the media storage backend (S3 or local filesystem).
// Keys are slash-separated object paths scoped by owning entity, for example
// "brands/<id>/logo.png" or "generations/<id>/output.mp4".
type StorageService interface {
	// Put stores an object under the given key, overwriting any existing object
	Put(ctx context.Context, key string, body io.Reader, contentType string) error

	// Get opens the object stored under the given key
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under the given key.
	// Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored under the given key
	Exists(ctx context.Context, key string) (bool, error)
}
