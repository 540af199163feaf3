// Package storage contains the object-store abstraction the document service
// is built on, plus its S3-compatible and in-memory implementations.
// Implementations must avoid local disk and rely on streaming I/O only.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned by Get and GetMetadata when no object exists under
// the requested key. Transport and backend faults are returned wrapped, with
// the original cause attached.
var ErrNotFound = errors.New("object not found")

// PutOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
// Metadata is attached to the object and must round-trip through GetMetadata.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// ObjectStore is the key/value/blob backend the document service addresses.
// Keys are hierarchical paths with "/" separators. Implementations must be
// safe for concurrent use by multiple goroutines.
type ObjectStore interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// GetMetadata retrieves an object's user metadata without fetching content.
	// Keys are returned lowercase regardless of backend header canonicalization.
	GetMetadata(ctx context.Context, key string) (map[string]string, error)
	// List returns the names of objects under prefix, relative to it.
	// Order is backend-defined.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes an object by key. The boolean reports whether a deletion
	// took place; false covers both "object did not exist" and backend refusal,
	// which the store contract does not distinguish.
	Delete(ctx context.Context, key string) (bool, error)
}
