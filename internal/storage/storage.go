// Package storage provides the object-storage and metadata backends
// used by the upload dispatcher.
package storage

import (
	"context"

	"github.com/skommel/form_uploads/internal/model"
)

// ObjectStore writes opaque blobs addressed by bucket-relative keys.
// Implemented by S3; fakes implement it in tests.
type ObjectStore interface {
	// Put writes body under key. The stored object carries no
	// metadata, ACL, or content type beyond the raw body.
	Put(ctx context.Context, key string, body []byte) error

	// Bucket returns the destination bucket name.
	Bucket() string
}

// MetadataRecorder persists a record describing a stored object.
type MetadataRecorder interface {
	Record(ctx context.Context, meta model.FileMetadata) error
}
