// Package uploader derives storage keys for uploaded files and issues
// the store operations.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skommel/form_uploads/internal/model"
	"github.com/skommel/form_uploads/internal/storage"
)

var (
	// ErrMissingHeaders reports a file record without a headers mapping.
	ErrMissingHeaders = errors.New("file record has no headers")

	// ErrUnsupportedContentType reports a declared content type absent
	// from the extension table.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

// Dispatcher stores uploaded files in an object store, one object per
// file, each under a freshly generated key.
type Dispatcher struct {
	store storage.ObjectStore
	meta  storage.MetadataRecorder // nil disables metadata records
	log   *slog.Logger
}

// New creates a dispatcher. meta may be nil when no metadata table is
// configured.
func New(store storage.ObjectStore, meta storage.MetadataRecorder, log *slog.Logger) *Dispatcher {
	return &Dispatcher{store: store, meta: meta, log: log}
}

// StoreOne stores a single file record and returns the generated key.
// The key is a fresh UUID plus the extension for the declared content
// type; it is never derived from the filename or content.
func (d *Dispatcher) StoreOne(ctx context.Context, file model.FileRecord) (string, error) {
	if file.Headers == nil {
		return "", fmt.Errorf("%w: field %q", ErrMissingHeaders, file.FieldName)
	}

	contentType := file.ContentType()
	ext, ok := model.ExtensionForContentType(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	key := uuid.NewString() + "." + ext
	if err := d.store.Put(ctx, key, file.Content); err != nil {
		d.log.Error("store failed", "key", key, "bucket", d.store.Bucket(), "error", err)
		return "", err
	}

	if d.meta != nil {
		now := time.Now().UTC().Format(time.RFC3339)
		err := d.meta.Record(ctx, model.FileMetadata{
			Key:         key,
			FileName:    file.FileName,
			SizeBytes:   int64(len(file.Content)),
			ContentType: contentType,
			Status:      model.StatusUploaded,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			d.log.Error("record metadata failed", "key", key, "error", err)
			return "", err
		}
	}

	d.log.Info("stored object", "key", key, "bucket", d.store.Bucket())
	return key, nil
}

// Dispatch stores every file concurrently and waits for all of them to
// settle. The first failure is returned; stores that already succeeded
// are not rolled back.
func (d *Dispatcher) Dispatch(ctx context.Context, files []model.FileRecord) ([]string, error) {
	keys := make([]string, len(files))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, file := range files {
		wg.Add(1)
		go func(i int, file model.FileRecord) {
			defer wg.Done()

			key, err := d.StoreOne(ctx, file)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			keys[i] = key
		}(i, file)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return keys, nil
}
