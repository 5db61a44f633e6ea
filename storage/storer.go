package storage

import (
	"context"

	"github.com/dentabookhq/core/model"
)

const (
	StorageProviderLocal = "local"
	StorageProviderS3    = "s3"
)

// SavedFile is the remote asset resulting from a successful transfer.
type SavedFile struct {
	// Key identifies the asset in the store, used for deletion
	Key string
	// URL is the public URL serving the asset
	URL string
}

// Storer saves and deletes blob files. Save must honor ctx cancellation so
// an in-flight transfer can be aborted.
type Storer interface {
	Save(ctx context.Context, data model.UploadFileData) (SavedFile, error)
	Delete(ctx context.Context, fileKey string) error
}
