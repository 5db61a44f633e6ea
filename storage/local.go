package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/dentabookhq/core/config"
	"github.com/dentabookhq/core/model"
)

type Local struct{}

func (Local) Save(ctx context.Context, data model.UploadFileData) (SavedFile, error) {
	dir := path.Join(os.TempDir(), path.Dir(data.FileKey))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return SavedFile{}, err
	}

	b, err := io.ReadAll(data.File)
	if err != nil {
		return SavedFile{}, err
	}

	if err := ctx.Err(); err != nil {
		return SavedFile{}, err
	}

	filename := path.Join(os.TempDir(), data.FileKey)
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return SavedFile{}, err
	}

	url := fmt.Sprintf("%s/localfs/%s", config.Current.LocalStorageURL, data.FileKey)
	return SavedFile{Key: data.FileKey, URL: url}, nil
}

func (Local) Delete(ctx context.Context, fileKey string) error {
	filename := path.Join(os.TempDir(), fileKey)
	return os.Remove(filename)
}
