package memory

import (
	"time"

	"github.com/dentabookhq/core/model"
)

func (m *Memory) AddFile(dbName string, f model.File) (id string, err error) {
	if len(f.ID) == 0 {
		f.ID = m.NewID()
	}
	if f.Uploaded.IsZero() {
		f.Uploaded = time.Now()
	}

	if err = create(m, dbName, colFiles, f.ID, f); err != nil {
		return
	}
	return f.ID, nil
}

func (m *Memory) GetFileByID(dbName, fileID string) (f model.File, err error) {
	err = getByID(m, dbName, colFiles, fileID, &f)
	return
}

func (m *Memory) DeleteFile(dbName, fileID string) error {
	return del(m, dbName, colFiles, fileID)
}

func (m *Memory) ListAllFiles(dbName, accountID string) ([]model.File, error) {
	files, err := all[model.File](m, dbName, colFiles)
	if err != nil {
		return nil, err
	}

	if len(accountID) > 0 {
		files = filter(files, func(f model.File) bool {
			return f.AccountID == accountID
		})
	}

	return sortSlice(files, func(a, b model.File) bool {
		return a.Uploaded.After(b.Uploaded)
	}), nil
}
