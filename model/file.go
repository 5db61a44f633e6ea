package model

import (
	"io"
	"time"
)

// UploadFileData is what the blob store receives for one streaming transfer.
// Transform is an opaque transformation spec forwarded as-is to the store.
type UploadFileData struct {
	FileKey     string
	File        io.ReadSeeker
	ContentType string
	Transform   string
}

// File is the audit record kept for every committed upload.
type File struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	Uploaded  time.Time `json:"uploaded"`
}
