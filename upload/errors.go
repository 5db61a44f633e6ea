package upload

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusClientClosedRequest is the non-standard nginx convention for a
// request abandoned by its client.
const StatusClientClosedRequest = 499

var (
	// ErrMissingFile no file part in the multipart request
	ErrMissingFile = errors.New("no image file provided")
	// ErrCancelled the upload was cancelled, by disconnect or via the
	// cancellation endpoint
	ErrCancelled = errors.New("upload cancelled")
	// ErrSessionNotFound no in-flight session for that id
	ErrSessionNotFound = errors.New("upload session not found")
	// ErrDuplicateSession an in-flight session already uses that id
	ErrDuplicateSession = errors.New("an upload with this id is already in progress")
)

// UnsupportedMediaTypeError the file MIME type is not an accepted image type.
type UnsupportedMediaTypeError struct {
	ContentType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q, accepted: jpeg, jpg, png, webp", e.ContentType)
}

// PayloadTooLargeError the file exceeds the per-kind size limit.
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file size %d exceeds the %d bytes limit", e.Size, e.Limit)
}

// MissingEntityIDError the kind requires an entity id and the form field
// was absent.
type MissingEntityIDError struct {
	Field string
}

func (e *MissingEntityIDError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// EntityNotFoundError the referenced entity does not exist.
type EntityNotFoundError struct {
	Field string
	ID    string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("no record found for %s %q", e.Field, e.ID)
}

// UpstreamError the blob store transfer failed or timed out.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("file storage unavailable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PersistenceError the database commit of the asset URL failed.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not save image reference: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// StatusCode maps any pipeline error to the HTTP status reported to the
// caller. Every stage error must flow through here before serialization.
func StatusCode(err error) int {
	var (
		mediaType  *UnsupportedMediaTypeError
		tooLarge   *PayloadTooLargeError
		missingID  *MissingEntityIDError
		notFound   *EntityNotFoundError
		upstream   *UpstreamError
		persistErr *PersistenceError
	)

	switch {
	case errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrDuplicateSession),
		errors.As(err, &mediaType),
		errors.As(err, &tooLarge),
		errors.As(err, &missingID):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCancelled):
		return StatusClientClosedRequest
	case errors.As(err, &upstream):
		return http.StatusServiceUnavailable
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
