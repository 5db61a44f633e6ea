package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/storage"
)

// EntityOps is the capability set each Kind provides: confirming the target
// record exists, durably attaching the asset URL to it, and shaping the
// kind-specific part of the response.
type EntityOps interface {
	// ValidateEntity reports whether the referenced record exists
	ValidateEntity(ctx context.Context, entityID string) (bool, error)
	// Commit durably associates the asset URL with the record
	Commit(ctx context.Context, url, entityID string, actor model.Auth) error
	// Response returns kind-specific response fields
	Response(entityID string, actor model.Auth) map[string]any
}

// FileDescriptor describes the uploaded multipart file.
type FileDescriptor struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// Request carries everything one upload needs through the stages.
type Request struct {
	UploadID string
	Kind     Kind
	DBName   string
	Actor    model.Auth
	EntityID string
	// File is nil when the request carried no file part
	File *FileDescriptor
	Ops  EntityOps
}

// Result of a completed upload.
type Result struct {
	Key   string
	URL   string
	Size  int64
	Extra map[string]any
}

// Pipeline executes uploads in stages: validate, stream to the blob store,
// commit, and compensate (delete the remote asset) when the commit fails or
// cancellation is detected after the asset was created.
type Pipeline struct {
	registry *Registry
	store    storage.Storer
	timeout  time.Duration
	log      *logger.Logger
}

func NewPipeline(registry *Registry, store storage.Storer, timeout time.Duration, log *logger.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Pipeline{
		registry: registry,
		store:    store,
		timeout:  timeout,
		log:      log,
	}
}

// Registry exposes the session registry, mainly for tests.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// CancelUpload triggers cancellation of an in-flight upload by id.
func (p *Pipeline) CancelUpload(id string) error {
	return p.registry.CancelSession(id)
}

// Run drives one upload through the stages and produces exactly one
// terminal response: a Result or one typed error. The session leaves the
// registry exactly once, on any terminal state.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	limits := LimitsFor(req.Kind)

	// pure checks first, no remote call happens for a request failing
	// local validation
	if err := p.validate(ctx, req, limits); err != nil {
		return Result{}, err
	}

	sess, err := p.registry.Create(req.UploadID, req.Kind)
	if err != nil {
		return Result{}, err
	}

	mon := Watch(ctx, sess.Cancel)
	defer mon.Stop()

	sess.advance(StateUploading)
	saved, err := p.transfer(ctx, sess, req, limits)
	if err != nil {
		if err == ErrCancelled {
			sess.finish(StateCancelled)
		} else {
			sess.finish(StateFailed)
		}
		return Result{}, err
	}

	// trailing window: the signal may have fired between transfer
	// completion and this check, the asset exists and must be rolled back
	if sess.Cancel.Fired() {
		p.compensate(saved)
		sess.finish(StateCancelled)
		return Result{}, ErrCancelled
	}

	sess.advance(StateCommitting)
	if err := req.Ops.Commit(ctx, saved.URL, req.EntityID, req.Actor); err != nil {
		p.compensate(saved)
		sess.finish(StateFailed)
		return Result{}, &PersistenceError{Err: err}
	}

	sess.finish(StateCompleted)

	return Result{
		Key:   saved.Key,
		URL:   saved.URL,
		Size:  req.File.Size,
		Extra: req.Ops.Response(req.EntityID, req.Actor),
	}, nil
}

func (p *Pipeline) validate(ctx context.Context, req Request, limits Limits) error {
	if req.File == nil || req.File.Body == nil {
		return ErrMissingFile
	}

	if !allowedTypes[strings.ToLower(req.File.ContentType)] {
		return &UnsupportedMediaTypeError{ContentType: req.File.ContentType}
	}

	if req.File.Size > limits.MaxSizeBytes {
		return &PayloadTooLargeError{Size: req.File.Size, Limit: limits.MaxSizeBytes}
	}

	if limits.RequiresEntityID {
		if len(req.EntityID) == 0 {
			return &MissingEntityIDError{Field: limits.EntityIDField}
		}

		exists, err := req.Ops.ValidateEntity(ctx, req.EntityID)
		if err != nil || !exists {
			return &EntityNotFoundError{Field: limits.EntityIDField, ID: req.EntityID}
		}
	}

	return nil
}

// transfer streams the file to the blob store as a cancelable operation:
// the session signal aborts the in-flight transfer via context
// cancellation, and the whole transfer is bounded by the pipeline timeout.
func (p *Pipeline) transfer(ctx context.Context, sess *Session, req Request, limits Limits) (storage.SavedFile, error) {
	if sess.Cancel.Fired() {
		return storage.SavedFile{}, ErrCancelled
	}

	upCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	sess.Cancel.Subscribe(cancel)

	saved, err := p.store.Save(upCtx, model.UploadFileData{
		FileKey:     p.fileKey(req, limits),
		File:        req.File.Body,
		ContentType: req.File.ContentType,
		Transform:   limits.Transform,
	})
	if err != nil {
		if sess.Cancel.Fired() {
			return storage.SavedFile{}, ErrCancelled
		}
		return storage.SavedFile{}, &UpstreamError{Err: err}
	}

	return saved, nil
}

// compensate deletes a remote asset that was created during this request
// but never committed. A failure here is logged, never surfaced, the caller
// is informed of the original error.
func (p *Pipeline) compensate(saved storage.SavedFile) {
	if err := p.store.Delete(context.Background(), saved.Key); err != nil {
		p.log.Error().Err(err).Str("key", saved.Key).Msg("compensation delete failed, asset may be orphaned")
		return
	}
	p.log.Info().Str("key", saved.Key).Msg("rolled back uncommitted asset")
}

func (p *Pipeline) fileKey(req Request, limits Limits) string {
	owner := req.EntityID
	if len(owner) == 0 {
		owner = req.Actor.UserID
	}

	publicID := fmt.Sprintf("%s_%s_%d", limits.PublicIDPrefix, owner, time.Now().UnixNano())

	return fmt.Sprintf("%s/%s/%s%s",
		req.DBName,
		limits.Folder,
		publicID,
		strings.ToLower(filepath.Ext(req.File.Name)),
	)
}
