package dentabook

import (
	"context"
	"net/http"
	"time"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/upload"

	"github.com/google/uuid"
)

// uploads drives the four media endpoints and the cancel endpoint
// through the upload pipeline.
type uploads struct {
	pipe *upload.Pipeline
	log  *logger.Logger
}

func (u *uploads) profileImage(w http.ResponseWriter, r *http.Request) {
	u.process(w, r, upload.KindProfile, "profileImage")
}

func (u *uploads) clinicImage(w http.ResponseWriter, r *http.Request) {
	u.process(w, r, upload.KindClinic, "clinicImage")
}

func (u *uploads) doctorImage(w http.ResponseWriter, r *http.Request) {
	u.process(w, r, upload.KindDoctor, "doctorImage")
}

func (u *uploads) generalImage(w http.ResponseWriter, r *http.Request) {
	u.process(w, r, upload.KindGeneral, "image")
}

func (u *uploads) process(w http.ResponseWriter, r *http.Request, kind upload.Kind, field string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		respondErr(w, http.StatusUnauthorized, err)
		return
	}

	limits := upload.LimitsFor(kind)

	req := upload.Request{
		UploadID: uploadID(r),
		Kind:     kind,
		DBName:   tenant.Name,
		Actor:    auth,
		Ops:      u.opsFor(kind, tenant.Name),
	}

	if limits.RequiresEntityID {
		req.EntityID = r.Form.Get(limits.EntityIDField)
	}

	// a missing file part surfaces from the pipeline validation
	if file, h, err := r.FormFile(field); err == nil {
		defer file.Close()

		req.File = &upload.FileDescriptor{
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
			Size:        h.Size,
			Body:        file,
		}
	}

	res, err := u.pipe.Run(r.Context(), req)
	if err != nil {
		respondErr(w, upload.StatusCode(err), err)
		return
	}

	u.audit(tenant.Name, auth, res)

	body := map[string]any{
		"success":  true,
		"imageUrl": res.URL,
		"message":  kind.String() + " image uploaded",
	}
	for k, v := range res.Extra {
		body[k] = v
	}

	respond(w, http.StatusCreated, body)
}

// audit records a file row for bookkeeping, outside the commit path. A
// failure here never fails the upload.
func (u *uploads) audit(dbName string, auth model.Auth, res upload.Result) {
	f := model.File{
		AccountID: auth.UserID,
		Key:       res.Key,
		URL:       res.URL,
		Size:      res.Size,
		Uploaded:  time.Now(),
	}

	if _, err := datastore.AddFile(dbName, f); err != nil {
		u.log.Error().Err(err).Str("key", res.Key).Msg("cannot record file audit row")
	}
}

func (u *uploads) cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := getURLPart(r.URL.Path, 2)

	if err := u.pipe.CancelUpload(id); err != nil {
		respondErr(w, upload.StatusCode(err), err)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "upload cancelled",
	})
}

func (u *uploads) listFiles(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, true)
	if err != nil {
		respondErr(w, http.StatusUnauthorized, err)
		return
	}

	files, err := datastore.ListAllFiles(tenant.Name, r.URL.Query().Get("accountId"))
	if err != nil {
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, files)
}

func (u *uploads) opsFor(kind upload.Kind, dbName string) upload.EntityOps {
	switch kind {
	case upload.KindProfile:
		return profileOps{dbName: dbName}
	case upload.KindClinic:
		return clinicOps{dbName: dbName}
	case upload.KindDoctor:
		return doctorOps{dbName: dbName}
	}
	return generalOps{}
}

func uploadID(r *http.Request) string {
	if id := r.Header.Get("X-Upload-Id"); len(id) > 0 {
		return id
	}
	return uuid.NewString()
}

func respondErr(w http.ResponseWriter, code int, err error) {
	respond(w, code, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

// profileOps commits to the authenticated caller, no target entity.
type profileOps struct {
	dbName string
}

func (o profileOps) ValidateEntity(ctx context.Context, entityID string) (bool, error) {
	return true, nil
}

func (o profileOps) Commit(ctx context.Context, url, entityID string, actor model.Auth) error {
	return datastore.SetUserProfileImage(o.dbName, actor.UserID, url)
}

func (o profileOps) Response(entityID string, actor model.Auth) map[string]any {
	return map[string]any{"userId": actor.UserID}
}

type clinicOps struct {
	dbName string
}

func (o clinicOps) ValidateEntity(ctx context.Context, entityID string) (bool, error) {
	if _, err := datastore.FindClinic(o.dbName, entityID); err != nil {
		return false, nil
	}
	return true, nil
}

func (o clinicOps) Commit(ctx context.Context, url, entityID string, actor model.Auth) error {
	return datastore.SetClinicImage(o.dbName, entityID, url)
}

func (o clinicOps) Response(entityID string, actor model.Auth) map[string]any {
	return map[string]any{"clinicId": entityID}
}

type doctorOps struct {
	dbName string
}

func (o doctorOps) ValidateEntity(ctx context.Context, entityID string) (bool, error) {
	if _, err := datastore.FindDoctor(o.dbName, entityID); err != nil {
		return false, nil
	}
	return true, nil
}

func (o doctorOps) Commit(ctx context.Context, url, entityID string, actor model.Auth) error {
	return datastore.SetDoctorImage(o.dbName, entityID, url)
}

func (o doctorOps) Response(entityID string, actor model.Auth) map[string]any {
	return map[string]any{"doctorId": entityID}
}

// generalOps keeps the asset unattached, the URL is the whole result.
type generalOps struct{}

func (generalOps) ValidateEntity(ctx context.Context, entityID string) (bool, error) {
	return true, nil
}

func (generalOps) Commit(ctx context.Context, url, entityID string, actor model.Auth) error {
	return nil
}

func (generalOps) Response(entityID string, actor model.Auth) map[string]any {
	return nil
}
