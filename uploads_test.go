package dentabook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/storage"
	"github.com/dentabookhq/core/upload"
)

func uploadHandler(u *uploads, fn http.HandlerFunc) http.Handler {
	return middleware.Chain(
		fn,
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
		middleware.RequireAuth(datastore, volatile),
	)
}

func newUploadRequest(t *testing.T, target, field, filename, contentType, token string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("DB-PUBLIC-KEY", pubKey)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("cannot decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestUploadProfileImage(t *testing.T) {
	u := &uploads{pipe: pipe, log: appLog}
	h := uploadHandler(u, u.profileImage)

	req := newUploadRequest(t, "/profile-image", "profileImage", "me.jpg", "image/jpeg", userToken, []byte("fake-jpeg-bytes"), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("expected success true got %v", body["success"])
	}

	url, _ := body["imageUrl"].(string)
	if !strings.Contains(url, dbName+"/profiles/profile_"+patient.ID) {
		t.Errorf("unexpected image url %s", url)
	}

	usr, err := datastore.FindUser(dbName, patient.ID)
	if err != nil {
		t.Fatal(err)
	} else if usr.ProfileImage != url {
		t.Errorf("expected profile image committed, got %q", usr.ProfileImage)
	}

	files, err := datastore.ListAllFiles(dbName, patient.ID)
	if err != nil {
		t.Fatal(err)
	} else if len(files) == 0 {
		t.Errorf("expected an audit file row for the upload")
	}
}

func TestUploadRejectsBadRequests(t *testing.T) {
	u := &uploads{pipe: pipe, log: appLog}

	tt := []struct {
		name     string
		handler  http.HandlerFunc
		field    string
		filename string
		mime     string
		fields   map[string]string
		status   int
		errPart  string
	}{
		{
			name:     "wrong mime type",
			handler:  u.profileImage,
			field:    "profileImage",
			filename: "doc.pdf",
			mime:     "application/pdf",
			status:   http.StatusBadRequest,
			errPart:  "unsupported file type",
		},
		{
			name:     "missing clinic id",
			handler:  u.clinicImage,
			field:    "clinicImage",
			filename: "front.png",
			mime:     "image/png",
			status:   http.StatusBadRequest,
			errPart:  "clinicId is required",
		},
		{
			name:     "unknown doctor",
			handler:  u.doctorImage,
			field:    "doctorImage",
			filename: "doc.png",
			mime:     "image/png",
			fields:   map[string]string{"doctorId": "no-such-doctor"},
			status:   http.StatusNotFound,
			errPart:  "no record found",
		},
		{
			name:     "wrong field name",
			handler:  u.generalImage,
			field:    "attachment",
			filename: "img.png",
			mime:     "image/png",
			status:   http.StatusBadRequest,
			errPart:  "no image file provided",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			h := uploadHandler(u, tc.handler)

			req := newUploadRequest(t, "/upload", tc.field, tc.filename, tc.mime, staffToken, []byte("content"), tc.fields)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d got %d: %s", tc.status, w.Code, w.Body.String())
			}

			body := decodeBody(t, w)
			if body["success"] != false {
				t.Errorf("expected success false got %v", body["success"])
			}
			if msg, _ := body["error"].(string); !strings.Contains(msg, tc.errPart) {
				t.Errorf("expected error to contain %q got %q", tc.errPart, msg)
			}
		})
	}
}

func TestUploadPayloadTooLarge(t *testing.T) {
	u := &uploads{pipe: pipe, log: appLog}
	h := uploadHandler(u, u.profileImage)

	big := bytes.Repeat([]byte("x"), 6<<20)

	req := newUploadRequest(t, "/profile-image", "profileImage", "huge.jpg", "image/jpeg", userToken, big, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "exceeds") {
		t.Errorf("expected size error got %q", msg)
	}
}

// blockingStore parks every Save until its context is cancelled.
type blockingStore struct {
	started chan struct{}
	deletes int
}

func (b *blockingStore) Save(ctx context.Context, data model.UploadFileData) (storage.SavedFile, error) {
	close(b.started)
	<-ctx.Done()
	return storage.SavedFile{}, ctx.Err()
}

func (b *blockingStore) Delete(ctx context.Context, fileKey string) error {
	b.deletes++
	return nil
}

func TestCancelEndpointAbortsTransfer(t *testing.T) {
	store := &blockingStore{started: make(chan struct{})}
	slowPipe := upload.NewPipeline(upload.NewRegistry(), store, 30*time.Second, appLog)

	u := &uploads{pipe: slowPipe, log: appLog}
	h := uploadHandler(u, u.generalImage)

	const id = "http-cancel-test"

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		req := newUploadRequest(t, "/general-image", "image", "big.png", "image/png", userToken, []byte("payload"), nil)
		req.Header.Set("X-Upload-Id", id)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		done <- w
	}()

	<-store.started

	ch := uploadHandler(u, u.cancel)
	creq := httptest.NewRequest(http.MethodDelete, "/cancel/"+id, nil)
	creq.Header.Set("DB-PUBLIC-KEY", pubKey)
	creq.Header.Set("Authorization", "Bearer "+userToken)

	cw := httptest.NewRecorder()
	ch.ServeHTTP(cw, creq)

	if cw.Code != http.StatusOK {
		t.Fatalf("expected cancel to return 200 got %d: %s", cw.Code, cw.Body.String())
	}

	w := <-done
	if w.Code != upload.StatusClientClosedRequest {
		t.Fatalf("expected 499 got %d: %s", w.Code, w.Body.String())
	}

	// nothing was saved so nothing to roll back
	if store.deletes != 0 {
		t.Errorf("expected no compensation delete got %d", store.deletes)
	}

	if slowPipe.Registry().Len() != 0 {
		t.Errorf("expected registry to be empty")
	}
}

func TestCancelUnknownUpload(t *testing.T) {
	u := &uploads{pipe: pipe, log: appLog}
	h := uploadHandler(u, u.cancel)

	req := httptest.NewRequest(http.MethodDelete, "/cancel/does-not-exist", nil)
	req.Header.Set("DB-PUBLIC-KEY", pubKey)
	req.Header.Set("Authorization", "Bearer "+userToken)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadClinicImageCommits(t *testing.T) {
	clinic, err := datastore.CreateClinic(dbName, model.Clinic{Name: "Upload Test Clinic"})
	if err != nil {
		t.Fatal(err)
	}

	u := &uploads{pipe: pipe, log: appLog}
	h := uploadHandler(u, u.clinicImage)

	req := newUploadRequest(t, "/clinic-image", "clinicImage", "front.webp", "image/webp", staffToken,
		[]byte("webp-bytes"), map[string]string{"clinicId": clinic.ID})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["clinicId"] != clinic.ID {
		t.Errorf("expected clinicId %s got %v", clinic.ID, body["clinicId"])
	}

	c2, err := datastore.FindClinic(dbName, clinic.ID)
	if err != nil {
		t.Fatal(err)
	} else if c2.ImageURL == "" {
		t.Errorf("expected clinic image committed")
	}
}
