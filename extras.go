package dentabook

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/dentabookhq/core/extra"
	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/upload"
)

type extras struct {
	pipe *upload.Pipeline
	log  *logger.Logger
}

// resizeImage scales the uploaded image down to the requested width and
// sends the result through the general upload pipeline, the resized copy
// gets the same cancellation and rollback behavior as a direct upload.
func (ex *extras) resizeImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		respondErr(w, http.StatusUnauthorized, err)
		return
	}

	file, h, err := r.FormFile("image")
	if err != nil {
		respondErr(w, http.StatusBadRequest, upload.ErrMissingFile)
		return
	}
	defer file.Close()

	newWidth, err := strconv.ParseFloat(r.Form.Get("width"), 64)
	if err != nil || newWidth <= 0 {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := extra.ResizeImage(h.Filename, file, &buf, newWidth); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	resized := buf.Bytes()

	req := upload.Request{
		UploadID: uploadID(r),
		Kind:     upload.KindGeneral,
		DBName:   tenant.Name,
		Actor:    auth,
		Ops:      generalOps{},
		File: &upload.FileDescriptor{
			Name:        h.Filename + ".jpg",
			ContentType: "image/jpeg",
			Size:        int64(len(resized)),
			Body:        bytes.NewReader(resized),
		},
	}

	res, err := ex.pipe.Run(r.Context(), req)
	if err != nil {
		respondErr(w, upload.StatusCode(err), err)
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"success":  true,
		"imageUrl": res.URL,
		"message":  "image resized",
	})
}
