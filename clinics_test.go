package dentabook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dentabookhq/core/model"
)

func TestClinicCreateListAndSearch(t *testing.T) {
	c := &clinics{log: appLog}

	payload := model.Clinic{
		Name:     "Riverdale Dental",
		City:     "Montreal",
		Services: []string{"cleaning", "whitening"},
	}

	w := httptest.NewRecorder()
	staffHandler(c.create).ServeHTTP(w, jsonReq(t, http.MethodPost, "/clinics/create", staffToken, payload))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var created model.Clinic
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	} else if len(created.ID) == 0 {
		t.Fatal("expected the clinic to get an id")
	}

	w = httptest.NewRecorder()
	pubHandler(c.root).ServeHTTP(w, jsonReq(t, http.MethodGet, "/clinics", "", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var list []model.Clinic
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, cl := range list {
		if cl.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected listing to contain clinic %s", created.ID)
	}

	w = httptest.NewRecorder()
	pubHandler(c.get).ServeHTTP(w, jsonReq(t, http.MethodGet, "/clinics/"+created.ID, "", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	pubHandler(c.search).ServeHTTP(w, jsonReq(t, http.MethodGet, "/clinics/search?q=whitening+riverdale", "", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var results []model.Clinic
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}

	found = false
	for _, cl := range results {
		if cl.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected search to return clinic %s, got %d results", created.ID, len(results))
	}
}

func TestClinicCreateNeedsStaffRole(t *testing.T) {
	c := &clinics{log: appLog}

	w := httptest.NewRecorder()
	staffHandler(c.create).ServeHTTP(w, jsonReq(t, http.MethodPost, "/clinics/create", userToken, model.Clinic{
		Name: "Should Not Exist",
	}))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d: %s", w.Code, w.Body.String())
	}
}

func TestClinicUpdateUnknownID(t *testing.T) {
	c := &clinics{log: appLog}

	w := httptest.NewRecorder()
	staffHandler(c.update).ServeHTTP(w, jsonReq(t, http.MethodPost, "/clinics/update", staffToken, model.Clinic{
		ID:   "no-such-clinic",
		Name: "Renamed",
	}))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", w.Code, w.Body.String())
	}
}
