package dentabook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
)

func pubHandler(fn http.HandlerFunc) http.Handler {
	return middleware.Chain(fn, middleware.Cors(), middleware.WithTenant(datastore, volatile))
}

func authedHandler(fn http.HandlerFunc) http.Handler {
	return middleware.Chain(
		fn,
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
		middleware.RequireAuth(datastore, volatile),
	)
}

func staffHandler(fn http.HandlerFunc) http.Handler {
	return middleware.Chain(
		fn,
		middleware.Cors(),
		middleware.WithTenant(datastore, volatile),
		middleware.RequireAuth(datastore, volatile),
		middleware.RequireRole(model.RoleStaff),
	)
}

func jsonReq(t *testing.T, method, target, token string, v any) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if v != nil {
		if err := json.NewEncoder(&body).Encode(v); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("DB-PUBLIC-KEY", pubKey)
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRegisterLoginAndMe(t *testing.T) {
	reg := registerData{
		Email:    "newpatient@test.com",
		Password: "brand_new_pw",
		FullName: "New Patient",
		Phone:    "555-0100",
	}

	w := httptest.NewRecorder()
	pubHandler(mship.register).ServeHTTP(w, jsonReq(t, http.MethodPost, "/register", "", reg))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var token string
	if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
		t.Fatal(err)
	} else if len(token) == 0 {
		t.Fatal("expected a session token")
	}

	w = httptest.NewRecorder()
	authedHandler(mship.me).ServeHTTP(w, jsonReq(t, http.MethodGet, "/me", token, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var me model.User
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatal(err)
	} else if me.Email != reg.Email {
		t.Errorf("expected %s got %s", reg.Email, me.Email)
	} else if me.Role != model.RolePatient {
		t.Errorf("expected new accounts to be patients, got role %d", me.Role)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	w := httptest.NewRecorder()
	pubHandler(mship.login).ServeHTTP(w, jsonReq(t, http.MethodPost, "/login", "", model.Login{
		Email:    userEmail,
		Password: "not-the-password",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d: %s", w.Code, w.Body.String())
	}
}

func TestEmailExists(t *testing.T) {
	w := httptest.NewRecorder()
	pubHandler(mship.emailExists).ServeHTTP(w, jsonReq(t, http.MethodGet, "/email?e="+staffEmail, "", nil))

	if body := w.Body.String(); w.Code != http.StatusOK || body != "true" {
		t.Errorf("expected true got %d %q", w.Code, body)
	}

	w = httptest.NewRecorder()
	pubHandler(mship.emailExists).ServeHTTP(w, jsonReq(t, http.MethodGet, "/email?e=nobody@test.com", "", nil))

	if body := w.Body.String(); w.Code != http.StatusOK || body != "false" {
		t.Errorf("expected false got %d %q", w.Code, body)
	}
}
