package dentabook

import (
	"net/http"
	"strings"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"

	"golang.org/x/crypto/bcrypt"
)

type membership struct {
	log *logger.Logger
}

func (m *membership) emailExists(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(r.URL.Query().Get("e"))
	if len(email) == 0 {
		respond(w, http.StatusOK, false)
		return
	}

	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, "invalid DentaBook key", http.StatusUnauthorized)
		return
	}

	exists, err := datastore.UserEmailExists(tenant.Name, email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, exists)
}

func (m *membership) login(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, "invalid DentaBook key", http.StatusUnauthorized)
		return
	}

	var l model.Login
	if err := parseBody(r.Body, &l); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := datastore.FindUserByEmail(tenant.Name, strings.ToLower(l.Email))
	if err != nil {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(l.Password)); err != nil {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	jwtBytes, err := model.NewJWT(u.ID, u.Token)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, jwtBytes)
}

type registerData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

func (m *membership) register(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, "invalid DentaBook key", http.StatusUnauthorized)
		m.log.Error().Err(err).Msg("invalid DentaBook key")
		return
	}

	var data registerData
	if err := parseBody(r.Body, &data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data.Email = strings.ToLower(data.Email)
	if len(data.Email) == 0 || strings.Index(data.Email, "@") <= 0 {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}

	exists, err := datastore.UserEmailExists(tenant.Name, data.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	} else if exists {
		http.Error(w, "email already in use", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	u := model.User{
		Email:    data.Email,
		Password: string(hashed),
		FullName: data.FullName,
		Phone:    data.Phone,
		Role:     model.RolePatient,
		Token:    datastore.NewID(),
	}

	u, err = datastore.CreateUser(tenant.Name, u)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jwtBytes, err := model.NewJWT(u.ID, u.Token)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, jwtBytes)
}

func (m *membership) me(w http.ResponseWriter, r *http.Request) {
	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	u, err := datastore.FindUser(tenant.Name, auth.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	respond(w, http.StatusOK, u)
}
