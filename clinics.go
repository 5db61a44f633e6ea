package dentabook

import (
	"net/http"
	"strings"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
	"github.com/dentabookhq/core/search"
)

type clinics struct {
	log *logger.Logger
}

func (c *clinics) root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	list, err := datastore.ListClinics(tenant.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, list)
}

func (c *clinics) get(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	id := getURLPart(r.URL.Path, 2)

	clinic, err := datastore.FindClinic(tenant.Name, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	respond(w, http.StatusOK, clinic)
}

func (c *clinics) create(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var clinic model.Clinic
	if err := parseBody(r.Body, &clinic); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(clinic.Name) == 0 {
		http.Error(w, "clinic name is required", http.StatusBadRequest)
		return
	}

	clinic, err = datastore.CreateClinic(tenant.Name, clinic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	c.index(tenant.Name, clinic)

	respond(w, http.StatusCreated, clinic)
}

func (c *clinics) update(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var clinic model.Clinic
	if err := parseBody(r.Body, &clinic); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := datastore.UpdateClinic(tenant.Name, clinic); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	c.index(tenant.Name, clinic)

	respond(w, http.StatusOK, clinic)
}

func (c *clinics) search(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	keywords := r.URL.Query().Get("q")
	if len(keywords) == 0 {
		http.Error(w, "missing search keywords", http.StatusBadRequest)
		return
	}

	sr, err := ftsIndex.Search(tenant.Name, "clinics", keywords)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results := make([]model.Clinic, 0, len(sr.IDs))
	for _, docID := range sr.IDs {
		clinic, err := datastore.FindClinic(tenant.Name, search.ParseDocID(docID))
		if err != nil {
			// stale index entry
			continue
		}

		results = append(results, clinic)
	}

	respond(w, http.StatusOK, results)
}

// index feeds the public directory, failures are logged only.
func (c *clinics) index(dbName string, clinic model.Clinic) {
	text := strings.Join(append([]string{clinic.Name, clinic.City}, clinic.Services...), " ")
	if err := ftsIndex.Index(dbName, "clinics", clinic.ID, text); err != nil {
		c.log.Error().Err(err).Str("clinic", clinic.ID).Msg("cannot index clinic")
	}
}
