package dentabook

import (
	"net/http"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
)

type doctors struct {
	log *logger.Logger
}

func (d *doctors) list(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	list, err := datastore.ListDoctors(tenant.Name, r.URL.Query().Get("clinicId"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, list)
}

func (d *doctors) get(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	id := getURLPart(r.URL.Path, 2)

	doctor, err := datastore.FindDoctor(tenant.Name, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	respond(w, http.StatusOK, doctor)
}

func (d *doctors) create(w http.ResponseWriter, r *http.Request) {
	tenant, _, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var doctor model.Doctor
	if err := parseBody(r.Body, &doctor); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(doctor.FullName) == 0 {
		http.Error(w, "doctor name is required", http.StatusBadRequest)
		return
	}

	// a doctor always belongs to an existing clinic
	if _, err := datastore.FindClinic(tenant.Name, doctor.ClinicID); err != nil {
		http.Error(w, "clinic not found", http.StatusNotFound)
		return
	}

	doctor, err = datastore.CreateDoctor(tenant.Name, doctor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusCreated, doctor)
}
