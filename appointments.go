package dentabook

import (
	"net/http"
	"time"

	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/middleware"
	"github.com/dentabookhq/core/model"
)

type appointments struct {
	log *logger.Logger
}

func (a *appointments) root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.list(w, r)
	case http.MethodPost:
		a.create(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *appointments) list(w http.ResponseWriter, r *http.Request) {
	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	list, err := datastore.ListAppointments(tenant.Name, auth.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, list)
}

func (a *appointments) create(w http.ResponseWriter, r *http.Request) {
	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var appt model.Appointment
	if err := parseBody(r.Body, &appt); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if appt.Starts.Before(time.Now()) {
		http.Error(w, "appointment must be in the future", http.StatusBadRequest)
		return
	}

	if _, err := datastore.FindClinic(tenant.Name, appt.ClinicID); err != nil {
		http.Error(w, "clinic not found", http.StatusNotFound)
		return
	}

	if len(appt.DoctorID) > 0 {
		if _, err := datastore.FindDoctor(tenant.Name, appt.DoctorID); err != nil {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
	}

	// patients book for themselves
	appt.PatientID = auth.UserID
	appt.Status = model.AppointmentScheduled

	appt, err = datastore.CreateAppointment(tenant.Name, appt)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusCreated, appt)
}

func (a *appointments) get(w http.ResponseWriter, r *http.Request) {
	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	id := getURLPart(r.URL.Path, 2)

	appt, err := datastore.FindAppointment(tenant.Name, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	// patients only see their own bookings
	if appt.PatientID != auth.UserID && auth.Role < model.RoleStaff {
		http.Error(w, "not enough permission", http.StatusForbidden)
		return
	}

	respond(w, http.StatusOK, appt)
}

type statusData struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (a *appointments) setStatus(w http.ResponseWriter, r *http.Request) {
	tenant, auth, err := middleware.Extract(r, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var data statusData
	if err := parseBody(r.Body, &data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch data.Status {
	case model.AppointmentScheduled, model.AppointmentConfirmed,
		model.AppointmentCancelled, model.AppointmentCompleted:
	default:
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	appt, err := datastore.FindAppointment(tenant.Name, data.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	// patients may only cancel their own booking, staff can do the rest
	if auth.Role < model.RoleStaff {
		if appt.PatientID != auth.UserID || data.Status != model.AppointmentCancelled {
			http.Error(w, "not enough permission", http.StatusForbidden)
			return
		}
	}

	if err := datastore.SetAppointmentStatus(tenant.Name, data.ID, data.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, true)
}
