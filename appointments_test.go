package dentabook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dentabookhq/core/model"
)

func TestBookAppointmentFlow(t *testing.T) {
	clinic, err := datastore.CreateClinic(dbName, model.Clinic{Name: "Booking Test Clinic"})
	if err != nil {
		t.Fatal(err)
	}

	a := &appointments{log: appLog}

	payload := model.Appointment{
		ClinicID: clinic.ID,
		Starts:   time.Now().Add(48 * time.Hour),
		Minutes:  30,
		Reason:   "checkup",
	}

	w := httptest.NewRecorder()
	authedHandler(a.root).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments", userToken, payload))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var appt model.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
		t.Fatal(err)
	} else if appt.PatientID != patient.ID {
		t.Errorf("expected booking owned by the caller, got %s", appt.PatientID)
	} else if appt.Status != model.AppointmentScheduled {
		t.Errorf("expected status scheduled got %s", appt.Status)
	}

	// owners see their booking, staff see everything
	w = httptest.NewRecorder()
	authedHandler(a.get).ServeHTTP(w, jsonReq(t, http.MethodGet, "/appointments/"+appt.ID, userToken, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	authedHandler(a.get).ServeHTTP(w, jsonReq(t, http.MethodGet, "/appointments/"+appt.ID, staffToken, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	// a patient cannot confirm, only cancel
	w = httptest.NewRecorder()
	authedHandler(a.setStatus).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments/status", userToken, statusData{
		ID:     appt.ID,
		Status: model.AppointmentConfirmed,
	}))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	authedHandler(a.setStatus).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments/status", staffToken, statusData{
		ID:     appt.ID,
		Status: model.AppointmentConfirmed,
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	authedHandler(a.setStatus).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments/status", userToken, statusData{
		ID:     appt.ID,
		Status: model.AppointmentCancelled,
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	got, err := datastore.FindAppointment(dbName, appt.ID)
	if err != nil {
		t.Fatal(err)
	} else if got.Status != model.AppointmentCancelled {
		t.Errorf("expected cancelled got %s", got.Status)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	clinic, err := datastore.CreateClinic(dbName, model.Clinic{Name: "Validation Clinic"})
	if err != nil {
		t.Fatal(err)
	}

	a := &appointments{log: appLog}

	// bookings must be in the future
	w := httptest.NewRecorder()
	authedHandler(a.root).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments", userToken, model.Appointment{
		ClinicID: clinic.ID,
		Starts:   time.Now().Add(-time.Hour),
	}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	authedHandler(a.root).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments", userToken, model.Appointment{
		ClinicID: "no-such-clinic",
		Starts:   time.Now().Add(time.Hour),
	}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	authedHandler(a.setStatus).ServeHTTP(w, jsonReq(t, http.MethodPost, "/appointments/status", staffToken, statusData{
		ID:     "whatever",
		Status: "rescheduled",
	}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}
