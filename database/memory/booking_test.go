package memory

import (
	"testing"
	"time"

	"github.com/dentabookhq/core/model"
)

func TestAppointmentLifecycle(t *testing.T) {
	a, err := datastore.CreateAppointment(confDBName, model.Appointment{
		ClinicID:  "c1",
		DoctorID:  "d1",
		PatientID: adminUser.ID,
		Starts:    time.Now().Add(24 * time.Hour),
		Minutes:   30,
		Reason:    "cleaning",
	})
	if err != nil {
		t.Fatal(err)
	} else if a.Status != model.AppointmentScheduled {
		t.Errorf("expected default status %s got %s", model.AppointmentScheduled, a.Status)
	}

	if err := datastore.SetAppointmentStatus(confDBName, a.ID, model.AppointmentConfirmed); err != nil {
		t.Fatal(err)
	}

	a2, err := datastore.FindAppointment(confDBName, a.ID)
	if err != nil {
		t.Fatal(err)
	} else if a2.Status != model.AppointmentConfirmed {
		t.Errorf("expected status %s got %s", model.AppointmentConfirmed, a2.Status)
	}

	appts, err := datastore.ListAppointments(confDBName, adminUser.ID)
	if err != nil {
		t.Fatal(err)
	} else if len(appts) == 0 {
		t.Errorf("expected at least 1 appointment")
	}
}

func TestListAppointmentsBetween(t *testing.T) {
	from := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	inside, err := datastore.CreateAppointment(confDBName, model.Appointment{
		ClinicID:  "c1",
		PatientID: "p-window",
		Starts:    from.Add(9 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := datastore.CreateAppointment(confDBName, model.Appointment{
		ClinicID:  "c1",
		PatientID: "p-window",
		Starts:    to.Add(time.Hour),
	}); err != nil {
		t.Fatal(err)
	}

	appts, err := datastore.ListAppointmentsBetween(confDBName, from, to)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, a := range appts {
		if a.ID == inside.ID {
			found = true
		}
		if !a.Starts.Before(to) || a.Starts.Before(from) {
			t.Errorf("appointment %s outside window: %v", a.ID, a.Starts)
		}
	}
	if !found {
		t.Errorf("expected appointment inside window to be returned")
	}
}
