package reminder

import (
	"strings"
	"testing"
	"time"

	"github.com/dentabookhq/core/database/memory"
	"github.com/dentabookhq/core/email"
	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/model"

	"github.com/rs/zerolog"
)

type fakeMailer struct {
	sent []email.SendMailData
}

func (fm *fakeMailer) Send(data email.SendMailData) error {
	fm.sent = append(fm.sent, data)
	return nil
}

func TestReminderRun(t *testing.T) {
	db := memory.New()

	tenant, err := db.CreateTenant(model.Tenant{Name: "remindertest", Email: "t@test.com", IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	patient, err := db.CreateUser(tenant.Name, model.User{
		Email:    "patient@test.com",
		FullName: "Pat Ient",
	})
	if err != nil {
		t.Fatal(err)
	}

	clinic, err := db.CreateClinic(tenant.Name, model.Clinic{Name: "Bright Smile"})
	if err != nil {
		t.Fatal(err)
	}

	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).Add(24*time.Hour + 10*time.Hour)

	if _, err := db.CreateAppointment(tenant.Name, model.Appointment{
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		Starts:    tomorrow,
	}); err != nil {
		t.Fatal(err)
	}

	// cancelled appointments get no reminder
	cancelled, err := db.CreateAppointment(tenant.Name, model.Appointment{
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		Starts:    tomorrow.Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SetAppointmentStatus(tenant.Name, cancelled.ID, model.AppointmentCancelled); err != nil {
		t.Fatal(err)
	}

	nop := zerolog.Nop()
	fm := &fakeMailer{}

	rem := New(db, fm, "no-reply@test.com", "DentaBook", &logger.Logger{Logger: &nop})
	rem.run()

	if len(fm.sent) != 1 {
		t.Fatalf("expected 1 reminder sent got %d", len(fm.sent))
	}

	msg := fm.sent[0]
	if msg.To != patient.Email {
		t.Errorf("expected reminder to %s got %s", patient.Email, msg.To)
	}
	if !strings.Contains(msg.TextBody, clinic.Name) {
		t.Errorf("expected body to name the clinic, got %s", msg.TextBody)
	}
}
