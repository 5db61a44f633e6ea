package reminder

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/database"
	"github.com/dentabookhq/core/email"
	"github.com/dentabookhq/core/logger"
	"github.com/dentabookhq/core/model"

	"github.com/go-co-op/gocron"
)

// Reminder emails every patient that has an appointment the next day.
type Reminder struct {
	DB        database.Persister
	Email     email.Mailer
	Scheduler *gocron.Scheduler

	FromEmail string
	FromName  string

	log *logger.Logger
}

func New(db database.Persister, mailer email.Mailer, fromEmail, fromName string, log *logger.Logger) *Reminder {
	return &Reminder{
		DB:        db,
		Email:     mailer,
		FromEmail: fromEmail,
		FromName:  fromName,
		log:       log,
	}
}

// Start schedules the daily run, at is a "15:04" wall-clock time in UTC.
func (rem *Reminder) Start(at string) error {
	rem.Scheduler = gocron.NewScheduler(time.UTC)

	if _, err := rem.Scheduler.Every(1).Day().At(at).Do(rem.run); err != nil {
		return err
	}

	rem.Scheduler.StartAsync()
	return nil
}

func (rem *Reminder) Stop() {
	if rem.Scheduler != nil {
		rem.Scheduler.Stop()
	}
}

func (rem *Reminder) run() {
	tenants, err := rem.DB.ListTenants()
	if err != nil {
		rem.log.Error().Err(err).Msg("error loading tenants for reminders")
		return
	}

	from := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	for _, tenant := range tenants {
		if err := rem.runTenant(tenant, from, to); err != nil {
			rem.log.Error().Err(err).Str("tenant", tenant.Name).Msg("error sending reminders")
		}
	}
}

func (rem *Reminder) runTenant(tenant model.Tenant, from, to time.Time) error {
	appts, err := rem.DB.ListAppointmentsBetween(tenant.Name, from, to)
	if err != nil {
		return err
	}

	for _, a := range appts {
		if a.Status == model.AppointmentCancelled {
			continue
		}

		if err := rem.send(tenant.Name, a); err != nil {
			rem.log.Error().Err(err).Str("appointment", a.ID).Msg("error sending reminder")
		}
	}

	return nil
}

func (rem *Reminder) send(dbName string, a model.Appointment) error {
	patient, err := rem.DB.FindUser(dbName, a.PatientID)
	if err != nil {
		return err
	}

	clinic, err := rem.DB.FindClinic(dbName, a.ClinicID)
	if err != nil {
		return err
	}

	when := a.Starts.Format("Monday January 2 at 15:04")
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your appointment at %s on %s.\n\nSee you soon.",
		patient.FullName,
		clinic.Name,
		when,
	)

	return rem.Email.Send(email.SendMailData{
		From:     rem.FromEmail,
		FromName: rem.FromName,
		To:       patient.Email,
		ToName:   patient.FullName,
		Subject:  fmt.Sprintf("Appointment reminder: %s", clinic.Name),
		TextBody: body,
	})
}
