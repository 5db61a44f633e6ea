package memory

import (
	"time"

	"github.com/dentabookhq/core/model"
)

func (m *Memory) CreateAppointment(dbName string, a model.Appointment) (model.Appointment, error) {
	if len(a.ID) == 0 {
		a.ID = m.NewID()
	}
	if len(a.Status) == 0 {
		a.Status = model.AppointmentScheduled
	}
	a.Created = time.Now()

	if err := create(m, dbName, colAppointments, a.ID, a); err != nil {
		return a, err
	}
	return a, nil
}

func (m *Memory) FindAppointment(dbName, id string) (a model.Appointment, err error) {
	err = getByID(m, dbName, colAppointments, id, &a)
	return
}

func (m *Memory) ListAppointments(dbName, patientID string) ([]model.Appointment, error) {
	appts, err := all[model.Appointment](m, dbName, colAppointments)
	if err != nil {
		return nil, err
	}

	appts = filter(appts, func(a model.Appointment) bool {
		return a.PatientID == patientID
	})

	return sortSlice(appts, func(a, b model.Appointment) bool {
		return a.Starts.Before(b.Starts)
	}), nil
}

func (m *Memory) ListAppointmentsBetween(dbName string, from, to time.Time) ([]model.Appointment, error) {
	appts, err := all[model.Appointment](m, dbName, colAppointments)
	if err != nil {
		return nil, err
	}

	appts = filter(appts, func(a model.Appointment) bool {
		return !a.Starts.Before(from) && a.Starts.Before(to)
	})

	return sortSlice(appts, func(a, b model.Appointment) bool {
		return a.Starts.Before(b.Starts)
	}), nil
}

func (m *Memory) SetAppointmentStatus(dbName, id, status string) error {
	a, err := m.FindAppointment(dbName, id)
	if err != nil {
		return err
	}

	a.Status = status
	return create(m, dbName, colAppointments, a.ID, a)
}
