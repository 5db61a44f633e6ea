package sqlite

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
)

func (sl *SQLite) CreateAppointment(dbName string, a model.Appointment) (model.Appointment, error) {
	if len(a.Status) == 0 {
		a.Status = model.AppointmentScheduled
	}
	if a.Created.IsZero() {
		a.Created = time.Now()
	}

	id := sl.NewID()

	qry := fmt.Sprintf(`
		INSERT INTO %s_appointments(id, clinic_id, doctor_id, patient_id, starts, minutes, reason, status, created)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, dbName)

	_, err := sl.DB.Exec(
		qry,
		id,
		a.ClinicID,
		a.DoctorID,
		a.PatientID,
		a.Starts,
		a.Minutes,
		a.Reason,
		a.Status,
		a.Created,
	)
	if err != nil {
		return a, err
	}

	a.ID = id
	return a, nil
}

func (sl *SQLite) FindAppointment(dbName, id string) (a model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_appointments
		WHERE id = $1
	`, dbName)

	row := sl.DB.QueryRow(qry, id)

	err = scanAppointment(row, &a)
	return
}

func (sl *SQLite) ListAppointments(dbName, patientID string) (results []model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_appointments
		WHERE patient_id = $1
		ORDER BY starts
	`, dbName)

	rows, err := sl.DB.Query(qry, patientID)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Appointment
		if err = scanAppointment(rows, &a); err != nil {
			return
		}

		results = append(results, a)
	}

	err = rows.Err()
	return
}

func (sl *SQLite) ListAppointmentsBetween(dbName string, from, to time.Time) (results []model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_appointments
		WHERE starts >= $1 AND starts < $2
		ORDER BY starts
	`, dbName)

	rows, err := sl.DB.Query(qry, from, to)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Appointment
		if err = scanAppointment(rows, &a); err != nil {
			return
		}

		results = append(results, a)
	}

	err = rows.Err()
	return
}

func (sl *SQLite) SetAppointmentStatus(dbName, id, status string) error {
	qry := fmt.Sprintf(`
		UPDATE %s_appointments SET status = $2
		WHERE id = $1;
	`, dbName)

	if _, err := sl.DB.Exec(qry, id, status); err != nil {
		return err
	}
	return nil
}

func scanAppointment(rows Scanner, a *model.Appointment) error {
	return rows.Scan(
		&a.ID,
		&a.ClinicID,
		&a.DoctorID,
		&a.PatientID,
		&a.Starts,
		&a.Minutes,
		&a.Reason,
		&a.Status,
		&a.Created,
	)
}
