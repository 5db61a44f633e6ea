package postgresql

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
)

func (pg *PostgreSQL) CreateAppointment(dbName string, a model.Appointment) (model.Appointment, error) {
	if len(a.Status) == 0 {
		a.Status = model.AppointmentScheduled
	}
	if a.Created.IsZero() {
		a.Created = time.Now()
	}

	qry := fmt.Sprintf(`
		INSERT INTO %s.appointments(clinic_id, doctor_id, patient_id, starts, minutes, reason, status, created)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`, dbName)

	var id string
	err := pg.DB.QueryRow(
		qry,
		a.ClinicID,
		a.DoctorID,
		a.PatientID,
		a.Starts,
		a.Minutes,
		a.Reason,
		a.Status,
		a.Created,
	).Scan(&id)
	if err != nil {
		return a, err
	}

	a.ID = id
	return a, nil
}

func (pg *PostgreSQL) FindAppointment(dbName, id string) (a model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.appointments
		WHERE id = $1
	`, dbName)

	row := pg.DB.QueryRow(qry, id)

	err = scanAppointment(row, &a)
	return
}

func (pg *PostgreSQL) ListAppointments(dbName, patientID string) (results []model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.appointments
		WHERE patient_id = $1
		ORDER BY starts
	`, dbName)

	rows, err := pg.DB.Query(qry, patientID)
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

func (pg *PostgreSQL) ListAppointmentsBetween(dbName string, from, to time.Time) (results []model.Appointment, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.appointments
		WHERE starts >= $1 AND starts < $2
		ORDER BY starts
	`, dbName)

	rows, err := pg.DB.Query(qry, from, to)
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

func (pg *PostgreSQL) SetAppointmentStatus(dbName, id, status string) error {
	qry := fmt.Sprintf(`
		UPDATE %s.appointments SET status = $2
		WHERE id = $1;
	`, dbName)

	if _, err := pg.DB.Exec(qry, id, status); err != nil {
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
