package postgresql

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
	"github.com/lib/pq"
)

func (pg *PostgreSQL) CreateClinic(dbName string, c model.Clinic) (model.Clinic, error) {
	if c.Created.IsZero() {
		c.Created = time.Now()
	}

	qry := fmt.Sprintf(`
		INSERT INTO %s.clinics(name, city, address, phone, services, image_url, created)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`, dbName)

	var id string
	err := pg.DB.QueryRow(
		qry,
		c.Name,
		c.City,
		c.Address,
		c.Phone,
		pq.Array(c.Services),
		c.ImageURL,
		c.Created,
	).Scan(&id)
	if err != nil {
		return c, err
	}

	c.ID = id
	return c, nil
}

func (pg *PostgreSQL) UpdateClinic(dbName string, c model.Clinic) error {
	qry := fmt.Sprintf(`
		UPDATE %s.clinics SET
			name = $2,
			city = $3,
			address = $4,
			phone = $5,
			services = $6
		WHERE id = $1;
	`, dbName)

	_, err := pg.DB.Exec(
		qry,
		c.ID,
		c.Name,
		c.City,
		c.Address,
		c.Phone,
		pq.Array(c.Services),
	)
	return err
}

func (pg *PostgreSQL) FindClinic(dbName, clinicID string) (c model.Clinic, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.clinics
		WHERE id = $1
	`, dbName)

	row := pg.DB.QueryRow(qry, clinicID)

	err = scanClinic(row, &c)
	return
}

func (pg *PostgreSQL) ListClinics(dbName string) (results []model.Clinic, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.clinics
		ORDER BY name
	`, dbName)

	rows, err := pg.DB.Query(qry)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Clinic
		if err = scanClinic(rows, &c); err != nil {
			return
		}

		results = append(results, c)
	}

	err = rows.Err()
	return
}

func (pg *PostgreSQL) SetClinicImage(dbName, clinicID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s.clinics SET image_url = $2
		WHERE id = $1;
	`, dbName)

	if _, err := pg.DB.Exec(qry, clinicID, url); err != nil {
		return err
	}
	return nil
}

func scanClinic(rows Scanner, c *model.Clinic) error {
	return rows.Scan(
		&c.ID,
		&c.Name,
		&c.City,
		&c.Address,
		&c.Phone,
		pq.Array(&c.Services),
		&c.ImageURL,
		&c.Created,
	)
}

func (pg *PostgreSQL) CreateDoctor(dbName string, d model.Doctor) (model.Doctor, error) {
	if d.Created.IsZero() {
		d.Created = time.Now()
	}

	qry := fmt.Sprintf(`
		INSERT INTO %s.doctors(clinic_id, full_name, specialty, bio, image_url, created)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`, dbName)

	var id string
	err := pg.DB.QueryRow(
		qry,
		d.ClinicID,
		d.FullName,
		d.Specialty,
		d.Bio,
		d.ImageURL,
		d.Created,
	).Scan(&id)
	if err != nil {
		return d, err
	}

	d.ID = id
	return d, nil
}

func (pg *PostgreSQL) FindDoctor(dbName, doctorID string) (d model.Doctor, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.doctors
		WHERE id = $1
	`, dbName)

	row := pg.DB.QueryRow(qry, doctorID)

	err = scanDoctor(row, &d)
	return
}

func (pg *PostgreSQL) ListDoctors(dbName, clinicID string) (results []model.Doctor, err error) {
	where := "WHERE clinic_id = $1"
	if len(clinicID) == 0 {
		where = "WHERE $1 = $1"
	}

	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.doctors
		%s
		ORDER BY full_name
	`, dbName, where)

	rows, err := pg.DB.Query(qry, clinicID)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var d model.Doctor
		if err = scanDoctor(rows, &d); err != nil {
			return
		}

		results = append(results, d)
	}

	err = rows.Err()
	return
}

func (pg *PostgreSQL) SetDoctorImage(dbName, doctorID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s.doctors SET image_url = $2
		WHERE id = $1;
	`, dbName)

	if _, err := pg.DB.Exec(qry, doctorID, url); err != nil {
		return err
	}
	return nil
}

func scanDoctor(rows Scanner, d *model.Doctor) error {
	return rows.Scan(
		&d.ID,
		&d.ClinicID,
		&d.FullName,
		&d.Specialty,
		&d.Bio,
		&d.ImageURL,
		&d.Created,
	)
}
