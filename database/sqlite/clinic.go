package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/dentabookhq/core/model"
)

func (sl *SQLite) CreateClinic(dbName string, c model.Clinic) (model.Clinic, error) {
	if c.Created.IsZero() {
		c.Created = time.Now()
	}

	id := sl.NewID()

	qry := fmt.Sprintf(`
		INSERT INTO %s_clinics(id, name, city, address, phone, services, image_url, created)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8);
	`, dbName)

	_, err := sl.DB.Exec(
		qry,
		id,
		c.Name,
		c.City,
		c.Address,
		c.Phone,
		strings.Join(c.Services, "|"),
		c.ImageURL,
		c.Created,
	)
	if err != nil {
		return c, err
	}

	c.ID = id
	return c, nil
}

func (sl *SQLite) UpdateClinic(dbName string, c model.Clinic) error {
	qry := fmt.Sprintf(`
		UPDATE %s_clinics SET
			name = $2,
			city = $3,
			address = $4,
			phone = $5,
			services = $6
		WHERE id = $1;
	`, dbName)

	_, err := sl.DB.Exec(
		qry,
		c.ID,
		c.Name,
		c.City,
		c.Address,
		c.Phone,
		strings.Join(c.Services, "|"),
	)
	return err
}

func (sl *SQLite) FindClinic(dbName, clinicID string) (c model.Clinic, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_clinics
		WHERE id = $1
	`, dbName)

	row := sl.DB.QueryRow(qry, clinicID)

	err = scanClinic(row, &c)
	return
}

func (sl *SQLite) ListClinics(dbName string) (results []model.Clinic, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_clinics
		ORDER BY name
	`, dbName)

	rows, err := sl.DB.Query(qry)
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

func (sl *SQLite) SetClinicImage(dbName, clinicID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s_clinics SET image_url = $2
		WHERE id = $1;
	`, dbName)

	if _, err := sl.DB.Exec(qry, clinicID, url); err != nil {
		return err
	}
	return nil
}

func scanClinic(rows Scanner, c *model.Clinic) error {
	var services string

	err := rows.Scan(
		&c.ID,
		&c.Name,
		&c.City,
		&c.Address,
		&c.Phone,
		&services,
		&c.ImageURL,
		&c.Created,
	)
	if err != nil {
		return err
	}

	if len(services) > 0 {
		c.Services = strings.Split(services, "|")
	}
	return nil
}

func (sl *SQLite) CreateDoctor(dbName string, d model.Doctor) (model.Doctor, error) {
	if d.Created.IsZero() {
		d.Created = time.Now()
	}

	id := sl.NewID()

	qry := fmt.Sprintf(`
		INSERT INTO %s_doctors(id, clinic_id, full_name, specialty, bio, image_url, created)
		VALUES($1, $2, $3, $4, $5, $6, $7);
	`, dbName)

	_, err := sl.DB.Exec(
		qry,
		id,
		d.ClinicID,
		d.FullName,
		d.Specialty,
		d.Bio,
		d.ImageURL,
		d.Created,
	)
	if err != nil {
		return d, err
	}

	d.ID = id
	return d, nil
}

func (sl *SQLite) FindDoctor(dbName, doctorID string) (d model.Doctor, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_doctors
		WHERE id = $1
	`, dbName)

	row := sl.DB.QueryRow(qry, doctorID)

	err = scanDoctor(row, &d)
	return
}

func (sl *SQLite) ListDoctors(dbName, clinicID string) (results []model.Doctor, err error) {
	where := "WHERE clinic_id = $1"
	if len(clinicID) == 0 {
		where = "WHERE $1 = $1"
	}

	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_doctors
		%s
		ORDER BY full_name
	`, dbName, where)

	rows, err := sl.DB.Query(qry, clinicID)
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

func (sl *SQLite) SetDoctorImage(dbName, doctorID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s_doctors SET image_url = $2
		WHERE id = $1;
	`, dbName)

	if _, err := sl.DB.Exec(qry, doctorID, url); err != nil {
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
