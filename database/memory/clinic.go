package memory

import (
	"time"

	"github.com/dentabookhq/core/model"
)

func (m *Memory) CreateClinic(dbName string, c model.Clinic) (model.Clinic, error) {
	if len(c.ID) == 0 {
		c.ID = m.NewID()
	}
	c.Created = time.Now()

	if err := create(m, dbName, colClinics, c.ID, c); err != nil {
		return c, err
	}
	return c, nil
}

func (m *Memory) UpdateClinic(dbName string, c model.Clinic) error {
	if _, err := m.FindClinic(dbName, c.ID); err != nil {
		return err
	}
	return create(m, dbName, colClinics, c.ID, c)
}

func (m *Memory) FindClinic(dbName, clinicID string) (c model.Clinic, err error) {
	err = getByID(m, dbName, colClinics, clinicID, &c)
	return
}

func (m *Memory) ListClinics(dbName string) ([]model.Clinic, error) {
	clinics, err := all[model.Clinic](m, dbName, colClinics)
	if err != nil {
		return nil, err
	}

	return sortSlice(clinics, func(a, b model.Clinic) bool {
		return a.Name < b.Name
	}), nil
}

func (m *Memory) SetClinicImage(dbName, clinicID, url string) error {
	c, err := m.FindClinic(dbName, clinicID)
	if err != nil {
		return err
	}

	c.ImageURL = url
	return create(m, dbName, colClinics, c.ID, c)
}

func (m *Memory) CreateDoctor(dbName string, d model.Doctor) (model.Doctor, error) {
	if len(d.ID) == 0 {
		d.ID = m.NewID()
	}
	d.Created = time.Now()

	if err := create(m, dbName, colDoctors, d.ID, d); err != nil {
		return d, err
	}
	return d, nil
}

func (m *Memory) FindDoctor(dbName, doctorID string) (d model.Doctor, err error) {
	err = getByID(m, dbName, colDoctors, doctorID, &d)
	return
}

func (m *Memory) ListDoctors(dbName, clinicID string) ([]model.Doctor, error) {
	doctors, err := all[model.Doctor](m, dbName, colDoctors)
	if err != nil {
		return nil, err
	}

	if len(clinicID) > 0 {
		doctors = filter(doctors, func(d model.Doctor) bool {
			return d.ClinicID == clinicID
		})
	}

	return sortSlice(doctors, func(a, b model.Doctor) bool {
		return a.FullName < b.FullName
	}), nil
}

func (m *Memory) SetDoctorImage(dbName, doctorID, url string) error {
	d, err := m.FindDoctor(dbName, doctorID)
	if err != nil {
		return err
	}

	d.ImageURL = url
	return create(m, dbName, colDoctors, d.ID, d)
}
