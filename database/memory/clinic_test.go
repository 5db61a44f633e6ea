package memory

import (
	"testing"

	"github.com/dentabookhq/core/model"
)

func TestClinicImageAndListing(t *testing.T) {
	c, err := datastore.CreateClinic(confDBName, model.Clinic{
		Name:     "Bright Smile",
		City:     "Montreal",
		Services: []string{"cleaning", "whitening"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := datastore.SetClinicImage(confDBName, c.ID, "https://cdn/clinic.jpg"); err != nil {
		t.Fatal(err)
	}

	c2, err := datastore.FindClinic(confDBName, c.ID)
	if err != nil {
		t.Fatal(err)
	} else if c2.ImageURL != "https://cdn/clinic.jpg" {
		t.Errorf("clinic image not saved, got %s", c2.ImageURL)
	}

	clinics, err := datastore.ListClinics(confDBName)
	if err != nil {
		t.Fatal(err)
	} else if len(clinics) == 0 {
		t.Errorf("expected at least 1 clinic")
	}
}

func TestDoctorsFilteredByClinic(t *testing.T) {
	c, err := datastore.CreateClinic(confDBName, model.Clinic{Name: "North Dental"})
	if err != nil {
		t.Fatal(err)
	}

	d, err := datastore.CreateDoctor(confDBName, model.Doctor{
		ClinicID:  c.ID,
		FullName:  "Dr. Tremblay",
		Specialty: "orthodontics",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := datastore.CreateDoctor(confDBName, model.Doctor{
		ClinicID: "other-clinic",
		FullName: "Dr. Elsewhere",
	}); err != nil {
		t.Fatal(err)
	}

	doctors, err := datastore.ListDoctors(confDBName, c.ID)
	if err != nil {
		t.Fatal(err)
	} else if len(doctors) != 1 {
		t.Fatalf("expected 1 doctor got %d", len(doctors))
	} else if doctors[0].ID != d.ID {
		t.Errorf("expected doctor id %s got %s", d.ID, doctors[0].ID)
	}

	if err := datastore.SetDoctorImage(confDBName, d.ID, "https://cdn/doc.jpg"); err != nil {
		t.Fatal(err)
	}

	d2, err := datastore.FindDoctor(confDBName, d.ID)
	if err != nil {
		t.Fatal(err)
	} else if d2.ImageURL != "https://cdn/doc.jpg" {
		t.Errorf("doctor image not saved, got %s", d2.ImageURL)
	}
}
