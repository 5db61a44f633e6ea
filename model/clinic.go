package model

import "time"

// Clinic is one physical location in the tenant's network.
type Clinic struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	City     string    `json:"city"`
	Address  string    `json:"address"`
	Phone    string    `json:"phone"`
	Services []string  `json:"services"`
	ImageURL string    `json:"imageUrl"`
	Created  time.Time `json:"created"`
}

// Doctor practices at exactly one clinic.
type Doctor struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinicId"`
	FullName  string    `json:"fullName"`
	Specialty string    `json:"specialty"`
	Bio       string    `json:"bio"`
	ImageURL  string    `json:"imageUrl"`
	Created   time.Time `json:"created"`
}
