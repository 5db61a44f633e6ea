package model

import "time"

// Tenant is one clinic network (a group of clinics sharing patients, staff
// and bookings). Its Name keys the per-tenant schema/prefix/database in
// every persister implementation.
type Tenant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"-"`
	Created  time.Time `json:"created"`
}
