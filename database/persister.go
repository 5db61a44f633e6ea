package database

import (
	"time"

	"github.com/dentabookhq/core/model"
)

const (
	DataStorePostgreSQL = "postgresql"
	DataStoreSQLite     = "sqlite"
	DataStoreMongoDB    = "mongo"
	DataStoreMemory     = "memory"
)

// Persister used for anything that persists to the database
type Persister interface {
	// Ping sends a ping to the db engine
	Ping() error
	// NewID generates a unique identifier usable in any model
	NewID() string

	// tenant (clinic network) related
	// CreateTenant creates a clinic network
	CreateTenant(model.Tenant) (model.Tenant, error)
	// FindTenant returns a tenant by its ID (the public key)
	FindTenant(tenantID string) (model.Tenant, error)
	// ListTenants lists every tenant in this system
	ListTenants() ([]model.Tenant, error)
	// TenantEmailExists checks if this tenant email exists
	TenantEmailExists(email string) (bool, error)

	// users (patients and staff)
	CreateUser(dbName string, u model.User) (model.User, error)
	FindUser(dbName, userID string) (model.User, error)
	FindUserByEmail(dbName, email string) (model.User, error)
	// FindUserByToken validates a session token pair
	FindUserByToken(dbName, userID, token string) (model.User, error)
	UserEmailExists(dbName, email string) (bool, error)
	// SetUserProfileImage commits a profile image URL to a user
	SetUserProfileImage(dbName, userID, url string) error

	// clinics
	CreateClinic(dbName string, c model.Clinic) (model.Clinic, error)
	UpdateClinic(dbName string, c model.Clinic) error
	FindClinic(dbName, clinicID string) (model.Clinic, error)
	ListClinics(dbName string) ([]model.Clinic, error)
	// SetClinicImage commits a clinic image URL to a clinic
	SetClinicImage(dbName, clinicID, url string) error

	// doctors
	CreateDoctor(dbName string, d model.Doctor) (model.Doctor, error)
	FindDoctor(dbName, doctorID string) (model.Doctor, error)
	// ListDoctors lists doctors, optionally scoped to one clinic
	ListDoctors(dbName, clinicID string) ([]model.Doctor, error)
	// SetDoctorImage commits a doctor image URL to a doctor
	SetDoctorImage(dbName, doctorID, url string) error

	// appointments
	CreateAppointment(dbName string, a model.Appointment) (model.Appointment, error)
	FindAppointment(dbName, id string) (model.Appointment, error)
	ListAppointments(dbName, patientID string) ([]model.Appointment, error)
	// ListAppointmentsBetween returns appointments starting in [from, to)
	ListAppointmentsBetween(dbName string, from, to time.Time) ([]model.Appointment, error)
	SetAppointmentStatus(dbName, id, status string) error

	// file audit records
	AddFile(dbName string, f model.File) (id string, err error)
	GetFileByID(dbName, fileID string) (model.File, error)
	DeleteFile(dbName, fileID string) error
	ListAllFiles(dbName, accountID string) ([]model.File, error)
}
