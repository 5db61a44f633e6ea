package model

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

type Appointment struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinicId"`
	DoctorID  string    `json:"doctorId"`
	PatientID string    `json:"patientId"`
	Starts    time.Time `json:"starts"`
	Minutes   int       `json:"minutes"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	Created   time.Time `json:"created"`
}
