package model

import "time"

// User is a person able to sign in: patients book appointments, staff and
// admins manage clinics.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Role         int       `json:"role"`
	ProfileImage string    `json:"profileImage"`
	Token        string    `json:"-"`
	Created      time.Time `json:"created"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
