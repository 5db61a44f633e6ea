package model

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gbrlsnchs/jwt/v3"
)

// Auth represents the authenticated actor of a request, either a patient
// or a clinic staff member.
type Auth struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   int    `json:"role"`
	Token  string `json:"-"`
}

func (auth Auth) ReconstructToken() string {
	return fmt.Sprintf("%s|%s", auth.UserID, auth.Token)
}

// JWTPayload contains the current user token
type JWTPayload struct {
	jwt.Payload
	Token string `json:"token,omitempty"`
}

var (
	HashSecret *jwt.HMACSHA
)

func init() {
	secret := os.Getenv("JWT_SECRET")
	if len(secret) == 0 {
		secret = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	HashSecret = jwt.NewHS256([]byte(secret))
}

const (
	RolePatient = 0
	RoleStaff   = 50
	RoleAdmin   = 100
)

// NewJWT signs a session token into a bearer JWT.
func NewJWT(userID, token string) (string, error) {
	pl := JWTPayload{
		Payload: jwt.Payload{
			Issuer:   "dentabook",
			IssuedAt: jwt.NumericDate(time.Now()),
		},
		Token: fmt.Sprintf("%s|%s", userID, token),
	}

	b, err := jwt.Sign(pl, HashSecret)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseSessionToken splits a "userID|token" pair carried in a JWT payload.
func ParseSessionToken(s string) (userID, token string, err error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid session token")
	}
	return parts[0], parts[1], nil
}
