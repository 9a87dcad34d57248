package models

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. It is fixed at account creation
// and never changes afterwards.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a role string coming from a token or request body.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// User is the single account record shared by patients, doctors and admins.
// The doctor-only fields are zero-valued for every other role and omitted
// from JSON output.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	// Doctor profile fields
	Specialization     string   `json:"specialization,omitempty"`
	Experience         int      `json:"experience,omitempty"`
	AvailableDays      Weekdays `json:"availableDays,omitempty" gorm:"serializer:json"`
	AvailableTimeStart string   `json:"availableTimeStart,omitempty"`
	AvailableTimeEnd   string   `json:"availableTimeEnd,omitempty"`
}

// IsDoctor reports whether the account carries a doctor profile.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
