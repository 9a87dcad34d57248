package models

import "time"

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus validates a status string from a request body.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is permitted out of s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransition reports whether the edge s -> to is a legal lifecycle
// transition: pending -> approved|cancelled, approved -> completed.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusApproved || to == StatusCancelled
	case StatusApproved:
		return to == StatusCompleted
	}
	return false
}

// Appointment links one patient and one doctor. The name fields are a
// snapshot taken at booking time and are not kept in sync with later
// profile renames.
type Appointment struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	PatientID   string            `json:"patientId" gorm:"index;not null"`
	PatientName string            `json:"patientName"`
	DoctorID    string            `json:"doctorId" gorm:"index;not null"`
	DoctorName  string            `json:"doctorName"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status" gorm:"not null;default:pending"`
	CreatedAt   time.Time         `json:"createdAt"`
}
