// Package repository abstracts the backing record store. Two interchangeable
// implementations exist: a Postgres-backed one for production and an
// in-memory one for tests and local runs. Which one serves is decided by
// configuration at startup, never by a compiled-in switch.
package repository

import (
	"context"

	"github.com/Gowthamdvr/care-connect/models"
)

// UserRepository stores account records for all roles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// GetByID returns apperror.KindNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail matches the email exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// Delete is idempotent; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// AppointmentRepository stores booking records. All listings are returned in
// reverse-creation order, most recent first.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, apt *models.Appointment) error
	ListAll(ctx context.Context) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
}
