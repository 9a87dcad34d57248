package repository

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

// Seed creates the admin account and a starter doctor roster when the store
// holds none of either. Safe to call on every startup.
func Seed(ctx context.Context, users UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admins, err := users.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		log.Println("seeding admin account")
		admin := models.User{
			ID:           "admin-1",
			Name:         "System Admin",
			Email:        "admin@gowthamhospital.com",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Phone:        "000-000-0000",
			CreatedAt:    time.Now(),
		}
		if err := users.Create(ctx, &admin); err != nil && !apperror.Is(err, apperror.KindDuplicateEmail) {
			return err
		}
	}

	doctors, err := users.ListByRole(ctx, models.RoleDoctor)
	if err != nil {
		return err
	}
	if len(doctors) > 0 {
		return nil
	}

	log.Println("seeding doctor roster")
	roster := []models.User{
		{
			ID: "doc-1", Name: "Dr. Sarah Smith", Email: "sarah@gowthamhospital.com",
			Specialization: "Cardiologist", Experience: 12, Phone: "555-0101",
			AvailableDays:      models.Weekdays{"Mon", "Wed", "Fri"},
			AvailableTimeStart: "09:00", AvailableTimeEnd: "14:00",
		},
		{
			ID: "doc-2", Name: "Dr. James Wilson", Email: "james@gowthamhospital.com",
			Specialization: "Dermatologist", Experience: 8, Phone: "555-0102",
			AvailableDays:      models.Weekdays{"Tue", "Thu"},
			AvailableTimeStart: "10:00", AvailableTimeEnd: "16:00",
		},
		{
			ID: "doc-3", Name: "Dr. Emily Chen", Email: "emily@gowthamhospital.com",
			Specialization: "Pediatrician", Experience: 10, Phone: "555-0103",
			AvailableDays:      models.Weekdays{"Mon", "Tue", "Thu", "Fri"},
			AvailableTimeStart: "08:00", AvailableTimeEnd: "15:00",
		},
	}
	for i := range roster {
		roster[i].Role = models.RoleDoctor
		roster[i].PasswordHash = string(hash)
		roster[i].CreatedAt = time.Now()
		if err := users.Create(ctx, &roster[i]); err != nil && !apperror.Is(err, apperror.KindDuplicateEmail) {
			return err
		}
	}
	return nil
}
