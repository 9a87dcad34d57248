package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

// GormStore is the Postgres-backed production store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore runs migrations and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Users returns the store's UserRepository view.
func (s *GormStore) Users() UserRepository { return &gormUsers{db: s.db} }

// Appointments returns the store's AppointmentRepository view.
func (s *GormStore) Appointments() AppointmentRepository { return &gormAppointments{db: s.db} }

// storeErr classifies a gorm error into the service taxonomy.
func storeErr(err error, missing string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.KindNotFound, missing+" not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
		return apperror.New(apperror.KindDuplicateEmail, "email already registered")
	}
	return apperror.New(apperror.KindStoreUnavailable, "record store unavailable")
}

type gormUsers struct {
	db *gorm.DB
}

func (r *gormUsers) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return storeErr(err, "account")
	}
	return nil
}

func (r *gormUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, storeErr(err, "account")
	}
	return &user, nil
}

func (r *gormUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, storeErr(err, "account")
	}
	return &user, nil
}

func (r *gormUsers) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return storeErr(err, "account")
	}
	return nil
}

func (r *gormUsers) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
		return storeErr(err, "account")
	}
	return nil
}

func (r *gormUsers) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, storeErr(err, "account")
	}
	return users, nil
}

func (r *gormUsers) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&users).Error; err != nil {
		return nil, storeErr(err, "account")
	}
	return users, nil
}

type gormAppointments struct {
	db *gorm.DB
}

func (r *gormAppointments) Create(ctx context.Context, apt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(apt).Error; err != nil {
		return storeErr(err, "appointment")
	}
	return nil
}

func (r *gormAppointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var apt models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&apt).Error; err != nil {
		return nil, storeErr(err, "appointment")
	}
	return &apt, nil
}

func (r *gormAppointments) Update(ctx context.Context, apt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Save(apt).Error; err != nil {
		return storeErr(err, "appointment")
	}
	return nil
}

func (r *gormAppointments) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.list(ctx, r.db)
}

func (r *gormAppointments) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("patient_id = ?", patientID))
}

func (r *gormAppointments) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.list(ctx, r.db.Where("doctor_id = ?", doctorID))
}

func (r *gormAppointments) list(ctx context.Context, tx *gorm.DB) ([]models.Appointment, error) {
	var apts []models.Appointment
	if err := tx.WithContext(ctx).Order("created_at DESC").Find(&apts).Error; err != nil {
		return nil, storeErr(err, "appointment")
	}
	return apts, nil
}
