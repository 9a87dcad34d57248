package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

// MemoryStore keeps all records in process memory. It backs the test suite
// and local runs without Postgres.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]models.User
	appointments map[string]models.Appointment
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		appointments: make(map[string]models.Appointment),
	}
}

// Users returns the store's UserRepository view.
func (s *MemoryStore) Users() UserRepository { return (*memoryUsers)(s) }

// Appointments returns the store's AppointmentRepository view.
func (s *MemoryStore) Appointments() AppointmentRepository { return (*memoryAppointments)(s) }

type memoryUsers MemoryStore

func (s *memoryUsers) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperror.New(apperror.KindDuplicateEmail, "email already registered")
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memoryUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "account not found")
	}
	return &u, nil
}

func (s *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, apperror.New(apperror.KindNotFound, "account not found")
}

func (s *memoryUsers) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return apperror.New(apperror.KindNotFound, "account not found")
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memoryUsers) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *memoryUsers) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sortUsers(out)
	return out, nil
}

func (s *memoryUsers) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out, nil
}

func sortUsers(users []models.User) {
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
}

type memoryAppointments MemoryStore

func (s *memoryAppointments) Create(_ context.Context, apt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[apt.ID] = *apt
	return nil
}

func (s *memoryAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "appointment not found")
	}
	return &a, nil
}

func (s *memoryAppointments) Update(_ context.Context, apt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.appointments[apt.ID]; !ok {
		return apperror.New(apperror.KindNotFound, "appointment not found")
	}
	s.appointments[apt.ID] = *apt
	return nil
}

func (s *memoryAppointments) ListAll(_ context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sortAppointments(out)
	return out, nil
}

func (s *memoryAppointments) ListByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func (s *memoryAppointments) ListByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

// sortAppointments orders most recent first, matching what the UI shows.
func sortAppointments(apts []models.Appointment) {
	sort.Slice(apts, func(i, j int) bool {
		if apts[i].CreatedAt.Equal(apts[j].CreatedAt) {
			return apts[i].ID > apts[j].ID
		}
		return apts[i].CreatedAt.After(apts[j].CreatedAt)
	})
}
