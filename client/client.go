// Package client is a typed HTTP client for the care-connect API. It holds
// immutable fetched snapshots of users, doctors and appointments and drops
// them through an explicit Invalidate call after every mutation. There is
// no ambient shared cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

// Client talks to a care-connect server. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	token        string
	users        []models.User
	doctors      []models.User
	appointments []models.Appointment
}

// New builds a client against the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return &resp.User, nil
}

// Register creates a patient account and stores the session token.
func (c *Client) Register(ctx context.Context, name, email, password, phone string) (*models.User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password, "phone": phone}, &resp)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return &resp.User, nil
}

// Doctors returns the doctor directory, serving the cached snapshot when one
// is held.
func (c *Client) Doctors(ctx context.Context) ([]models.User, error) {
	c.mu.Lock()
	cached := c.doctors
	c.mu.Unlock()
	if cached != nil {
		return copyUsers(cached), nil
	}

	var doctors []models.User
	if err := c.do(ctx, http.MethodGet, "/api/doctors", nil, &doctors); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.doctors = doctors
	c.mu.Unlock()
	return copyUsers(doctors), nil
}

// Users returns all accounts; admin token required.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	c.mu.Lock()
	cached := c.users
	c.mu.Unlock()
	if cached != nil {
		return copyUsers(cached), nil
	}

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()
	return copyUsers(users), nil
}

// Appointments returns the role-filtered appointment listing.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	c.mu.Lock()
	cached := c.appointments
	c.mu.Unlock()
	if cached != nil {
		return append([]models.Appointment(nil), cached...), nil
	}

	var apts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &apts); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.appointments = apts
	c.mu.Unlock()
	return append([]models.Appointment(nil), apts...), nil
}

// BookAppointment books for the logged-in patient and invalidates snapshots.
func (c *Client) BookAppointment(ctx context.Context, doctorID, date, timeOfDay, reason string) (*models.Appointment, error) {
	var apt models.Appointment
	err := c.do(ctx, http.MethodPost, "/api/appointments",
		map[string]string{"doctorId": doctorID, "date": date, "time": timeOfDay, "reason": reason}, &apt)
	if err != nil {
		return nil, err
	}
	c.Invalidate()
	return &apt, nil
}

// SetAppointmentStatus transitions an appointment and invalidates snapshots.
func (c *Client) SetAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	var apt models.Appointment
	err := c.do(ctx, http.MethodPatch, "/api/appointments/"+id+"/status",
		map[string]string{"status": string(status)}, &apt)
	if err != nil {
		return nil, err
	}
	c.Invalidate()
	return &apt, nil
}

// CreateDoctor adds a doctor record; admin token required.
func (c *Client) CreateDoctor(ctx context.Context, doctor map[string]any) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/api/doctors", doctor, &created); err != nil {
		return nil, err
	}
	c.Invalidate()
	return &created, nil
}

// UpdateDoctor patches a doctor record.
func (c *Client) UpdateDoctor(ctx context.Context, id string, fields map[string]any) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/api/doctors/"+id, fields, &updated); err != nil {
		return nil, err
	}
	c.Invalidate()
	return &updated, nil
}

// DeleteDoctor removes a doctor record; admin token required.
func (c *Client) DeleteDoctor(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/doctors/"+id, nil, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// UpdateUser patches an account record.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, fields, &updated); err != nil {
		return nil, err
	}
	c.Invalidate()
	return &updated, nil
}

// DeleteUser removes an account record; admin token required.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Invalidate drops every cached snapshot. Called automatically after each
// mutation; callers may also call it to force a refetch.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.users = nil
	c.doctors = nil
	c.appointments = nil
	c.mu.Unlock()
}

// do runs one request/response cycle and maps error statuses onto the
// service taxonomy so callers can treat 401s as redirect-to-login signals.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.Unlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.New(apperror.KindStoreUnavailable, "could not reach server: "+err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string        `json:"error"`
		Kind  apperror.Kind `json:"kind"`
	}
	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		message = payload.Error
	}
	if payload.Kind != "" {
		return apperror.New(payload.Kind, message)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperror.New(apperror.KindUnauthenticated, message)
	case http.StatusForbidden:
		return apperror.New(apperror.KindForbidden, message)
	case http.StatusNotFound:
		return apperror.New(apperror.KindNotFound, message)
	case http.StatusConflict:
		return apperror.New(apperror.KindDuplicateEmail, message)
	case http.StatusBadRequest:
		return apperror.New(apperror.KindValidation, message)
	case http.StatusServiceUnavailable:
		return apperror.New(apperror.KindStoreUnavailable, message)
	}
	return apperror.New(apperror.KindStoreUnavailable, message)
}

func copyUsers(users []models.User) []models.User {
	return append([]models.User(nil), users...)
}
