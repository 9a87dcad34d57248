package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gowthamdvr/care-connect/authentication"
	"github.com/Gowthamdvr/care-connect/configuration"
	"github.com/Gowthamdvr/care-connect/controllers"
	"github.com/Gowthamdvr/care-connect/models"
	"github.com/Gowthamdvr/care-connect/repository"
	"github.com/Gowthamdvr/care-connect/routes"
)

// env runs the full router over the in-memory store, seeded with the admin
// account and the starter doctor roster (all passwords "password").
type env struct {
	router *gin.Engine
	store  *repository.MemoryStore
	tokens *authentication.TokenService
}

func newTestEnv(t *testing.T) *env {
	return newTestEnvWithCache(t, nil)
}

func newTestEnvWithCache(t *testing.T, cache *configuration.Cache) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	tokens := authentication.NewTokenService("test-signing-key")
	require.NoError(t, repository.Seed(context.Background(), store.Users()))

	router := routes.Setup(routes.Controllers{
		Auth:         &controllers.AuthController{Users: store.Users(), Tokens: tokens},
		Users:        &controllers.UserController{Users: store.Users(), Cache: cache},
		Doctors:      &controllers.DoctorController{Users: store.Users(), Cache: cache},
		Appointments: &controllers.AppointmentController{Appointments: store.Appointments(), Users: store.Users()},
		Reports:      &controllers.ReportController{AppointmentRepo: store.Appointments()},
	}, tokens, func() error { return nil })

	return &env{router: router, store: store, tokens: tokens}
}

// memoryCacheClient backs configuration.Cache in tests and counts traffic so
// tests can assert on hits, writes and invalidations.
type memoryCacheClient struct {
	mu            sync.Mutex
	data          map[string][]byte
	hits          int
	sets          int
	invalidations int
}

func newMemoryCacheClient() *memoryCacheClient {
	return &memoryCacheClient{data: make(map[string][]byte)}
}

func (m *memoryCacheClient) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	m.hits++
	return v, nil
}

func (m *memoryCacheClient) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *memoryCacheClient) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.invalidations++
	return nil
}

func (m *memoryCacheClient) Ping(context.Context) error { return nil }

func (m *memoryCacheClient) counts() (hits, sets, invalidations int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.sets, m.invalidations
}

// request performs one call against the router. An empty token leaves the
// Authorization header off.
func (e *env) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) tokenFor(t *testing.T, accountID string, role models.Role) string {
	t.Helper()
	token, err := e.tokens.Issue(accountID, role)
	require.NoError(t, err)
	return token
}

// registerPatient registers through the API and returns the created account
// id and its session token.
func (e *env) registerPatient(t *testing.T, name, email string) (string, string) {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret1", "phone": "555-1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
