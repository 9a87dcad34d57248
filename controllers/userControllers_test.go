package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowthamdvr/care-connect/models"
)

func TestUserListIsAdminOnly(t *testing.T) {
	e := newTestEnv(t)
	_, patient := e.registerPatient(t, "Asha", "asha@example.com")

	w := e.request(t, http.MethodGet, "/api/users", patient, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodGet, "/api/users", e.tokenFor(t, "doc-1", models.RoleDoctor), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodGet, "/api/users", e.tokenFor(t, "admin-1", models.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Seeded admin + three doctors + the registered patient.
	users := decode[[]models.User](t, w)
	assert.Len(t, users, 5)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestUserUpdate(t *testing.T) {
	e := newTestEnv(t)
	ashaID, asha := e.registerPatient(t, "Asha", "asha@example.com")
	raviID, _ := e.registerPatient(t, "Ravi", "ravi@example.com")

	t.Run("self update patches fields", func(t *testing.T) {
		w := e.request(t, http.MethodPut, "/api/users/"+ashaID, asha, gin.H{
			"name": "Asha R.", "phone": "555-0199",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		user := decode[models.User](t, w)
		assert.Equal(t, "Asha R.", user.Name)
		assert.Equal(t, "555-0199", user.Phone)
		assert.Equal(t, "asha@example.com", user.Email)
	})

	t.Run("password change takes effect on next login", func(t *testing.T) {
		w := e.request(t, http.MethodPut, "/api/users/"+ashaID, asha, gin.H{
			"password": "newsecret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = e.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "asha@example.com", "password": "secret1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = e.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "asha@example.com", "password": "newsecret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cannot update someone else", func(t *testing.T) {
		w := e.request(t, http.MethodPut, "/api/users/"+raviID, asha, gin.H{"name": "Hijack"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin updates anyone", func(t *testing.T) {
		admin := e.tokenFor(t, "admin-1", models.RoleAdmin)
		w := e.request(t, http.MethodPut, "/api/users/"+raviID, admin, gin.H{"name": "Ravi K."})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ravi K.", decode[models.User](t, w).Name)
	})
}

func TestUserDelete(t *testing.T) {
	e := newTestEnv(t)
	ashaID, asha := e.registerPatient(t, "Asha", "asha@example.com")
	admin := e.tokenFor(t, "admin-1", models.RoleAdmin)

	// Patients cannot delete accounts, not even their own.
	w := e.request(t, http.MethodDelete, "/api/users/"+ashaID, asha, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodDelete, "/api/users/"+ashaID, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Idempotent: a second delete still succeeds.
	w = e.request(t, http.MethodDelete, "/api/users/"+ashaID, admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "asha@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
