package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowthamdvr/care-connect/models"
)

func TestAppointmentReport(t *testing.T) {
	e := newTestEnv(t)
	_, patient := e.registerPatient(t, "Asha", "asha@example.com")
	e.book(t, patient, "doc-1")

	w := e.request(t, http.MethodGet, "/api/reports/appointments", e.tokenFor(t, "admin-1", models.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "appointments.pdf")
	assert.True(t, len(w.Body.Bytes()) > 0)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestAppointmentReportIsAdminOnly(t *testing.T) {
	e := newTestEnv(t)
	_, patient := e.registerPatient(t, "Asha", "asha@example.com")

	w := e.request(t, http.MethodGet, "/api/reports/appointments", patient, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodGet, "/api/reports/appointments", e.tokenFor(t, "doc-1", models.RoleDoctor), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
