package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gowthamdvr/care-connect/models"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		actorID  string
		resource Resource
		ownerID  string
		op       Operation
		want     bool
	}{
		{"patient reads own account", models.RolePatient, "u1", ResourceAccount, "u1", OpRead, true},
		{"patient updates own account", models.RolePatient, "u1", ResourceAccount, "u1", OpUpdate, true},
		{"patient reads other account denied", models.RolePatient, "u1", ResourceAccount, "u2", OpRead, false},
		{"patient deletes own account denied", models.RolePatient, "u1", ResourceAccount, "u1", OpDelete, false},
		{"patient books for self", models.RolePatient, "u1", ResourceAppointment, "u1", OpCreate, true},
		{"patient books for other denied", models.RolePatient, "u1", ResourceAppointment, "u2", OpCreate, false},
		{"patient reads own appointments", models.RolePatient, "u1", ResourceAppointment, "u1", OpRead, true},
		{"patient transition denied", models.RolePatient, "u1", ResourceAppointment, "u1", OpTransition, false},
		{"patient browses doctors", models.RolePatient, "u1", ResourceDoctor, "doc-1", OpRead, true},
		{"patient edits doctor denied", models.RolePatient, "u1", ResourceDoctor, "doc-1", OpUpdate, false},

		{"doctor updates own profile", models.RoleDoctor, "doc-1", ResourceDoctor, "doc-1", OpUpdate, true},
		{"doctor updates other doctor denied", models.RoleDoctor, "doc-1", ResourceDoctor, "doc-2", OpUpdate, false},
		{"doctor deletes doctor denied", models.RoleDoctor, "doc-1", ResourceDoctor, "doc-2", OpDelete, false},
		{"doctor transitions own appointment", models.RoleDoctor, "doc-1", ResourceAppointment, "doc-1", OpTransition, true},
		{"doctor transitions other's appointment denied", models.RoleDoctor, "doc-1", ResourceAppointment, "doc-2", OpTransition, false},
		{"doctor reads own appointments", models.RoleDoctor, "doc-1", ResourceAppointment, "doc-1", OpRead, true},
		{"doctor updates own account", models.RoleDoctor, "doc-1", ResourceAccount, "doc-1", OpUpdate, true},
		{"doctor creates appointment denied", models.RoleDoctor, "doc-1", ResourceAppointment, "doc-1", OpCreate, false},

		{"admin reads any account", models.RoleAdmin, "admin-1", ResourceAccount, "u1", OpRead, true},
		{"admin creates doctor", models.RoleAdmin, "admin-1", ResourceDoctor, "", OpCreate, true},
		{"admin deletes account", models.RoleAdmin, "admin-1", ResourceAccount, "u1", OpDelete, true},
		{"admin transitions any appointment", models.RoleAdmin, "admin-1", ResourceAppointment, "doc-2", OpTransition, true},
		{"admin books appointment denied", models.RoleAdmin, "admin-1", ResourceAppointment, "admin-1", OpCreate, false},

		{"unknown role denied", models.Role("root"), "x", ResourceAccount, "x", OpRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccess(tt.role, tt.actorID, tt.resource, tt.ownerID, tt.op)
			assert.Equal(t, tt.want, got)
		})
	}
}
