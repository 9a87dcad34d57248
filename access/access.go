// Package access maps an authenticated identity and role to the records it
// may read or mutate. The check is a pure function applied by handlers
// before any store operation runs.
package access

import "github.com/Gowthamdvr/care-connect/models"

// Resource names a kind of guarded record.
type Resource string

const (
	ResourceAccount     Resource = "account"
	ResourceDoctor      Resource = "doctor"
	ResourceAppointment Resource = "appointment"
)

// Operation names what the caller wants to do with the resource.
type Operation string

const (
	OpRead       Operation = "read"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpTransition Operation = "transition"
)

// CanAccess decides whether the actor may perform op on a resource owned by
// ownerID. For appointments the owner is the patient on read/create and the
// doctor on status transitions. Unknown roles are denied.
func CanAccess(role models.Role, actorID string, resource Resource, ownerID string, op Operation) bool {
	switch role {
	case models.RolePatient:
		switch resource {
		case ResourceAccount:
			return (op == OpRead || op == OpUpdate) && actorID == ownerID
		case ResourceDoctor:
			return op == OpRead
		case ResourceAppointment:
			return (op == OpRead || op == OpCreate) && actorID == ownerID
		}
		return false

	case models.RoleDoctor:
		switch resource {
		case ResourceAccount:
			return (op == OpRead || op == OpUpdate) && actorID == ownerID
		case ResourceDoctor:
			return op == OpRead || (op == OpUpdate && actorID == ownerID)
		case ResourceAppointment:
			return (op == OpRead || op == OpTransition) && actorID == ownerID
		}
		return false

	case models.RoleAdmin:
		switch resource {
		case ResourceAccount, ResourceDoctor, ResourceAppointment:
			return op != OpCreate || resource != ResourceAppointment
		}
		return false
	}
	return false
}
