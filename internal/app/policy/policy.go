// Package policy implements the role-based access decision table. It is a
// pure function over (actor, operation, resource): it never touches storage
// and never mutates state. Read scoping for the student role is expressed
// through Scope and applied by repositories before records reach callers.
package policy

import (
	"github.com/okan/hostelhub/internal/app/models"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
)

// Operation is a policy-checked action on a resource.
type Operation string

const (
	OpRead    Operation = "read"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpResolve Operation = "resolve" // complaint resolution
)

// Resource is a policy-governed entity type.
type Resource string

const (
	ResourceRoom           Resource = "room"
	ResourceStudent        Resource = "student"
	ResourceFee            Resource = "fee"
	ResourceAttendance     Resource = "attendance"
	ResourceVisitor        Resource = "visitor"
	ResourceComplaint      Resource = "complaint"
	ResourceMessMenu       Resource = "mess_menu"
	ResourceContactMessage Resource = "contact_message"
)

// Actor is the explicit request identity passed into every decision.
// StudentID is the linked student profile id, 0 when the actor has none.
type Actor struct {
	UserID    int64
	Role      models.Role
	StudentID int64
}

type opSet map[Operation]bool

func ops(list ...Operation) opSet {
	s := make(opSet, len(list))
	for _, op := range list {
		s[op] = true
	}
	return s
}

var crud = ops(OpRead, OpCreate, OpUpdate, OpDelete)

// matrix is the single source of truth for role permissions. Consulted once
// per request; roles or cells are never re-derived elsewhere.
var matrix = map[models.Role]map[Resource]opSet{
	models.RoleAdmin: {
		ResourceRoom:           crud,
		ResourceStudent:        crud,
		ResourceFee:            crud,
		ResourceAttendance:     ops(OpRead),
		ResourceVisitor:        ops(OpRead),
		ResourceComplaint:      ops(OpRead, OpResolve),
		ResourceMessMenu:       crud,
		ResourceContactMessage: ops(OpRead, OpUpdate),
	},
	models.RoleWarden: {
		ResourceRoom:           ops(OpRead),
		ResourceStudent:        ops(OpRead),
		ResourceFee:            ops(OpRead),
		ResourceAttendance:     ops(OpRead, OpCreate, OpUpdate),
		ResourceVisitor:        crud,
		ResourceComplaint:      ops(OpRead, OpResolve),
		ResourceMessMenu:       ops(OpRead),
		ResourceContactMessage: ops(),
	},
	models.RoleStudent: {
		ResourceRoom:           ops(OpRead),
		ResourceStudent:        ops(OpRead),
		ResourceFee:            ops(OpRead),
		ResourceAttendance:     ops(OpRead),
		ResourceVisitor:        ops(OpRead),
		ResourceComplaint:      ops(OpRead, OpCreate),
		ResourceMessMenu:       ops(OpRead),
		ResourceContactMessage: ops(OpCreate),
	},
}

// Authorize decides whether the actor may perform op on the resource type.
// Returns nil on ALLOW and apperrors.ErrPermissionDenied on DENY.
func Authorize(actor Actor, op Operation, resource Resource) error {
	perms, ok := matrix[actor.Role]
	if !ok {
		return apperrors.ErrPermissionDenied
	}
	if !perms[resource][op] {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// Allowed is the boolean form of Authorize.
func Allowed(actor Actor, op Operation, resource Resource) bool {
	return Authorize(actor, op, resource) == nil
}

// Scope returns the student id that reads of student-owned resources must
// be filtered to, and whether such filtering applies. Admins and wardens
// see everything; students only their own records.
func Scope(actor Actor) (studentID int64, restricted bool) {
	if actor.Role == models.RoleStudent {
		return actor.StudentID, true
	}
	return 0, false
}

// OwnsRecord reports whether a record owned by recordStudentID is visible
// to the actor under ownership filtering. Callers translate a false result
// on reads into not-found, never into permission-denied, so record
// existence is not leaked.
func OwnsRecord(actor Actor, recordStudentID int64) bool {
	scope, restricted := Scope(actor)
	if !restricted {
		return true
	}
	return scope != 0 && scope == recordStudentID
}
