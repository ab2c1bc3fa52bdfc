// Package policy holds every role and ownership rule that gates a mutation or
// a read of staff records. Usecases call Authorize right before persisting.
package policy

import (
	"captura-leads.backend/internal/domain/entities"
	domainerrors "captura-leads.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Operation names a gated action
type Operation string

const (
	// OpDelete soft deletes a lead, question, inquiry, answer or user
	OpDelete Operation = "delete"
	// OpSetActive is the explicit deactivate/activate lifecycle pair
	OpSetActive Operation = "set_active"
	// OpManageUsers creates staff accounts
	OpManageUsers Operation = "manage_users"
	// OpManageQuestions creates and edits qualification questions
	OpManageQuestions Operation = "manage_questions"
	// OpEditFollowUp updates or soft deletes a follow-up
	OpEditFollowUp Operation = "edit_follow_up"
	// OpReadUser reads a single user record
	OpReadUser Operation = "read_user"
	// OpUpdateUser edits a user record
	OpUpdateUser Operation = "update_user"
	// OpStaff is any authenticated staff action
	OpStaff Operation = "staff"
)

// Target describes the record an operation acts on. Only the fields relevant
// to the operation need to be set.
type Target struct {
	// OwnerRef is the createdBy stamp of the record
	OwnerRef null.String
	// UserID is the user record being read or updated
	UserID uuid.UUID
	// ChangesRole is set when an update carries a role different from the current one
	ChangesRole bool
}

// Authorize returns nil when actor may perform op on target, otherwise an
// AppError wrapping ErrForbidden (or ErrUnauthorized for anonymous callers).
func Authorize(actor *entities.Actor, op Operation, target Target) error {
	if actor == nil {
		return domainerrors.Unauthorized("authentication required")
	}
	if !actor.Role.Valid() {
		return domainerrors.Forbidden("unknown role")
	}

	switch op {
	case OpStaff:
		return nil

	case OpDelete, OpSetActive, OpManageUsers, OpManageQuestions:
		if actor.IsAdmin() {
			return nil
		}
		return domainerrors.Forbidden("only administrators may perform this action")

	case OpEditFollowUp:
		if actor.IsAdmin() {
			return nil
		}
		if target.OwnerRef.Valid && target.OwnerRef == actor.Ref() {
			return nil
		}
		return domainerrors.Forbidden("operators may only edit their own follow-ups")

	case OpReadUser:
		if actor.IsAdmin() || target.UserID == actor.ID {
			return nil
		}
		return domainerrors.Forbidden("operators may only read their own user record")

	case OpUpdateUser:
		self := target.UserID == actor.ID
		if self && target.ChangesRole {
			return domainerrors.Forbidden("users may not change their own role")
		}
		if actor.IsAdmin() || self {
			return nil
		}
		return domainerrors.Forbidden("operators may only update their own user record")
	}

	return domainerrors.Forbidden("operation not permitted")
}

// Scope is the visibility a list operation is allowed
type Scope int

const (
	// ScopeAll lists every record
	ScopeAll Scope = iota
	// ScopeSelf lists only the caller's own record
	ScopeSelf
)

// UserListScope returns the scope an actor may list users with. Operators get
// a singleton list holding only themselves instead of an error.
func UserListScope(actor *entities.Actor) Scope {
	if actor.IsAdmin() {
		return ScopeAll
	}
	return ScopeSelf
}
