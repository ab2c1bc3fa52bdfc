package entities

import (
	"time"

	domainerrors "captura-leads.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Actor is the authenticated identity attributed to a mutation.
// A nil *Actor means an anonymous public submission.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role UserRole  `json:"role"`
}

// IsAdmin reports whether the actor holds the ADMIN role
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == UserRoleAdmin
}

// Ref returns the lookup key stored in audit fields
func (a *Actor) Ref() null.String {
	if a == nil || a.ID == uuid.Nil {
		return null.String{}
	}
	return null.StringFrom(a.ID.String())
}

// Audit holds the who/when stamps shared by every record.
// DeactivatedAt being absent is the only signal that a record is live.
type Audit struct {
	CreatedBy     null.String `json:"createdBy"`
	CreatedAt     time.Time   `json:"createdAt"`
	ModifiedBy    null.String `json:"modifiedBy"`
	ModifiedAt    time.Time   `json:"modifiedAt"`
	DeactivatedBy null.String `json:"deactivatedBy,omitzero"`
	DeactivatedAt null.Time   `json:"deactivatedAt,omitzero"`
}

// StampCreated records creation. Modification stamps start equal to creation.
func (a *Audit) StampCreated(by null.String, at time.Time) {
	a.CreatedBy = by
	a.CreatedAt = at
	a.ModifiedBy = by
	a.ModifiedAt = at
}

// StampModified records an update
func (a *Audit) StampModified(by null.String, at time.Time) {
	a.ModifiedBy = by
	a.ModifiedAt = at
}

// StampDeactivated marks the record inactive. Fails if it already is.
func (a *Audit) StampDeactivated(by null.String, at time.Time) error {
	if a.DeactivatedAt.Valid {
		return domainerrors.ErrAlreadyInactive
	}
	a.DeactivatedBy = by
	a.DeactivatedAt = null.TimeFrom(at)
	a.StampModified(by, at)
	return nil
}

// ClearDeactivation reactivates the record, leaving both deactivation fields absent.
// Fails if the record is already live.
func (a *Audit) ClearDeactivation(by null.String, at time.Time) error {
	if !a.DeactivatedAt.Valid {
		return domainerrors.ErrAlreadyActive
	}
	a.DeactivatedBy = null.String{}
	a.DeactivatedAt = null.Time{}
	a.StampModified(by, at)
	return nil
}

// IsLive reports whether the record has not been deactivated
func (a Audit) IsLive() bool {
	return !a.DeactivatedAt.Valid
}
