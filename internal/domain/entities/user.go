package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole is the closed set of staff roles
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleOperator UserRole = "OPERATOR"
)

// Valid reports whether r is a known role
func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleOperator
}

// User represents a staff account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"isActive"`
	Audit
}

// Actor returns the user as an acting identity
func (u *User) Actor() *Actor {
	return &Actor{ID: u.ID, Role: u.Role}
}

// Deactivate soft deletes the account and clears IsActive
func (u *User) Deactivate(by null.String, at time.Time) error {
	if err := u.StampDeactivated(by, at); err != nil {
		return err
	}
	u.IsActive = false
	return nil
}

// Activate restores the account
func (u *User) Activate(by null.String, at time.Time) error {
	if err := u.ClearDeactivation(by, at); err != nil {
		return err
	}
	u.IsActive = true
	return nil
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=ADMIN OPERATOR"`
}

// UpdateUserInput is a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string   `json:"email" binding:"omitempty,email"`
	Password *string   `json:"password" binding:"omitempty,min=6"`
	Role     *UserRole `json:"role" binding:"omitempty,oneof=ADMIN OPERATOR"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
