// Package entity defines the domain entities for the users feature.
package entity

import "time"

// UserType is the role assigned to a user account.
type UserType string

const (
	// UserTypeAdmin grants elevated listing and moderation rights.
	UserTypeAdmin UserType = "admin"

	// UserTypeBlogger is the default role for self-registered accounts.
	UserTypeBlogger UserType = "blogger"
)

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeBlogger
}

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user, assigned at creation.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name. It must be unique across all users.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// Type is the user's role.
	Type UserType `gorm:"size:16;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// AuthUser is the request-scoped identity attached to the request context by
// the authentication middleware. It is resolved fresh on every request and
// never persisted.
type AuthUser struct {
	ID   uint
	Type UserType
}

// IsAdmin reports whether the authenticated user holds the admin role.
func (a AuthUser) IsAdmin() bool { return a.Type == UserTypeAdmin }
