// Package usecase implements the business logic for the users feature.
package usecase

import "blog_backend/internal/httperr"

var (
	// ErrNameAlreadyUsed is returned when the requested display name is taken.
	ErrNameAlreadyUsed = httperr.New(httperr.BadRequest, "NAME_ALREADY_USED")

	// ErrEmailAlreadyUsed is returned when the requested email is taken.
	ErrEmailAlreadyUsed = httperr.New(httperr.BadRequest, "EMAIL_ALREADY_USED")

	// ErrUserAlreadyExists is returned when the storage layer rejects a
	// create on its unique indexes. It covers the window where a concurrent
	// registration slipped in between the pre-check and the insert.
	ErrUserAlreadyExists = httperr.New(httperr.BadRequest, "USER_ALREADY_EXISTS")

	// ErrInvalidUserType is returned when an admin-created account requests
	// a role outside the closed enumeration.
	ErrInvalidUserType = httperr.New(httperr.BadRequest, "INVALID_USER_TYPE")

	// ErrInvalidCredentials is returned on login for a wrong password and
	// for an unknown email alike, so responses never reveal which accounts
	// exist.
	ErrInvalidCredentials = httperr.New(httperr.Unauthorized, "EMAIL_OR_PASSWORD_INCORRECT")

	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = httperr.New(httperr.NotFound, "User not found")
)
