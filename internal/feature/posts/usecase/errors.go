// Package usecase implements the business logic for the posts feature.
package usecase

import "blog_backend/internal/httperr"

var (
	// ErrPostNotFound is returned when a post does not exist, and also when
	// it exists but the requester may not see it. The two cases are made
	// indistinguishable on purpose.
	ErrPostNotFound = httperr.New(httperr.NotFound, "Post not found")

	// ErrTitleContentRequired is returned when title or content is missing.
	ErrTitleContentRequired = httperr.New(httperr.BadRequest, "Title and content required")

	// ErrDuplicateTitle is returned when the author already has a post with
	// the same title.
	ErrDuplicateTitle = httperr.New(httperr.BadRequest, "You have already one post with this title")

	// ErrDuplicateContent is returned when the author already has a post
	// with the same content.
	ErrDuplicateContent = httperr.New(httperr.BadRequest, "You have already one post with this content")

	// ErrDuplicatePost is returned when the storage layer rejects a write on
	// the per-author unique indexes after the pre-check passed.
	ErrDuplicatePost = httperr.New(httperr.BadRequest, "You have already one post with this title or content")

	// ErrDeleteNotAllowed is returned when the requester may not delete the
	// post.
	ErrDeleteNotAllowed = httperr.New(httperr.Unauthorized, "Unauthorized")
)
