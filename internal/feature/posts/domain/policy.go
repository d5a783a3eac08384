// Package domain holds the pure authorization policy for posts. The functions
// here take the requester identity and the target post and decide whether an
// action is permitted; they perform no I/O.
package domain

import (
	"blog_backend/internal/feature/posts/domain/entity"
	userentity "blog_backend/internal/feature/users/domain/entity"
)

// CanViewPost reports whether the requester may view the post directly.
// The author always may, regardless of hidden state. An admin may view any
// post that is not hidden. Everyone else is denied; callers surface the
// denial as not-found so hidden posts do not leak their existence.
func CanViewPost(requester userentity.AuthUser, post *entity.Post) bool {
	if post.AuthorID == requester.ID {
		return true
	}
	return requester.IsAdmin() && !post.IsHidden
}

// CanEditPost reports whether the requester may edit the post. Editing is
// author-scoped only; admins have no edit override.
func CanEditPost(requester userentity.AuthUser, post *entity.Post) bool {
	return post.AuthorID == requester.ID
}

// CanDeletePost reports whether the requester may delete the post. The author
// always may. A non-author admin may delete only posts that are not hidden:
// hidden posts are untouchable by anyone but their author.
func CanDeletePost(requester userentity.AuthUser, post *entity.Post) bool {
	if post.AuthorID == requester.ID {
		return true
	}
	return requester.IsAdmin() && !post.IsHidden
}
