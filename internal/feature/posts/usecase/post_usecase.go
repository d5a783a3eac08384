package usecase

import (
	"context"
	"errors"

	"blog_backend/internal/feature/posts/domain"
	"blog_backend/internal/feature/posts/domain/entity"
	userentity "blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/httperr"
)

// PostRepository abstracts the persistence layer for post entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type PostRepository interface {
	// Create persists a new post. It returns ErrDuplicatePost when the
	// storage layer rejects the insert on a per-author unique index.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post by ID, returning ErrPostNotFound if absent.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// FindByIDAndAuthor retrieves a post by ID scoped to the given author,
	// returning ErrPostNotFound if no such post belongs to that author.
	FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*entity.Post, error)

	// FindSimilar retrieves a post by the same author whose title or content
	// matches, excluding the post with excludeID (0 excludes nothing).
	// It returns ErrPostNotFound when nothing matches.
	FindSimilar(ctx context.Context, authorID uint, title, content string, excludeID uint) (*entity.Post, error)

	// ListVisible retrieves all posts that are not hidden, plus hidden posts
	// authored by viewerID.
	ListVisible(ctx context.Context, viewerID uint) ([]entity.Post, error)

	// Update persists changes to an existing post. It returns
	// ErrDuplicatePost on a per-author unique index rejection.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post with the given ID.
	Delete(ctx context.Context, id uint) error
}

// postUsecase implements the post workflows: create, list, view, edit, delete.
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase creates a new instance of postUsecase.
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// List returns the posts visible to the requester in a listing: everything
// public plus the requester's own hidden posts. Admins get no extra reach
// here; others' hidden posts never appear in a listing.
func (u *postUsecase) List(ctx context.Context, requester userentity.AuthUser) ([]entity.Post, error) {
	posts, err := u.posts.ListVisible(ctx, requester.ID)
	if err != nil {
		return nil, httperr.Wrap(httperr.Internal, "failed to list posts", err)
	}
	return posts, nil
}

// checkSimilar enforces the per-author uniqueness rule. When one existing
// post matches both fields, the title collision is reported.
func (u *postUsecase) checkSimilar(ctx context.Context, authorID uint, title, content string, excludeID uint) error {
	similar, err := u.posts.FindSimilar(ctx, authorID, title, content, excludeID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil
		}
		return httperr.Wrap(httperr.Internal, "failed to check for similar posts", err)
	}
	if similar.Title == title {
		return ErrDuplicateTitle
	}
	return ErrDuplicateContent
}

// Create stores a new post authored by the requester. New posts are always
// visible; hiding is an explicit edit.
func (u *postUsecase) Create(ctx context.Context, requester userentity.AuthUser, title, content string) error {
	if title == "" || content == "" {
		return ErrTitleContentRequired
	}
	if err := u.checkSimilar(ctx, requester.ID, title, content, 0); err != nil {
		return err
	}

	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: requester.ID,
		IsHidden: false,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		var httpErr *httperr.Error
		if errors.As(err, &httpErr) {
			return err
		}
		return httperr.Wrap(httperr.Internal, "failed to create post", err)
	}
	return nil
}

// View returns the post if the requester may see it, and reports not-found
// otherwise so that hidden posts do not leak their existence.
func (u *postUsecase) View(ctx context.Context, requester userentity.AuthUser, id uint) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, httperr.Wrap(httperr.Internal, "failed to find post", err)
	}
	if !domain.CanViewPost(requester, post) {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Edit updates a post's title and content, and its hidden flag when one is
// provided. Editing is author-scoped: the lookup itself is restricted to the
// requester's own posts, so editing someone else's post reports not-found
// even for admins.
func (u *postUsecase) Edit(ctx context.Context, requester userentity.AuthUser, id uint, title, content string, isHidden *bool) (*entity.Post, error) {
	if title == "" || content == "" {
		return nil, ErrTitleContentRequired
	}

	// Uniqueness is re-checked against the author's other posts; keeping
	// the post's own title or content is not a collision.
	if err := u.checkSimilar(ctx, requester.ID, title, content, id); err != nil {
		return nil, err
	}

	post, err := u.posts.FindByIDAndAuthor(ctx, id, requester.ID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, httperr.Wrap(httperr.Internal, "failed to find post", err)
	}

	post.Title = title
	post.Content = content
	if isHidden != nil && *isHidden != post.IsHidden {
		post.IsHidden = *isHidden
	}

	if err := u.posts.Update(ctx, post); err != nil {
		var httpErr *httperr.Error
		if errors.As(err, &httpErr) {
			return nil, err
		}
		return nil, httperr.Wrap(httperr.Internal, "failed to update post", err)
	}
	return post, nil
}

// Delete removes a post. The author may always delete their own post; a
// non-author admin may delete only posts that are not hidden. A repeated
// delete reports not-found since the row is gone.
func (u *postUsecase) Delete(ctx context.Context, requester userentity.AuthUser, id uint) error {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return ErrPostNotFound
		}
		return httperr.Wrap(httperr.Internal, "failed to find post", err)
	}
	if !domain.CanDeletePost(requester, post) {
		return ErrDeleteNotAllowed
	}
	if err := u.posts.Delete(ctx, post.ID); err != nil {
		return httperr.Wrap(httperr.Internal, "failed to delete post", err)
	}
	return nil
}
