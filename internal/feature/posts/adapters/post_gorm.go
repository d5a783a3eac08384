// Package adapters provides the GORM-backed repository for the posts feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/usecase"
)

// postGorm is the GORM implementation of the PostRepository interface.
type postGorm struct {
	db *gorm.DB
}

// Compile-time check that postGorm implements usecase.PostRepository.
var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm creates a new postGorm instance over the given connection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create inserts the post. The per-author unique indexes are the authority on
// uniqueness; a duplicate-key rejection is translated to
// usecase.ErrDuplicatePost.
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicatePost
		}
		return err
	}
	return nil
}

// FindByID retrieves a post by ID.
// It returns usecase.ErrPostNotFound when no post matches.
func (r *postGorm) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDAndAuthor retrieves a post by ID restricted to the given author.
// It returns usecase.ErrPostNotFound when no such post belongs to the author.
func (r *postGorm) FindByIDAndAuthor(ctx context.Context, id, authorID uint) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindSimilar retrieves a post by the same author matching the title or the
// content, skipping the post with excludeID so edits do not collide with
// themselves. It returns usecase.ErrPostNotFound when nothing matches.
func (r *postGorm) FindSimilar(ctx context.Context, authorID uint, title, content string, excludeID uint) (*entity.Post, error) {
	var p entity.Post
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Where("title = ? OR content = ?", title, content)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListVisible retrieves every post that is not hidden, plus hidden posts
// authored by viewerID.
func (r *postGorm) ListVisible(ctx context.Context, viewerID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).
		Where("is_hidden = ? OR (is_hidden = ? AND author_id = ?)", false, true, viewerID).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update saves the full post record.
func (r *postGorm) Update(ctx context.Context, p *entity.Post) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicatePost
		}
		return err
	}
	return nil
}

// Delete removes the post with the given ID.
func (r *postGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Post{}, id).Error
}
