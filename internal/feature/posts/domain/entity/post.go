// Package entity defines the domain entities for the posts feature.
package entity

import "time"

// Post represents a blog post.
//
// The composite unique indexes on (author_id, title) and (author_id, content)
// back the per-author uniqueness rule at the storage layer, so two concurrent
// creates that both pass the workflow pre-check cannot both land.
type Post struct {
	// ID is the unique identifier for the post, assigned at creation.
	ID uint `gorm:"primaryKey"`

	// Title must be unique among posts by the same author.
	Title string `gorm:"size:255;not null;uniqueIndex:idx_posts_author_title"`

	// Content must be unique among posts by the same author.
	Content string `gorm:"size:2048;not null;uniqueIndex:idx_posts_author_content"`

	// AuthorID references the user who created the post. Set once, never
	// reassigned.
	AuthorID uint `gorm:"not null;uniqueIndex:idx_posts_author_title;uniqueIndex:idx_posts_author_content"`

	// IsHidden marks the post as visible only to its author.
	IsHidden bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the post was last updated.
	UpdatedAt time.Time
}
