package dto

import "blog_backend/internal/feature/posts/domain/entity"

// PostView is the post projection returned by the list, view, and edit
// endpoints.
type PostView struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID uint   `json:"authorId"`
	IsHidden bool   `json:"isHidden"`
}

// NewPostView maps a post entity to its response projection.
func NewPostView(p *entity.Post) PostView {
	return PostView{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		AuthorID: p.AuthorID,
		IsHidden: p.IsHidden,
	}
}

// EditPostResponse wraps the updated post under the key the edit endpoint has
// always used.
type EditPostResponse struct {
	PostToUpdate PostView `json:"postToUpdate"`
}
