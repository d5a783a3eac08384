// Package handler provides the HTTP handlers for the posts feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/posts/domain/entity"
	"blog_backend/internal/feature/posts/transport/http/dto"
	userentity "blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/httperr"
	jwtmw "blog_backend/internal/platform/jwt"
)

// PostUsecase defines the post workflows consumed by the handlers.
type PostUsecase interface {
	List(ctx context.Context, requester userentity.AuthUser) ([]entity.Post, error)
	Create(ctx context.Context, requester userentity.AuthUser, title, content string) error
	View(ctx context.Context, requester userentity.AuthUser, id uint) (*entity.Post, error)
	Edit(ctx context.Context, requester userentity.AuthUser, id uint, title, content string, isHidden *bool) (*entity.Post, error)
	Delete(ctx context.Context, requester userentity.AuthUser, id uint) error
}

// PostHandler handles HTTP requests for post operations. Every route is
// behind AuthRequired, so the requester identity is always present.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// requester reads the authenticated identity, aborting with 401 when the
// middleware did not attach one.
func requester(c *gin.Context) (userentity.AuthUser, bool) {
	auth, ok := jwtmw.AuthUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
	}
	return auth, ok
}

// postID parses the :id route parameter.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID of post required"})
		return 0, false
	}
	return uint(id), true
}

// List returns all public posts plus the requester's own hidden posts.
func (h *PostHandler) List(c *gin.Context) {
	auth, ok := requester(c)
	if !ok {
		return
	}

	posts, err := h.posts.List(c.Request.Context(), auth)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	views := make([]dto.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, dto.NewPostView(&posts[i]))
	}
	c.JSON(http.StatusOK, views)
}

// Create stores a new post authored by the requester.
// Responds 204 on success.
func (h *PostHandler) Create(c *gin.Context) {
	auth, ok := requester(c)
	if !ok {
		return
	}

	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content required"})
		return
	}

	if err := h.posts.Create(c.Request.Context(), auth, req.Title, req.Content); err != nil {
		slog.Warn("create post failed", "error", err, "author_id", auth.ID)
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// View returns a single post when the requester is allowed to see it.
func (h *PostHandler) View(c *gin.Context) {
	auth, ok := requester(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.posts.View(c.Request.Context(), auth, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPostView(post))
}

// Edit updates the requester's own post and returns the updated record.
func (h *PostHandler) Edit(c *gin.Context) {
	auth, ok := requester(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}

	var req dto.EditPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content required"})
		return
	}

	post, err := h.posts.Edit(c.Request.Context(), auth, id, req.Title, req.Content, req.IsHidden)
	if err != nil {
		slog.Warn("edit post failed", "error", err, "post_id", id, "author_id", auth.ID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EditPostResponse{PostToUpdate: dto.NewPostView(post)})
}

// Delete removes a post when the requester is allowed to.
// Responds 200 on success; deleting the same post twice reports 404.
func (h *PostHandler) Delete(c *gin.Context) {
	auth, ok := requester(c)
	if !ok {
		return
	}
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), auth, id); err != nil {
		slog.Warn("delete post failed", "error", err, "post_id", id, "requester_id", auth.ID)
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusOK)
}
