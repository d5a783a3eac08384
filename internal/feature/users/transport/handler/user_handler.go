// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/feature/users/transport/http/dto"
	"blog_backend/internal/httperr"
	jwtmw "blog_backend/internal/platform/jwt"
)

// UserUsecase defines the user workflows consumed by the handlers.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type UserUsecase interface {
	// Register creates a self-service account with the default role.
	Register(ctx context.Context, name, email, password string) error
	// Create creates an account with an explicit role on behalf of an admin.
	Create(ctx context.Context, userType entity.UserType, name, email, password string) error
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, error)
	// List returns the users visible to the requester.
	List(ctx context.Context, requester entity.AuthUser) ([]entity.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles the public registration endpoint.
// Responds 204 on success, 400 on validation or uniqueness failure.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Respond(c, err)
		return
	}
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// Create handles the admin-only user creation endpoint. AdminRequired has
// already gated the route; the handler only validates and delegates.
// Responds 204 on success.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.Create(c.Request.Context(), entity.UserType(req.Type), req.Name, req.Email, req.Password); err != nil {
		slog.Warn("create user failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Respond(c, err)
		return
	}
	slog.Info("user created by admin", "email", req.Email, "type", req.Type)
	c.Status(http.StatusNoContent)
}

// Login handles the login endpoint. The route is public: a user without a
// token must still be able to obtain one.
// Responds 200 with a token on success, 401 on bad credentials.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same response for unknown email and wrong password.
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Respond(c, err)
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// List handles the user listing endpoint. Admins receive id/name/email for
// every user; everyone else receives name/email for non-admin users only.
func (h *UserHandler) List(c *gin.Context) {
	requester, ok := jwtmw.AuthUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	users, err := h.users.List(c.Request.Context(), requester)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if requester.IsAdmin() {
		views := make([]dto.AdminUserView, 0, len(users))
		for _, u := range users {
			views = append(views, dto.AdminUserView{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.UserView{Name: u.Name, Email: u.Email})
	}
	c.JSON(http.StatusOK, views)
}
