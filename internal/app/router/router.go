package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	posthandler "blog_backend/internal/feature/posts/transport/handler"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	platformhandler "blog_backend/internal/platform/http/handler"
	jwtmw "blog_backend/internal/platform/jwt"
)

// NewRouter assembles the gin engine: public routes, the auth-required
// /api/v1 group, and the fallback handlers for unmatched routes and panics.
func NewRouter(users *userhandler.UserHandler, posts *posthandler.PostHandler,
	tokens jwtmw.TokenParser, finder jwtmw.UserFinder) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	// Panics in handlers become plain 500s with no internals in the body.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api/v1")

	// Unauthenticated: registration, and login so a user without a token
	// can obtain one.
	api.POST("/users/register", users.Register)
	api.POST("/users/login", users.Login)

	// Every other route requires a bearer token resolved to a live user.
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(tokens, finder))
	{
		auth.GET("/users", users.List)
		auth.POST("/users", jwtmw.AdminRequired(), users.Create)

		auth.GET("/posts", posts.List)
		auth.POST("/posts", posts.Create)
		auth.GET("/posts/:id", posts.View)
		auth.PUT("/posts/:id", posts.Edit)
		auth.DELETE("/posts/:id", posts.Delete)
	}

	// Generic handler for unmatched routes.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
