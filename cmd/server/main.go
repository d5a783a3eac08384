package main

import (
	"log"

	"blog_backend/internal/app/router"
	"blog_backend/internal/config"
	postadapters "blog_backend/internal/feature/posts/adapters"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	postusecase "blog_backend/internal/feature/posts/usecase"
	useradapters "blog_backend/internal/feature/users/adapters"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	userusecase "blog_backend/internal/feature/users/usecase"
	"blog_backend/internal/platform/db"
	jwtmw "blog_backend/internal/platform/jwt"
	"blog_backend/internal/platform/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT.Secret == "" {
		log.Println("[WARN] BLOG_JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	conn, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := useradapters.NewUserGorm(conn)
	postRepo := postadapters.NewPostGorm(conn)

	// Platform services
	hasher := password.NewBcryptHasher()
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, hasher, tokens, password.DummyHash)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	postH := posthandler.NewPostHandler(postUC)

	r := router.NewRouter(userH, postH, tokens, userRepo)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
