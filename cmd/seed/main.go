// Seeds a demo user with a couple of posts for local development.
package main

import (
	"context"
	"fmt"
	"log"

	"inkwell/internal/adapters/postgres"
	"inkwell/internal/application/post"
	"inkwell/internal/config"
	"inkwell/internal/core/auth"
	"inkwell/internal/core/password"
	"inkwell/internal/core/token"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logg := logger.New(cfg)

	dbPool, err := postgres.InitDB(cfg.DatabaseURL, logg)
	if err != nil {
		log.Fatalf("failed to init DB: %v", err)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	authService := auth.NewService(userRepo, hasher, tokens)
	postService := post.NewService(postRepo)

	user, err := authService.Register(ctx, domain.RegisterRequest{
		Username: "demo",
		Email:    "demo@example.com",
		Password: "demopassword",
	})
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	fixtures := []domain.PostSaveRequest{
		{Title: "Hello, world", Text: "First seeded post."},
		{Title: "Second post", Text: "Another seeded post."},
	}

	for _, f := range fixtures {
		if _, err := postService.Create(ctx, f, user.ID); err != nil {
			log.Fatalf("failed to seed post: %v", err)
		}
	}

	fmt.Printf("Seeded user %q (id=%d) with %d posts\n", user.Username, user.ID, len(fixtures))
}
