package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	httpadapter "inkwell/internal/adapters/http"
	"inkwell/internal/adapters/postgres"
	"inkwell/internal/adapters/redis"
	"inkwell/internal/application/post"
	"inkwell/internal/config"
	"inkwell/internal/core/auth"
	"inkwell/internal/core/password"
	"inkwell/internal/core/token"
	"inkwell/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		panic("FATAL: JWT_SECRET is mandatory for Server!")
	}

	dbPool, err := postgres.InitDB(cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to init DB", "error", err)
		return
	}
	defer dbPool.Close()

	var limiter *redis.LoginLimiter
	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("failed to parse REDIS_URL", "error", err)
			return
		}
		limiter = redis.NewLoginLimiter(goredis.NewClient(opts), cfg.LoginMaxAttempts, cfg.LoginWindow)
		log.Info("redis: login throttling enabled")
	}

	userRepo := postgres.NewUserRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)

	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	authService := auth.NewService(userRepo, hasher, tokens)
	postService := post.NewService(postRepo)

	authHandler := httpadapter.NewAuthHandler(authService, limiter, log)
	postHandler := httpadapter.NewPostHandler(postService, log)

	router := httpadapter.NewRouter(cfg, log, &httpadapter.RouterDeps{
		Auth: authHandler,
		Post: postHandler,

		AuthService: authService,
	})

	srv := httpadapter.NewServer(router, cfg.Address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
