package http

import (
	"net/http"

	"inkwell/internal/adapters/http/middleware"
	"inkwell/internal/config"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type RouterDeps struct {
	Auth *AuthHandler
	Post *PostHandler

	AuthService domain.AuthService
}

func NewRouter(cfg *config.Config, log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.RequestID())
	globalMw.Use(middleware.AccessLog(log))
	globalMw.Use(middleware.CORS(cfg))

	userStack := middleware.New()
	userStack.Use(middleware.Auth(deps.AuthService, log))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /registration", deps.Auth.Register)
	mux.HandleFunc("POST /login", deps.Auth.Login)

	mux.Handle("GET /token_relevance", userStack.Then(http.HandlerFunc(deps.Auth.TokenRelevance)))

	mux.Handle("GET /posts", userStack.Then(http.HandlerFunc(deps.Post.Index)))
	mux.Handle("POST /create_post", userStack.Then(http.HandlerFunc(deps.Post.Store)))
	mux.Handle("GET /post/{id}", userStack.Then(http.HandlerFunc(deps.Post.Show)))
	mux.Handle("GET /post/", userStack.Then(http.HandlerFunc(deps.Post.Show)))
	mux.Handle("POST /update_post/{id}", userStack.Then(http.HandlerFunc(deps.Post.Update)))
	mux.Handle("POST /delete_post/{id}", userStack.Then(http.HandlerFunc(deps.Post.Destroy)))

	return globalMw.Apply(mux)
}

func NewServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: handler,
	}
}
