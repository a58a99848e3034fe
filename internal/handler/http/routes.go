package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.start)
		r.Post("/signup", h.signUp)
		r.Post("/signin", h.signIn)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/home", h.home)
		r.Get("/tasks/{userID}", h.listTasks)
	})

	return router
}
