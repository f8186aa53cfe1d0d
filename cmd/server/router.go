package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/tabletop-api/internal/api"
	apiMiddleware "github.com/phrazzld/tabletop-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.NewRateLimitMiddleware(app.rateLimiter))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.NotFound)

	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewStore, app.commentStore, app.checker, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.checker, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.checker, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.DescribeAPI)

		r.Get("/categories", categoryHandler.List)

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.List)
			r.Get("/{review_id}", reviewHandler.Get)
			r.Patch("/{review_id}", reviewHandler.PatchVotes)
			r.Patch("/{review_id}/body", reviewHandler.PatchBody)
			r.Get("/{review_id}/comments", reviewHandler.ListComments)
			r.Post("/{review_id}/comments", reviewHandler.PostComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", commentHandler.List)
			r.Get("/user/{username}", commentHandler.ListByUser)
			r.Get("/{comment_id}", commentHandler.Get)
			r.Patch("/{comment_id}", commentHandler.PatchVotes)
			r.Patch("/{comment_id}/body", commentHandler.PatchBody)
			r.Delete("/{comment_id}", commentHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{username}", userHandler.Get)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
