package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
	"github.com/linkdock/linkdock/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.CreateBookmark(d))
		r.Post("/reorder", handlers.ReorderBookmarks(d))
		r.Get("/{id}", handlers.GetBookmark(d))
		r.Patch("/{id}", handlers.UpdateBookmark(d))
		r.Delete("/{id}", handlers.DeleteBookmark(d))
		r.Patch("/{id}/grid-position", handlers.MoveBookmark(d))
		r.With(mw.ProbeLimit(mw.ProbeLimitConfig{
			Burst:        d.ProbeBurst,
			RefillPerMin: d.ProbeRefillPerMin,
			TrustProxy:   d.TrustProxy,
		})).Post("/{id}/health", handlers.CheckBookmarkHealth(d))
	})
}
