package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", handlers.ListCategories(d))
		r.Post("/", handlers.CreateCategory(d))
		r.Post("/reorder", handlers.ReorderCategories(d))
		r.Get("/{id}", handlers.GetCategory(d))
		r.Patch("/{id}", handlers.UpdateCategory(d))
		r.Delete("/{id}", handlers.DeleteCategory(d))
	})
}
