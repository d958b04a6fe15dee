package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Get("/api/settings", handlers.GetSettings(d))
	r.Patch("/api/settings", handlers.UpdateSettings(d))
}
