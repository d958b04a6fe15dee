package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
	"github.com/linkdock/linkdock/internal/httpserver/mw"
)

func init() { Register(registerApiCalls) }

func registerApiCalls(r chi.Router, d deps.Deps) {
	r.Route("/api/api-calls", func(r chi.Router) {
		r.Get("/", handlers.ListApiCalls(d))
		r.Post("/", handlers.CreateApiCall(d))
		r.Post("/reorder", handlers.ReorderApiCalls(d))
		r.Get("/{id}", handlers.GetApiCall(d))
		r.Patch("/{id}", handlers.UpdateApiCall(d))
		r.Delete("/{id}", handlers.DeleteApiCall(d))
		r.Patch("/{id}/grid-position", handlers.MoveApiCall(d))
		r.With(mw.ProbeLimit(mw.ProbeLimitConfig{
			Burst:        d.ProbeBurst,
			RefillPerMin: d.ProbeRefillPerMin,
			TrustProxy:   d.TrustProxy,
		})).Post("/{id}/execute", handlers.ExecuteApiCall(d))
	})
}
