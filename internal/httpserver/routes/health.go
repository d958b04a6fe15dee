package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
	"github.com/linkdock/linkdock/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	r.Get("/api/health", handlers.Healthz(d))
	r.With(mw.ProbeLimit(mw.ProbeLimitConfig{
		Burst:        d.ProbeBurst,
		RefillPerMin: d.ProbeRefillPerMin,
		TrustProxy:   d.TrustProxy,
	})).Get("/api/health/ping", handlers.Ping(d))
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).
		Post("/api/health/sweep", handlers.TriggerSweep(d))
}
