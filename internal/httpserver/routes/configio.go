package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/httpserver/handlers"
	"github.com/linkdock/linkdock/internal/httpserver/mw"
)

func init() { Register(registerConfigIO) }

func registerConfigIO(r chi.Router, d deps.Deps) {
	r.Get("/api/config/export", handlers.ExportConfig(d))
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger)).
		Post("/api/config/import", handlers.ImportConfig(d))
}
