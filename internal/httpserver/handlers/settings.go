package handlers

import (
	"net/http"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
)

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetSettings())
	}
}

func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.SettingsPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := patch.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		settings, err := d.Store.UpdateSettings(patch)
		if err != nil {
			d.Logger.Error("failed to update settings", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to update settings")
			return
		}
		writeJSON(w, http.StatusOK, settings)
	}
}
