package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
	filestore "github.com/linkdock/linkdock/internal/store/file"
)

// ExportConfig streams the full document as a downloadable JSON file.
func ExportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Store.Export()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="linkdock-export.json"`)

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			d.Logger.Error("failed to write export", logger.Error(err))
		}
	}
}

// ImportConfig replaces categories, bookmarks and API calls with the
// uploaded document; settings are merged. A rejected document leaves
// the store untouched.
func ImportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc domain.Document
		if err := decodeJSON(w, r, &doc); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Store.Import(doc); err != nil {
			if errors.Is(err, filestore.ErrInvalidDocument) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to import configuration")
			return
		}

		d.Logger.Info("config imported",
			logger.Int("categories", len(doc.Categories)),
			logger.Int("bookmarks", len(doc.Bookmarks)),
			logger.Int("api_calls", len(doc.ApiCalls)))
		writeJSON(w, http.StatusOK, d.Store.Export())
	}
}
