package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
)

func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
			writeJSON(w, http.StatusOK, d.Store.GetBookmarksByCategory(categoryID))
			return
		}
		writeJSON(w, http.StatusOK, d.Store.GetBookmarks())
	}
}

func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := d.Store.GetBookmarkByID(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.BookmarkInsert
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		b, err := d.Store.CreateBookmark(in)
		if err != nil {
			d.Logger.Error("failed to create bookmark", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create bookmark")
			return
		}
		writeJSON(w, http.StatusCreated, b)
	}
}

func UpdateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.BookmarkPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := patch.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		b, err := d.Store.UpdateBookmark(chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := d.Store.DeleteBookmark(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "Bookmark not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := d.Store.ReorderBookmarks(req.IDs); err != nil {
			d.Logger.Error("failed to reorder bookmarks", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to reorder bookmarks")
			return
		}
		writeJSON(w, http.StatusOK, d.Store.GetBookmarks())
	}
}

func MoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pos domain.GridPosition
		if err := decodeJSON(w, r, &pos); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := pos.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		b, err := d.Store.UpdateBookmarkGridPosition(chi.URLParam(r, "id"), pos.GridRow, pos.GridColumn)
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// CheckBookmarkHealth runs one health check and persists the outcome.
// Probe failures are data (offline), not errors: the endpoint answers
// 200 with the updated bookmark unless the id has vanished.
func CheckBookmarkHealth(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		bm, err := d.Store.GetBookmarkByID(id)
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}

		// Deliberately not the request context: closing the browser tab
		// must not abort an in-flight probe.
		res := d.Checker.Check(context.Background(), bm)

		updated, err := d.Store.UpdateBookmarkHealth(id, res)
		if err != nil {
			writeStoreError(w, err, "Bookmark not found")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}
