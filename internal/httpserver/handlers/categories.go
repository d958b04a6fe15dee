package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
)

func ListCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Store.GetCategories())
	}
}

func GetCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := d.Store.GetCategoryByID(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Category not found")
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func CreateCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.CategoryInsert
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		c, err := d.Store.CreateCategory(in)
		if err != nil {
			d.Logger.Error("failed to create category", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create category")
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

func UpdateCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.CategoryPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := patch.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		c, err := d.Store.UpdateCategory(chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "Category not found")
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := d.Store.DeleteCategory(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "Category not found")
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// reorderRequest is shared by all three reorder endpoints.
type reorderRequest struct {
	IDs []string `json:"ids"`
}

func ReorderCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := d.Store.ReorderCategories(req.IDs); err != nil {
			d.Logger.Error("failed to reorder categories", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to reorder categories")
			return
		}
		writeJSON(w, http.StatusOK, d.Store.GetCategories())
	}
}
