package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkdock/linkdock/internal/domain"
	"github.com/linkdock/linkdock/internal/httpserver/deps"
	"github.com/linkdock/linkdock/internal/logger"
)

func ListApiCalls(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
			writeJSON(w, http.StatusOK, d.Store.GetApiCallsByCategory(categoryID))
			return
		}
		writeJSON(w, http.StatusOK, d.Store.GetApiCalls())
	}
}

func GetApiCall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := d.Store.GetApiCallByID(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "API call not found")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func CreateApiCall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ApiCallInsert
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		in.Normalize()
		if err := in.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		a, err := d.Store.CreateApiCall(in)
		if err != nil {
			d.Logger.Error("failed to create api call", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to create API call")
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

func UpdateApiCall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.ApiCallPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := patch.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		a, err := d.Store.UpdateApiCall(chi.URLParam(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, "API call not found")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func DeleteApiCall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := d.Store.DeleteApiCall(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "API call not found")
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "API call not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderApiCalls(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := d.Store.ReorderApiCalls(req.IDs); err != nil {
			d.Logger.Error("failed to reorder api calls", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to reorder API calls")
			return
		}
		writeJSON(w, http.StatusOK, d.Store.GetApiCalls())
	}
}

func MoveApiCall(d deps.Deps) http.HandlerFunc {
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

		a, err := d.Store.UpdateApiCallGridPosition(chi.URLParam(r, "id"), pos.GridRow, pos.GridColumn)
		if err != nil {
			writeStoreError(w, err, "API call not found")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// ExecuteApiCall runs the saved request and returns the transient
// result. Transport failures come back as zero-status responses, so
// this endpoint only errors when the id is unknown.
func ExecuteApiCall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		call, err := d.Store.GetApiCallByID(chi.URLParam(r, "id"))
		if err != nil {
			writeStoreError(w, err, "API call not found")
			return
		}

		// Deliberately not the request context: the execution should
		// finish and be reported even if the client goes away.
		resp := d.Runner.Execute(context.Background(), call)

		d.Logger.Info("api call executed",
			logger.String("api_call_id", call.ID),
			logger.Int("status", resp.Status),
			logger.Int("duration_ms", int(resp.Duration)))
		writeJSON(w, http.StatusOK, resp)
	}
}
