package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	filestore "github.com/linkdock/linkdock/internal/store/file"
)

// writeJSON marshals first so an encoding failure never produces a
// half-written body after headers are sent.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

type errorBody struct {
	Error interface{} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

// writeValidationError renders ozzo field errors as a 400 with
// per-field detail; anything else falls back to a plain 400 message.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verrs})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// writeStoreError maps store sentinel errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, filestore.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, filestore.ErrGridOccupied):
		writeError(w, http.StatusConflict, "Grid position is already occupied")
	case errors.Is(err, filestore.ErrCategoryInUse):
		writeError(w, http.StatusConflict, "Category still has bookmarks or API calls")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

// decodeJSON decodes a request body with a sane size cap.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
