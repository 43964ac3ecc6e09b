package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"resource-hub/internal/resources"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// writeStoreError maps service errors to HTTP statuses. Unexpected errors are
// logged and answered with fallback.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, resources.ErrValidation),
		errors.Is(err, resources.ErrTypeMismatch),
		errors.Is(err, resources.ErrCycle),
		errors.Is(err, resources.ErrInvalidType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, resources.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, resources.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.log.WithError(err).WithField("path", r.URL.Path).Error(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

// decodeRequest reads a JSON body into dst and runs its validation rules.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst validation.Validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	if err := dst.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
