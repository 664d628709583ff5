package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"ddate_server/models"
)

// writeJSON encodes a success payload.
func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps the service error kinds onto HTTP statuses. Every error
// is recoverable from the caller's side, so the message passes through.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrPageOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrProfileExists):
		status = http.StatusConflict
	case errors.Is(err, models.ErrProfileInactive):
		status = http.StatusForbidden
	}
	http.Error(w, err.Error(), status)
}

// pageParams reads page and size query parameters with defaults of 1 and 10.
func pageParams(r *http.Request) (int, int, error) {
	page, size := 1, 10
	var err error
	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, &models.ValidationError{Field: "page", Message: "page must be a number"}
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		size, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, &models.ValidationError{Field: "size", Message: "size must be a number"}
		}
	}
	return page, size, nil
}

// callerIdentity returns the principal the gateway authenticated, or a
// placeholder when the service runs without one.
func callerIdentity(r *http.Request) string {
	if principal := r.Header.Get("X-User-Principal"); principal != "" {
		return principal
	}
	return "anonymous"
}
