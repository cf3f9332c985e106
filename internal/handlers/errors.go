package handlers

import (
	"errors"
	"net/http"

	"trainer-service/internal/engine"
)

// errStatus maps engine sentinels to HTTP codes. Anything unrecognized
// (including storage errors) is a 500.
func errStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNoCandidates):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
