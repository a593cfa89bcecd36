package handler

import (
	"errors"
	"net/http"

	"fueldepot/internal/service"
	"fueldepot/internal/sheets"
)

// statusForError maps the service error taxonomy to HTTP status codes.
// Unclassified errors are treated as bad requests; the process never surfaces
// them as faults.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, service.ErrStorageFailure):
		return http.StatusInternalServerError
	case errors.Is(err, sheets.ErrNotConfigured):
		return http.StatusPreconditionFailed
	default:
		return http.StatusBadRequest
	}
}
