// Package httperror contains the error body of the API and the mapping
// of errors to HTTP status codes.
package httperror

import (
	"errors"
	"net/http"

	"github.com/cediwise/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"the budget name must not be empty"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the appropriate status for an error.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
