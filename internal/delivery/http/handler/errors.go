package handler

import (
	"errors"
	"net/http"

	"github.com/josephprado/schedjoeler-api/internal/usecase"
	"github.com/josephprado/schedjoeler-api/pkg/response"
)

// respondError maps usecase errors to HTTP responses. Anything unrecognized
// is reported as a 500 with the handler's fallback message.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var notFound *usecase.NotFoundError
	switch {
	case errors.As(err, &notFound):
		response.NotFound(w, notFound.Error())
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.BadRequest(w, "Invalid appointment status")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid username or password")
	case errors.Is(err, usecase.ErrDeleteFailed):
		response.InternalServerError(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
