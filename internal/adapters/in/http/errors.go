package http

import (
	"errors"
	"net/http"

	"orderlifecycle/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrRoleNotAllowed is returned when the caller's role may not use an endpoint at all.
var ErrRoleNotAllowed = errors.New("role is not allowed to use this endpoint")

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrRoleNotAllowed):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrActionIsForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrEventIsInvalid),
		errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStorageFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the failed envelope. Details of unclassified errors stay in the log.
func (s *Server) fail(c echo.Context, operation string, err error) error {
	code := statusFor(err)
	description := err.Error()
	if code == http.StatusInternalServerError {
		description = http.StatusText(code)
		s.logger.ErrorContext(c.Request().Context(), operation, "error", err)
	} else {
		s.logger.InfoContext(c.Request().Context(), operation, "status", code, "error", err)
	}

	return c.JSON(code, Envelope{
		Status: statusFailed,
		Error: &ErrorMessage{
			Error:       operation,
			Description: description,
		},
	})
}

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Status: statusSuccess, Data: data})
}
