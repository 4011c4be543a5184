package http

import (
	"errors"
	"net/http"

	"insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/domain/claim"
	"insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/domain/user"
	"insurance-backend/internal/domain/userpolicy"

	"github.com/labstack/echo/v4"
)

// errorStatus translates domain error kinds into HTTP status codes. Anything
// the domain layer didn't classify is a 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, userpolicy.ErrNotFound),
		errors.Is(err, claim.ErrNotFound),
		errors.Is(err, ticket.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, userpolicy.ErrAlreadyOwned),
		errors.Is(err, user.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ticket.ErrForbiddenLink):
		return http.StatusForbidden
	case errors.Is(err, userpolicy.ErrNotRenewable),
		errors.Is(err, claim.ErrPolicyNotActive),
		errors.Is(err, claim.ErrInvalidDecision),
		errors.Is(err, ticket.ErrAlreadyClosed),
		errors.Is(err, ticket.ErrInvalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func jsonError(c echo.Context, err error) error {
	code := errorStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "something went wrong"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
