package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/campushq/discipline/internal/app/models/dto"
	"github.com/campushq/discipline/internal/pkg/apperrors"
)

// HandleAPIError maps a service error to its HTTP status and writes the
// JSON error envelope. Every API controller funnels failures through here so
// the mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrDuplicateIdentifier),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrEmailMismatch),
		errors.Is(err, apperrors.ErrPasswordMismatch),
		errors.Is(err, apperrors.ErrPasswordTooWeak):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotAuthenticated),
		errors.Is(err, apperrors.ErrSessionExpired),
		errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound):
		status = http.StatusNotFound
	default:
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("unhandled error in API handler")
	}

	c.JSON(status, dto.NewErrorResponse(err))
}
