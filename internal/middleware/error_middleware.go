package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
	"github.com/textex/textex/internal/pkg/auth"
	"github.com/textex/textex/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call
// this for every error path so the mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(ve))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// Deliberately generic: no hint whether the identifier or the
		// password was wrong.
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid identifier or password")))

	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrBookNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrOfferNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, auth.ErrExpiredToken), errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Session expired")))

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid session token")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")))
	}
}
