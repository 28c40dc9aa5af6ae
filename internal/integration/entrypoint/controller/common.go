// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
	"github.com/moneybook/backend/internal/integration/entrypoint/middleware"
)

// handleDomainError writes the HTTP response for a use case error.
func handleDomainError(ctx *gin.Context, err error) {
	var de *domainerror.DomainError
	if errors.As(err, &de) {
		ctx.JSON(statusForKind(de.Kind), dto.ErrorResponse{
			Error: de.Message,
			Code:  de.Code,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForKind maps domain error kinds to HTTP status codes.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindForbidden:
		return http.StatusForbidden
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindIntegrity:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// bindError writes a 400 response for a malformed request body.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
}

// uuidParam parses a UUID path parameter. On failure it writes a 400
// response and reports false.
func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// requesterID extracts the authenticated user from the request context. On
// failure it writes a 401 response and reports false.
func requesterID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}
