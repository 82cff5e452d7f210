package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/sphera-world/market-engine/internal/api/shared/errors"
	"github.com/sphera-world/market-engine/internal/logger"
)

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondUnauthorized sends a 401 when a route needing a caller has none
func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication required"))
}

// respondError maps an engine error to its status; server errors are logged
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	status, apiErr := apierrors.FromDomain(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("message", message))...)
		apiErr.Message = message
	}
	c.JSON(status, apiErr)
}
