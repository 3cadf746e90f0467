package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/apperr"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/domain/dto"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/logger"
)

// ErrorHandler is the centralized error-to-response mapper. Handlers
// attach a classified error with c.Error and abort; this middleware
// translates the last attached error into (status, {"error": message})
// in exactly one place, so every endpoint maps failures identically:
// validation errors to 400, not-found to 404, everything else to 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status := apperr.Status(err)

	if status >= 500 {
		rid, _ := c.Get(RequestIDKey)
		logger.L().Error().
			Err(err).
			Str("request_id", toString(rid)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, dto.NewErrorResponse(err.Error(), nil))
}
