package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "portfoliotracker/internal/errors"
	"portfoliotracker/internal/logger"
)

// ErrorHandler returns a Gin middleware that turns errors attached with
// c.Error into the {"error":{"code","message"}} envelope. Errors that are not
// AppErrors are logged and reported as a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// The last error is the most relevant one in a handler chain.
		err := c.Errors.Last().Err

		appErr := apperrors.ErrInternalServer
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"request_id", c.GetString(requestIDKey),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"request_id", c.GetString(requestIDKey),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
