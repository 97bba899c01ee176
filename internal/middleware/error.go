package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

func errorBody(code, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// ErrorHandler converts errors attached to the Gin context into JSON error
// responses. Known AppErrors map to their status and code; anything else is
// logged and surfaced as a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Only the last error is reported to the client.
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unhandled error",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
			)
			internal := apperrors.ErrInternalServer
			c.JSON(internal.StatusCode, errorBody(internal.Code, internal.Message))
			return
		}

		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"path", c.Request.URL.Path,
				"code", appErr.Code,
				"cause", appErr.Internal.Error(),
			)
		}
		c.JSON(appErr.StatusCode, errorBody(appErr.Code, appErr.Message))
	}
}
