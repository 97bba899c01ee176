package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// Context keys populated by the authentication middleware.
const (
	ctxUserIDKey = "userID"
	ctxUserKey   = "user"
)

// getUserID reads the authenticated user's ID from the request context.
func getUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := v.(uint)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// getUser reads the full user record loaded by the authentication middleware.
func getUser(c *gin.Context) (*models.User, error) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// parsePathID parses a positive integer path parameter.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

func errorJSON(code, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// respondWithError maps err onto the response. AppErrors keep their status
// and code; anything else becomes a logged 500 with a generic message.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unhandled error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
		internal := apperrors.ErrInternalServer
		c.JSON(internal.StatusCode, errorJSON(internal.Code, internal.Message))
		return
	}

	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"cause", appErr.Internal.Error(),
		)
	}
	c.JSON(appErr.StatusCode, errorJSON(appErr.Code, appErr.Message))
}
