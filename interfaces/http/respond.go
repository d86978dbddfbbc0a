package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clipstream/domain/apperrors"
	"clipstream/infrastructure/logger"
)

// respondError maps an application error to its HTTP status and message.
// Anything unclassified is logged and reported generically so internal
// detail never reaches the client.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.ErrCodeTransientProvider || appErr.Code == apperrors.ErrCodeInternal {
			logger.GetLogger().WithField("error", err).Warn("Request failed")
		}
		ctx.JSON(appErr.HTTPStatus, gin.H{"message": appErr.Message})
		return
	}
	logger.GetLogger().WithField("error", err).Error("Unexpected error")
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}

// callerID returns the authenticated identity set by the auth middleware.
func callerID(ctx *gin.Context) string {
	return ctx.GetString("user_id")
}
