package controller

import (
	"errors"

	"quiz_hub_backend/internal/util"
	"quiz_hub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError 把业务错误映射为状态码，未知错误记录后返回 500
func respondError(ctx *gin.Context, msg string, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		status, message = 404, "Quiz not found"
	case errors.Is(err, util.ErrAttemptNotFound):
		status, message = 404, "Attempt not found"
	case errors.Is(err, util.ErrUserNotFound):
		status, message = 400, "User not found"
	case errors.Is(err, util.ErrInvalidQuiz):
		status, message = 400, err.Error()
	case errors.Is(err, util.ErrAttemptNotAllowed):
		status, message = 409, "Quiz attempt not allowed"
	case errors.Is(err, util.ErrAttemptAlreadySubmitted):
		status, message = 409, "Attempt already submitted"
	default:
		util.LogInternalError(ctx, msg, err)
		return
	}

	logger.Log.Info(msg,
		zap.Int("status", status),
		zap.String("path", ctx.FullPath()),
		zap.Error(err),
	)
	util.Error(ctx, status, message)
}
