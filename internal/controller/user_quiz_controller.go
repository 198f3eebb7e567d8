package controller

import (
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserQuizController struct {
	QuizService    *service.QuizService
	AttemptService *service.AttemptService
}

func NewUserQuizController(quizService *service.QuizService, attemptService *service.AttemptService) *UserQuizController {
	return &UserQuizController{
		QuizService:    quizService,
		AttemptService: attemptService,
	}
}

// ListQuizzes godoc
// @Summary 获取当前用户可见的测验
// @Description 返回进行中且对当前用户开放的测验，附带作答次数、是否有进行中作答以及能否再次作答
// @Tags 用户测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.QuizView
// @Failure 401 {object} util.ErrorResponse "未登录或角色不符"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /user/quiz [get]
func (c *UserQuizController) ListQuizzes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.QuizService.ListForUser(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, "Error fetching user quizzes", err)
		return
	}

	util.Success(ctx, views)
}

// StartAttempt godoc
// @Summary 开始作答
// @Tags 用户测验
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Success 201 {object} model.QuizAttempt
// @Failure 401 {object} util.ErrorResponse "未登录或角色不符"
// @Failure 404 {object} util.ErrorResponse "测验不存在或不可见"
// @Failure 409 {object} util.ErrorResponse "已达次数上限或有进行中的作答"
// @Router /user/quiz/{id}/attempts [post]
func (c *UserQuizController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.AttemptService.Start(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Error starting quiz attempt", err)
		return
	}

	util.Created(ctx, attempt)
}

// SubmitAttempt godoc
// @Summary 提交作答
// @Tags 用户测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param attemptId path string true "作答ID"
// @Param body body service.SubmitInput false "答案与得分"
// @Success 200 {object} model.QuizAttempt
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未登录或角色不符"
// @Failure 404 {object} util.ErrorResponse "作答不存在"
// @Failure 409 {object} util.ErrorResponse "已提交"
// @Router /user/attempts/{attemptId}/submit [post]
func (c *UserQuizController) SubmitAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitInput
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	attempt, err := c.AttemptService.Submit(ctx.Request.Context(), user.UserID, ctx.Param("attemptId"), &req)
	if err != nil {
		respondError(ctx, "Error submitting quiz attempt", err)
		return
	}

	util.Success(ctx, attempt)
}
