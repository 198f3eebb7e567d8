package controller

import (
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminQuizController struct {
	QuizService *service.AdminQuizService
}

func NewAdminQuizController(quizService *service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{QuizService: quizService}
}

// AssignUsersRequest 指定可见用户，空列表表示对所有用户开放
// swagger:model AssignUsersRequest
type AssignUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

// @Summary 测验列表
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.PageResponse{list=[]model.Quiz}
// @Failure 401 {object} util.ErrorResponse
// @Router /admin/quiz [get]
func (c *AdminQuizController) ListQuizzes(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))

	quizzes, total, err := c.QuizService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		util.LogInternalError(ctx, "Error listing quizzes", err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  quizzes,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 创建测验
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quiz body service.CreateQuizInput true "测验信息"
// @Success 201 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /admin/quiz [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req service.CreateQuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, "Error creating quiz", err)
		return
	}

	util.Created(ctx, quiz)
}

// @Summary 获取测验详情
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Success 200 {object} model.Quiz
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/quiz/{id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.QuizService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Error fetching quiz", err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 更新测验
// @Description title、description、timeLimit 未传时保持原值；difficulty 默认 MEDIUM，status 默认 ACTIVE，maxAttempts 为空表示不限次数
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param quiz body service.QuizInput true "测验信息"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/quiz/{id} [put]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	var req service.QuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, "Error updating quiz", err)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 删除测验
// @Description 同时删除题目、指定用户和作答记录
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Success 200 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/quiz/{id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.QuizService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "Error deleting quiz", err)
		return
	}

	util.Message(ctx, "Quiz deleted successfully")
}

// @Summary 获取测验指定用户
// @Tags 测验管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Success 200 {object} AssignUsersRequest
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/quiz/{id}/users [get]
func (c *AdminQuizController) GetQuizUsers(ctx *gin.Context) {
	ids, err := c.QuizService.Users(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "Error fetching quiz users", err)
		return
	}

	util.Success(ctx, AssignUsersRequest{UserIDs: ids})
}

// @Summary 设置测验指定用户
// @Tags 测验管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "测验ID"
// @Param body body AssignUsersRequest true "用户ID列表"
// @Success 200 {object} AssignUsersRequest
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /admin/quiz/{id}/users [put]
func (c *AdminQuizController) ReplaceQuizUsers(ctx *gin.Context) {
	var req AssignUsersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ids, err := c.QuizService.ReplaceUsers(ctx.Request.Context(), ctx.Param("id"), req.UserIDs)
	if err != nil {
		respondError(ctx, "Error assigning quiz users", err)
		return
	}

	util.Success(ctx, AssignUsersRequest{UserIDs: ids})
}
