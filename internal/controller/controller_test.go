package controller

import (
	"quiz_hub_backend/internal/middleware"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/internal/testutil"

	"github.com/gin-gonic/gin"
)

const (
	userID  = "11111111-1111-1111-1111-111111111111"
	adminID = "99999999-9999-9999-9999-999999999999"
)

// setupRouter 使用假存储组装与生产相同的路由
func setupRouter(store *testutil.FakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	userCtrl := NewUserQuizController(
		service.NewQuizService(store),
		service.NewAttemptService(store, store, nil, nil),
	)
	adminCtrl := NewAdminQuizController(service.NewAdminQuizService(store, nil, nil))

	user := r.Group("/api/user", middleware.RequireRole(testutil.TestSecret, model.RoleUser)...)
	{
		user.GET("/quiz", userCtrl.ListQuizzes)
		user.POST("/quiz/:id/attempts", userCtrl.StartAttempt)
		user.POST("/attempts/:attemptId/submit", userCtrl.SubmitAttempt)
	}

	admin := r.Group("/api/admin", middleware.RequireRole(testutil.TestSecret, model.RoleAdmin)...)
	{
		admin.GET("/quiz", adminCtrl.ListQuizzes)
		admin.POST("/quiz", adminCtrl.CreateQuiz)
		admin.GET("/quiz/:id", adminCtrl.GetQuiz)
		admin.PUT("/quiz/:id", adminCtrl.UpdateQuiz)
		admin.DELETE("/quiz/:id", adminCtrl.DeleteQuiz)
		admin.GET("/quiz/:id/users", adminCtrl.GetQuizUsers)
		admin.PUT("/quiz/:id/users", adminCtrl.ReplaceQuizUsers)
	}
	return r
}
