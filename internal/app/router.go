package app

import (
	"quiz_hub_backend/docs"
	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/middleware"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/pkg/monitoring"
	"quiz_hub_backend/pkg/security"
	"quiz_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(cfg *config.Config, c *controllers) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	router := gin.Default()
	setupMiddlewares(router, cfg)
	registerRoutes(router, c, cfg)
	return router
}

func setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.SkipPaths))
	}

	router.Use(monitoring.MetricsMiddleware())
}

func registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// 2. 用户接口，仅 USER 角色
	user := router.Group("/api/user", middleware.RequireRole(cfg.JWT.Secret, model.RoleUser)...)
	{
		user.GET("/quiz", c.userQuiz.ListQuizzes)
		user.POST("/quiz/:id/attempts", c.userQuiz.StartAttempt)
		user.POST("/attempts/:attemptId/submit", c.userQuiz.SubmitAttempt)
	}

	// 3. 管理员接口
	admin := router.Group("/api/admin", middleware.RequireRole(cfg.JWT.Secret, model.RoleAdmin)...)
	{
		admin.GET("/quiz", c.adminQuiz.ListQuizzes)
		admin.POST("/quiz", c.adminQuiz.CreateQuiz)
		admin.GET("/quiz/:id", c.adminQuiz.GetQuiz)
		admin.PUT("/quiz/:id", c.adminQuiz.UpdateQuiz)
		admin.DELETE("/quiz/:id", c.adminQuiz.DeleteQuiz)
		admin.GET("/quiz/:id/users", c.adminQuiz.GetQuizUsers)
		admin.PUT("/quiz/:id/users", c.adminQuiz.ReplaceQuizUsers)
	}
}
