package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/controller"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/internal/service"
	"quiz_hub_backend/pkg/configwatcher"
	"quiz_hub_backend/pkg/database"
	"quiz_hub_backend/pkg/logger"
	"quiz_hub_backend/pkg/messaging"
	"quiz_hub_backend/pkg/monitoring"
	"quiz_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	MQ     *messaging.RabbitMQClient

	services       *services
	tracerProvider *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	quiz    *repository.QuizRepository
	attempt *repository.QuizAttemptRepository
}

type services struct {
	auth      *service.AuthService
	quiz      *service.QuizService
	adminQuiz *service.AdminQuizService
	attempt   *service.AttemptService
}

type controllers struct {
	auth      *controller.AuthController
	userQuiz  *controller.UserQuizController
	adminQuiz *controller.AdminQuizController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		quiz:    repository.NewQuizRepository(db),
		attempt: repository.NewQuizAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	// MQ 为 nil 时不能直接赋给接口，否则得到非 nil 的接口值
	var publisher service.EventPublisher
	if a.MQ != nil {
		publisher = a.MQ
	}
	cache := service.NewQuizCache(a.Redis, cfg.Redis.QuizTTL)

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		quiz:      service.NewQuizService(repos.quiz),
		adminQuiz: service.NewAdminQuizService(repos.quiz, cache, publisher),
		attempt:   service.NewAttemptService(repos.quiz, repos.attempt, cache, publisher),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		userQuiz:  controller.NewUserQuizController(s.quiz, s.attempt),
		adminQuiz: controller.NewAdminQuizController(s.adminQuiz),
		health:    controller.NewHealthController(db),
	}
}

// newApp 组装已建立好的连接，rdb 与 mq 可为 nil
func newApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mq *messaging.RabbitMQClient) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		MQ:     mq,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg)
	controllers := app.initControllers(app.services, db)

	// 监控初始化
	monitoring.Init()

	app.Router = newRouter(cfg, controllers)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})
	return app
}

func shouldMigrate(cfg *config.Config) bool {
	return cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if shouldMigrate(cfg) {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	var mq *messaging.RabbitMQClient
	if cfg.RabbitMQ.Enabled {
		mq, err = messaging.NewRabbitMQClient(&cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("RabbitMQ connection established")
	}

	app := newApp(cfg, db, rdb, mq)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(&cfg.Tracing)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
		app.tracerProvider = tp
	}

	return app, nil
}

// CreateAdmin 创建管理员账号，用于初始化部署
func (a *App) CreateAdmin(ctx context.Context, email, password string) error {
	authService := service.NewAuthService(repository.NewUserRepository(a.DB), a.Config)
	user, err := authService.CreateAdmin(ctx, "", email, password)
	if err != nil {
		return err
	}
	logger.Log.Info("Admin account created", zap.String("id", user.ID), zap.String("email", user.Email))
	return nil
}

func (a *App) Close() {
	if a.MQ != nil {
		if err := a.MQ.Close(); err != nil {
			logger.Log.Warn("Failed to close RabbitMQ connection", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	done := make(chan struct{})
	if a.Config.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(a.Config.ConfigFile, a.applyConfig, done); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		logger.Log.Info("Shutting down server...")
	case runErr = <-errCh:
		logger.Log.Error("Server failed", zap.Error(runErr))
	}
	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && runErr == nil {
		runErr = fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.Close()
	logger.Log.Info("Server exiting")
	return runErr
}
