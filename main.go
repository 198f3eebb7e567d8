// @title Quiz Hub 后端 API
// @version 1.0
// @description 测验管理平台的后端服务。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"quiz_hub_backend/internal/app"
	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	createAdmin := flag.String("create-admin", "", "创建管理员账号后退出，格式 email:password")
	flag.Parse()

	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置迁移标志
	cfg.ForceMigrate = *migrate || *migrateOnly || *createAdmin != ""
	cfg.MigrateOnly = *migrateOnly || *createAdmin != ""

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	if *createAdmin != "" {
		email, password, ok := strings.Cut(*createAdmin, ":")
		if !ok {
			logger.Log.Fatal("Invalid -create-admin value, expected email:password")
		}
		if err := application.CreateAdmin(context.Background(), email, password); err != nil {
			logger.Log.Fatal("Failed to create admin", zap.Error(err))
		}
		application.Close()
		return
	}

	// 迁移完成后直接退出
	if *migrateOnly {
		logger.Log.Info("Database migration completed, exiting")
		application.Close()
		return
	}

	if err := application.Run(); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
}
