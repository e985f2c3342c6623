// Package app 应用程序核心模块
//
// 负责应用程序的初始化、配置和启动流程
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/middleware"
	"github.com/codelieche/lessons/pkg/monitoring"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newApp 创建并配置Gin Web应用实例
func newApp() *gin.Engine {
	gin.SetMode(config.Web.Mode)

	app := gin.New()
	app.Use(gin.Recovery())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.CORSMiddleware())

	return app
}

// Run 启动Web服务
//
// 1. 初始化日志系统
// 2. 连接数据库并执行迁移
// 3. 初始化路由
// 4. 启动业务指标采集
// 5. 启动Web服务器，收到信号后优雅关闭
func Run() {
	logger.InitLogger()
	logger.Info("Lessons 启动中",
		zap.String("监听地址", config.Web.Address()),
		zap.String("lesson", config.Lesson.Name),
		zap.String("version", config.Version))

	db, err := core.GetDB()
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	if err := core.Migrate(db); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}
	logger.Info("数据库连接和迁移完成", zap.String("migrate", config.Database.Migrate))

	app := newApp()
	collector, err := initRouter(app, db)
	if err != nil {
		logger.Fatal("初始化路由失败", zap.Error(err))
	}
	if collector != nil {
		if err := collector.Start(); err != nil {
			logger.Error("启动业务指标采集器失败", zap.Error(err))
			collector = nil
		}
	}

	server := &http.Server{
		Addr:         config.Web.Address(),
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Lessons 已启动", zap.String("监听地址", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	gracefulShutdown(server, collector)
}

// gracefulShutdown 优雅关闭服务器
func gracefulShutdown(server *http.Server, collector *monitoring.Collector) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("收到关闭信号，开始优雅关闭", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("正在关闭HTTP服务器...")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP服务器关闭失败", zap.Error(err))
	} else {
		logger.Info("HTTP服务器已关闭")
	}

	if collector != nil {
		collector.Stop()
	}

	if err := core.CloseDB(); err != nil {
		logger.Error("数据库连接关闭失败", zap.Error(err))
	} else {
		logger.Info("数据库连接已关闭")
	}

	if err := core.CloseRedis(); err != nil {
		logger.Error("Redis连接关闭失败", zap.Error(err))
	}

	logger.Sync()
	logger.Info("Lessons 已优雅关闭")
}
