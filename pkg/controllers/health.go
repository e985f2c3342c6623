package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	statusOK       = "ok"
	statusError    = "error"
	statusDisabled = "disabled"
)

// HealthController 健康检查
type HealthController struct {
	controllers.BaseController
	db *gorm.DB
}

// NewHealthController 创建HealthController实例
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{
		db: db,
	}
}

// checkDB Ping数据库
func (hc *HealthController) checkDB(ctx context.Context) error {
	if hc.db == nil {
		return errors.New("数据库未初始化")
	}
	sqlDB, err := hc.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// checkRedis Ping Redis，未启用时返回statusDisabled
func (hc *HealthController) checkRedis(ctx context.Context) string {
	if !config.Redis.Enabled {
		return statusDisabled
	}
	client, err := core.GetRedis()
	if err != nil {
		logger.Error("Redis连接失败", zap.Error(err))
		return statusError
	}
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Error("Redis Ping失败", zap.Error(err))
		return statusError
	}
	return statusOK
}

// Health 健康检查接口，返回各依赖服务的状态
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	dbStatus := statusOK
	dbCheckTime := time.Now()
	if err := hc.checkDB(ctx); err != nil {
		dbStatus = statusError
		logger.Error("数据库Ping失败", zap.Error(err))
	}
	dbCheckDuration := time.Since(dbCheckTime)

	redisCheckTime := time.Now()
	redisStatus := hc.checkRedis(ctx)
	redisCheckDuration := time.Since(redisCheckTime)

	response := gin.H{
		"status":  statusOK,
		"version": config.Version,
		"lesson":  config.Lesson.Name,
		"services": gin.H{
			"database": gin.H{
				"driver":  config.Database.Driver,
				"status":  dbStatus,
				"latency": dbCheckDuration.String(),
			},
			"redis": gin.H{
				"status":  redisStatus,
				"latency": redisCheckDuration.String(),
			},
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}

	// 如果有任一服务异常，更新整体状态
	if dbStatus == statusError || redisStatus == statusError {
		response["status"] = "degraded"
	}

	hc.HandleOK(c, response)
}

// Liveness 存活检查，进程能响应即可
func (hc *HealthController) Liveness(c *gin.Context) {
	hc.HandleOK(c, gin.H{"status": statusOK})
}

// Readiness 就绪检查，数据库不可用时返回503
func (hc *HealthController) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := hc.checkDB(ctx); err != nil {
		hc.HandleError(c, errors.Join(core.ErrServiceUnavailable, err), http.StatusServiceUnavailable)
		return
	}
	hc.HandleOK(c, gin.H{"status": statusOK})
}
