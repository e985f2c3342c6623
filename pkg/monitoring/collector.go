package monitoring

import (
	"context"
	"time"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Collector 定时刷新业务指标
type Collector struct {
	cron        *cron.Cron
	spec        string
	db          *gorm.DB
	users       core.UserService
	departments core.DepartmentService
	permissions core.PermissionService
}

// NewCollector 创建指标采集器，spec为cron表达式，如：@every 30s
func NewCollector(
	spec string,
	db *gorm.DB,
	users core.UserService,
	departments core.DepartmentService,
	permissions core.PermissionService,
) *Collector {
	return &Collector{
		cron:        cron.New(),
		spec:        spec,
		db:          db,
		users:       users,
		departments: departments,
		permissions: permissions,
	}
}

// Collect 执行一次采集
func (c *Collector) Collect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	users, err := c.users.Count(ctx)
	if err != nil {
		GlobalMetrics.CollectErrors.Inc()
		return err
	}
	departments, err := c.departments.Count(ctx)
	if err != nil {
		GlobalMetrics.CollectErrors.Inc()
		return err
	}
	permissions, err := c.permissions.Count(ctx)
	if err != nil {
		GlobalMetrics.CollectErrors.Inc()
		return err
	}

	GlobalMetrics.UsersTotal.Set(float64(users))
	GlobalMetrics.DepartmentsTotal.Set(float64(departments))
	GlobalMetrics.PermissionsTotal.Set(float64(permissions))

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			GlobalMetrics.DatabaseConnections.Set(float64(sqlDB.Stats().OpenConnections))
		}
	}
	return nil
}

// Start 立即采集一次，然后按spec定时采集
func (c *Collector) Start() error {
	if _, err := c.cron.AddFunc(c.spec, func() {
		if err := c.Collect(context.Background()); err != nil {
			logger.Error("采集业务指标失败", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	go func() {
		if err := c.Collect(context.Background()); err != nil {
			logger.Error("采集业务指标失败", zap.Error(err))
		}
	}()

	c.cron.Start()
	logger.Info("业务指标采集器已启动", zap.String("spec", c.spec))
	return nil
}

// Stop 停止采集，等待正在执行的采集完成
func (c *Collector) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	logger.Info("业务指标采集器已停止")
}
