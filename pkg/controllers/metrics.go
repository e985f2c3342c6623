package controllers

import (
	"net/http"

	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsController Prometheus指标控制器
type MetricsController struct {
	controllers.BaseController
	handler http.Handler
}

// NewMetricsController 创建MetricsController实例
func NewMetricsController() *MetricsController {
	return &MetricsController{
		handler: promhttp.Handler(),
	}
}

// Metrics 提供Prometheus指标端点
func (mc *MetricsController) Metrics(c *gin.Context) {
	mc.handler.ServeHTTP(c.Writer, c.Request)
}
