// Package monitoring 提供系统监控指标收集功能
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics 系统监控指标结构体
type Metrics struct {
	// HTTP 请求相关指标
	HTTPRequestsTotal    *prometheus.CounterVec   // HTTP 请求总数
	HTTPRequestDuration  *prometheus.HistogramVec // HTTP 请求耗时
	HTTPRequestsInFlight prometheus.Gauge         // 当前正在处理的 HTTP 请求数

	// 业务相关指标
	UsersTotal       prometheus.Gauge // 用户总数
	DepartmentsTotal prometheus.Gauge // 部门总数
	PermissionsTotal prometheus.Gauge // 权限总数

	// 数据库相关指标
	DatabaseConnections prometheus.Gauge // 数据库连接数

	// 采集任务
	CollectErrors prometheus.Counter // 指标采集失败次数
}

// GlobalMetrics 全局监控指标实例
var GlobalMetrics *Metrics

func init() {
	GlobalMetrics = &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lessons_http_requests_total",
				Help: "The total number of HTTP requests.",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lessons_http_request_duration_seconds",
				Help:    "The HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lessons_http_requests_in_flight",
				Help: "The current number of HTTP requests being processed.",
			},
		),
		UsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lessons_users_total",
				Help: "The total number of users.",
			},
		),
		DepartmentsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lessons_departments_total",
				Help: "The total number of departments.",
			},
		),
		PermissionsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lessons_permissions_total",
				Help: "The total number of permissions.",
			},
		),
		DatabaseConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lessons_database_connections",
				Help: "The current number of open database connections.",
			},
		),
		CollectErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lessons_metrics_collect_errors_total",
				Help: "The total number of failed metrics collections.",
			},
		),
	}
}

// RecordHTTPRequest 记录一次HTTP请求
func (m *Metrics) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
