package config

// metrics 监控配置
type metrics struct {
	Enabled     bool   // 是否开启/metrics
	CollectSpec string // 业务指标收集的cron表达式
}

var Metrics *metrics

func parseMetrics() {
	Metrics = &metrics{
		Enabled:     GetDefaultEnvBool("METRICS_ENABLED", true),
		CollectSpec: GetDefaultEnv("METRICS_COLLECT_SPEC", "@every 30s"),
	}
}

func init() {
	parseMetrics()
}
