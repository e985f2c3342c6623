package config

import (
	"strconv"
)

// redis Redis配置结构体
type redis struct {
	Enabled  bool   // 是否启用Redis（健康检查、会话存储）
	Host     string // Redis服务器地址
	Port     int    // Redis服务器端口
	Password string // Redis密码
	DB       int    // Redis数据库编号
	PoolSize int    // 连接池大小
}

// GetAddr 获取Redis连接地址
func (r *redis) GetAddr() string {
	return r.Host + ":" + strconv.Itoa(r.Port)
}

// Redis 全局Redis配置实例
var Redis *redis

// parseRedis 解析Redis配置
func parseRedis() {
	Redis = &redis{
		Enabled:  GetDefaultEnvBool("REDIS_ENABLED", false),
		Host:     GetDefaultEnv("REDIS_HOST", "127.0.0.1"),
		Port:     GetDefaultEnvInt("REDIS_PORT", 6379),
		Password: GetDefaultEnv("REDIS_PASSWORD", ""),
		DB:       GetDefaultEnvInt("REDIS_DB", 0),
		PoolSize: GetDefaultEnvInt("REDIS_POOL_SIZE", 10),
	}
}

func init() {
	parseRedis()
}
