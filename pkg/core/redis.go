package core

import (
	"context"
	"sync"
	"time"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisClient 全局Redis客户端实例
var (
	redisClient *redis.Client
	redisLock   sync.Mutex
)

// GetRedis 获取Redis客户端实例
// Redis未启用时返回ErrServiceUnavailable
func GetRedis() (*redis.Client, error) {
	if !config.Redis.Enabled {
		return nil, ErrServiceUnavailable
	}

	redisLock.Lock()
	defer redisLock.Unlock()

	if redisClient != nil {
		return redisClient, nil
	}

	client, err := connectRedis()
	if err != nil {
		return nil, err
	}
	redisClient = client
	return redisClient, nil
}

// connectRedis 内部函数：创建Redis连接并配置连接池
func connectRedis() (*redis.Client, error) {
	redisConfig := config.Redis

	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.GetAddr(), // Redis服务器地址
		Password: redisConfig.Password,  // Redis密码
		DB:       redisConfig.DB,        // Redis数据库编号
		PoolSize: redisConfig.PoolSize,  // 连接池大小
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("Redis连接成功", zap.String("address", redisConfig.GetAddr()))
	return client, nil
}

// CloseRedis 关闭Redis连接
func CloseRedis() error {
	redisLock.Lock()
	defer redisLock.Unlock()

	if redisClient != nil {
		logger.Info("关闭Redis连接")
		err := redisClient.Close()
		redisClient = nil
		return err
	}
	return nil
}
