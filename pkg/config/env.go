package config

import (
	"os"
	"strconv"
)

// GetDefaultEnv 获取环境变量，若不存在则返回默认值
// key: 环境变量名
// value: 默认值
// return: 环境变量值
func GetDefaultEnv(key, value string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return value
	}
	return os.ExpandEnv(val)
}

// GetDefaultEnvInt 获取整型环境变量，解析失败时返回默认值
func GetDefaultEnvInt(key string, value int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return value
	}
	i, err := strconv.Atoi(os.ExpandEnv(val))
	if err != nil {
		return value
	}
	return i
}

// GetDefaultEnvBool 获取布尔型环境变量
func GetDefaultEnvBool(key string, value bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return value
	}
	b, err := strconv.ParseBool(os.ExpandEnv(val))
	if err != nil {
		return value
	}
	return b
}
