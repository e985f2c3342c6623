package config

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
)

// web 配置
type web struct {
	Host             string // 监听主机
	Port             int    // 监听端口
	Mode             string // gin运行模式：debug, release, test
	SessionSecretKey string // 会话的secretKey
	SessionIDName    string // 会话的cookie name
	SessionStore     string // 会话存储：cookie, redis
}

// Address 获取web服务监听的地址
func (w *web) Address() string {
	return w.Host + ":" + strconv.Itoa(w.Port)
}

var Web *web

// parseWeb 解析web配置
func parseWeb() {
	host := GetDefaultEnv("WEB_HOST", "0.0.0.0")
	portStr := GetDefaultEnv("WEB_PORT", "8080")
	mode := GetDefaultEnv("GIN_MODE", "debug")
	sessionSecretKey := GetDefaultEnv("SESSION_SECRET_KEY", generateRandomSessionKey())
	sessionIDName := GetDefaultEnv("SESSION_ID_NAME", "lessons_sessionid")
	sessionStore := GetDefaultEnv("SESSION_STORE", "cookie")
	port, err := strconv.Atoi(portStr)

	// 解析端口
	if err != nil {
		port = 8080
	}

	Web = &web{
		Host:             host,
		Port:             port,
		Mode:             mode,
		SessionSecretKey: sessionSecretKey,
		SessionIDName:    sessionIDName,
		SessionStore:     sessionStore,
	}
}

// generateRandomSessionKey 生成随机的会话密钥
// 如果环境变量未设置SESSION_SECRET_KEY，则生成一个32字节的随机密钥
func generateRandomSessionKey() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "Lessons-Default-Session-Secret-Key-Please-Change-In-Production!"
	}
	return hex.EncodeToString(key)
}

func init() {
	parseWeb()
}
