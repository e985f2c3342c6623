package config

// SystemCode 系统编码，用于指标前缀和日志
const SystemCode = "lessons"

// Version 当前版本
const Version = "1.0.0"

// SessionLastNameKey profile页面记住的用户名
const SessionLastNameKey = "last_name"
