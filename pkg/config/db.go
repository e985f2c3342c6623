package config

import (
	"fmt"
	"strconv"
)

// 迁移方式
const (
	MigrateAuto = "auto" // gorm AutoMigrate
	MigrateSQL  = "sql"  // golang-migrate执行内嵌的SQL迁移脚本
	MigrateNone = "none" // 不执行迁移
)

// database 数据库配置
type database struct {
	Driver   string // 数据库的driver：mysql, postgresql, postgres, sqlite
	Host     string // 数据库地址
	Port     int    // 数据库端口
	Database string // 数据库，sqlite时为文件路径
	User     string // 数据库用户
	Password string // 数据库密码
	Schema   string // PG数据库的schema
	Migrate  string // 迁移方式：auto, sql, none
	LogLevel string // SQL日志级别：silent, error, warn, info
}

// IsPostgres 是否为PostgreSQL
func (db *database) IsPostgres() bool {
	return db.Driver == "postgresql" || db.Driver == "postgres"
}

// IsSqlite 是否为SQLite
func (db *database) IsSqlite() bool {
	return db.Driver == "sqlite" || db.Driver == "sqlite3"
}

// GetDSN 获取数据库的DSN
func (db *database) GetDSN() string {
	switch {
	case db.IsPostgres():
		// PG数据库的话默认的schema是public
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d search_path=%s sslmode=disable TimeZone=Asia/Shanghai",
			db.Host, db.User, db.Password, db.Database, db.Port, db.Schema)
	case db.IsSqlite():
		return db.Database
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			db.User, db.Password, db.Host, db.Port, db.Database)
		// golang-migrate的mysql驱动要求连接开启multiStatements，一个迁移文件包含多条语句
		if db.Migrate == MigrateSQL {
			dsn += "&multiStatements=true"
		}
		return dsn
	}
}

// Database 数据库配置
var Database *database

// parseDatabase 解析数据库配置
func parseDatabase() {
	driver := GetDefaultEnv("DB_DRIVER", "mysql")
	host := GetDefaultEnv("DB_HOST", "127.0.0.1")
	portStr := GetDefaultEnv("DB_PORT", "3306")
	dbName := GetDefaultEnv("DB_NAME", "lessons")
	user := GetDefaultEnv("DB_USER", "root")
	password := GetDefaultEnv("DB_PASSWORD", "root")
	schema := GetDefaultEnv("DB_SCHEMA", "public")
	migrate := GetDefaultEnv("DB_MIGRATE", MigrateAuto)
	logLevel := GetDefaultEnv("DB_LOG_LEVEL", "warn")

	// 解析端口
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 3306
	}

	Database = &database{
		Driver:   driver,
		Host:     host,
		Port:     port,
		Database: dbName,
		User:     user,
		Password: password,
		Schema:   schema,
		Migrate:  migrate,
		LogLevel: logLevel,
	}
}

func init() {
	parseDatabase()
}
