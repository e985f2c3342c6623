package core

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// db 全局数据库连接实例
var (
	db     *gorm.DB
	dbLock sync.Mutex
)

// GetDB 获取数据库连接实例
// 如果连接不存在，会创建新的连接
func GetDB() (*gorm.DB, error) {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db != nil {
		return db, nil
	}

	conn, err := connectDatabase()
	if err != nil {
		return nil, err
	}
	db = conn
	return db, nil
}

// NewGormConfig gorm配置：命名约定 + zap日志
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: NewConventionNamer(),
		Logger:         logger.NewGormLogger(config.Database.LogLevel),
	}
}

// NewDialector 根据配置选择数据库驱动
// 支持MySQL、PostgreSQL和SQLite
func NewDialector() gorm.Dialector {
	dsn := config.Database.GetDSN()

	switch {
	case config.Database.IsPostgres():
		return postgres.Open(dsn)
	case config.Database.IsSqlite():
		return sqlite.Open(dsn)
	default:
		return mysql.New(mysql.Config{
			DSN:                       dsn,   // 数据源名称
			DefaultStringSize:         256,   // string类型字段的默认长度
			DisableDatetimePrecision:  true,  // 禁用datetime精度，MySQL 5.6之前的数据库不支持
			DontSupportRenameIndex:    true,  // 重命名索引时采用删除并新建的方式
			DontSupportRenameColumn:   true,  // 用`change`重命名列
			SkipInitializeWithVersion: false, // 根据当前MySQL版本自动配置
		})
	}
}

// OpenDB 打开数据库连接并注册中间表
func OpenDB(dialector gorm.Dialector) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := SetupJoinTables(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

// SetupJoinTables 注册自定义的多对多中间表
func SetupJoinTables(gormDB *gorm.DB) error {
	if err := gormDB.SetupJoinTable(&Department{}, "Permissions", &DepartmentPermission{}); err != nil {
		return fmt.Errorf("注册中间表失败: %w", err)
	}
	if err := gormDB.SetupJoinTable(&Permission{}, "Departments", &DepartmentPermission{}); err != nil {
		return fmt.Errorf("注册中间表失败: %w", err)
	}
	return nil
}

// connectDatabase 内部函数：创建数据库连接并配置连接池
func connectDatabase() (*gorm.DB, error) {
	gormDB, err := OpenDB(NewDialector())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	configureConnectionPool(sqlDB)
	logger.Info("数据库连接池配置完成",
		zap.String("driver", config.Database.Driver),
		zap.Int("max_idle_conns", 20),
		zap.Int("max_open_conns", 100),
		zap.Duration("conn_max_lifetime", time.Hour))

	return gormDB, nil
}

// configureConnectionPool 配置数据库连接池参数
func configureConnectionPool(sqlDB *sql.DB) {
	// SQLite是单文件数据库，写操作需要串行
	if config.Database.IsSqlite() {
		sqlDB.SetMaxOpenConns(1)
		return
	}

	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)
}

// CloseDB 关闭数据库连接
func CloseDB() error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		logger.Info("正在关闭数据库连接...")
		err = sqlDB.Close()
		db = nil
		return err
	}
	return nil
}
