package core

import (
	"embed"
	"errors"
	"fmt"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Models 需要迁移的模型
func Models() []interface{} {
	return []interface{}{
		&Department{},
		&Permission{},
		&DepartmentPermission{},
		&User{},
		&UserExtension{},
	}
}

// AutoMigrate 通过gorm自动迁移表结构
// 字段变更只会新增，不会删除已有的列
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("自动迁移失败: %w", err)
	}
	return nil
}

// Migrate 根据配置选择迁移方式
func Migrate(db *gorm.DB) error {
	switch config.Database.Migrate {
	case config.MigrateNone:
		logger.Info("跳过数据库迁移")
		return nil
	case config.MigrateSQL:
		return RunSQLMigrations(db)
	default:
		return AutoMigrate(db)
	}
}

// RunSQLMigrations 执行内嵌的SQL迁移脚本
// 自动检测当前版本并应用所有未执行的迁移，仅支持MySQL和PostgreSQL
// MySQL的连接需要multiStatements=true，DB_MIGRATE=sql时GetDSN会加上
func RunSQLMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	var (
		dir        string
		driverName string
		driver     database.Driver
	)
	switch {
	case config.Database.IsPostgres():
		dir, driverName = "migrations/postgres", "postgres"
		driver, err = migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	case config.Database.IsSqlite():
		return fmt.Errorf("SQL迁移不支持sqlite，请使用 DB_MIGRATE=%s", config.MigrateAuto)
	default:
		dir, driverName = "migrations/mysql", "mysql"
		driver, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	}
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("数据库迁移处于 dirty 状态", zap.Uint("version", version))
	} else {
		logger.Info("数据库迁移完成", zap.Uint("version", version))
	}
	return nil
}
