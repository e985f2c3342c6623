// Package testdb 为单元测试提供内存SQLite数据库
package testdb

import (
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New 创建一个已完成迁移的内存数据库，测试结束后自动关闭
// 内存库每个连接都是独立的数据库，所以连接数限制为1
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := core.OpenDB(sqlite.Open("file::memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, core.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
