package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabase_GetDSN(t *testing.T) {
	Database = &database{
		Driver:   "mysql",
		Host:     "127.0.0.1",
		Port:     3306,
		Database: "test",
		User:     "root",
		Password: "root",
		Schema:   "public",
	}
	dsn := Database.GetDSN()
	if dsn != "root:root@tcp(127.0.0.1:3306)/test?charset=utf8mb4&parseTime=True&loc=Local" {
		t.Errorf("GetDSN failed, expect: root:root@tcp(127.0.0.1:3306)/test?charset=utf8mb4&parseTime=True&loc=Local, actual: %s", dsn)
	}
}

func TestDatabase_GetDSNPostgres(t *testing.T) {
	db := &database{
		Driver:   "postgres",
		Host:     "db",
		Port:     5432,
		Database: "lessons",
		User:     "postgres",
		Password: "secret",
		Schema:   "public",
	}
	assert.True(t, db.IsPostgres())
	assert.Equal(t,
		"host=db user=postgres password=secret dbname=lessons port=5432 search_path=public sslmode=disable TimeZone=Asia/Shanghai",
		db.GetDSN())
}

func TestDatabase_GetDSNSqlite(t *testing.T) {
	db := &database{Driver: "sqlite", Database: "lessons.db"}
	assert.True(t, db.IsSqlite())
	assert.False(t, db.IsPostgres())
	assert.Equal(t, "lessons.db", db.GetDSN())
}

func TestDatabase_GetDSNMultiStatements(t *testing.T) {
	db := &database{
		Driver:   "mysql",
		Host:     "127.0.0.1",
		Port:     3306,
		Database: "lessons",
		User:     "root",
		Password: "root",
		Migrate:  MigrateSQL,
	}
	assert.Equal(t,
		"root:root@tcp(127.0.0.1:3306)/lessons?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true",
		db.GetDSN())

	db.Migrate = MigrateAuto
	assert.NotContains(t, db.GetDSN(), "multiStatements")

	// postgres的驱动自己处理多条语句
	db.Driver = "postgres"
	db.Migrate = MigrateSQL
	assert.NotContains(t, db.GetDSN(), "multiStatements")
}
