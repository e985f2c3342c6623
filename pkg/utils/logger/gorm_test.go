package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, ParseGormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, ParseGormLevel("whatever"))
}

func TestGormLogger_LogMode(t *testing.T) {
	l := NewGormLogger("warn")
	changed := l.LogMode(gormlogger.Info).(*GormLogger)
	assert.Equal(t, gormlogger.Info, changed.level)
	// 原对象不受影响
	assert.Equal(t, gormlogger.Warn, l.level)
}

func TestSetLevel(t *testing.T) {
	SetLevel("debug")
	assert.Equal(t, "debug", GetLevel())
	SetLevel("info")
	assert.Equal(t, "info", GetLevel())
}
