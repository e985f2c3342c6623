package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLevel_Invalid(t *testing.T) {
	SetLevel("verbose")
	assert.Equal(t, "info", GetLevel())
}

func TestReplaceLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := ReplaceLogger(zap.New(core))

	Info("读取用户", zap.Uint("id", 1))
	Debug("忽略")
	restore()
	Info("还原之后")

	assert.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "读取用户", entry.Message)
	assert.Equal(t, uint64(1), entry.ContextMap()["id"])
}
