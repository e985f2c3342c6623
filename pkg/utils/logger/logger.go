package logger

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/codelieche/lessons/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 全局日志器
var (
	logger *zap.Logger
	level  = zap.NewAtomicLevel()
	once   sync.Once
)

// fileSyncer 按LOG_FILE_PATH写文件，lumberjack负责滚动
func fileSyncer() (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(path.Dir(config.Log.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.Log.FilePath,
		MaxSize:    config.Log.MaxSize,
		MaxAge:     config.Log.MaxAge,
		MaxBackups: config.Log.MaxBackups,
		Compress:   config.Log.Compress,
	}), nil
}

// newEncoder LOG_FORMAT=json时输出json，其它都是console
func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	if config.Log.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// newWriteSyncer 根据LOG_OUTPUT选择输出：console, file, both
// 文件无法创建时退回到标准输出
func newWriteSyncer() zapcore.WriteSyncer {
	stdout := zapcore.AddSync(os.Stdout)
	if config.Log.Output != "file" && config.Log.Output != "both" && config.Log.Output != "all" {
		return stdout
	}

	file, err := fileSyncer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return stdout
	}
	if config.Log.Output == "file" {
		return file
	}
	return zapcore.NewMultiWriteSyncer(stdout, file)
}

// InitLogger 初始化日志，重复调用只生效一次
func InitLogger() {
	once.Do(func() {
		setLogLevel(config.Log.Level)
		logger = zap.New(
			zapcore.NewCore(newEncoder(), newWriteSyncer(), level),
			zap.AddCaller(),
			zap.AddCallerSkip(1),
			zap.AddStacktrace(zapcore.FatalLevel),
		)
		zap.ReplaceGlobals(logger)
	})
}

// setLogLevel 无法识别的级别使用info
func setLogLevel(levelStr string) {
	zapLevel, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "无效的日志级别: %s, 使用默认级别 info\n", levelStr)
		zapLevel = zapcore.InfoLevel
	}
	level.SetLevel(zapLevel)
}

// GetLevel 获取当前日志级别
func GetLevel() string {
	return level.String()
}

// SetLevel 设置日志级别
func SetLevel(levelStr string) {
	InitLogger()
	setLogLevel(levelStr)
}

// ReplaceLogger 替换全局日志器，返回的函数用于还原
func ReplaceLogger(l *zap.Logger) (restore func()) {
	InitLogger()
	previous := logger
	logger = l
	return func() {
		logger = previous
	}
}

// Logger 获取logger实例
func Logger() *zap.Logger {
	InitLogger()
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Logger().Fatal(msg, fields...)
}

// Sync 刷新日志缓存
func Sync() error {
	if logger != nil {
		return logger.Sync()
	}
	return nil
}
