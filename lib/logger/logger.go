package logger

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Settings 描述日志的级别和输出位置，Filename 为空时输出到标准错误
type Settings struct {
	Level      string
	Format     string
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

func init() {
	l, _ := build(&Settings{Level: "info", Format: "console"})
	replace(l)
}

func Setup(settings *Settings) error {
	l, err := build(settings)
	if err != nil {
		return err
	}
	replace(l)
	return nil
}

func build(settings *Settings) (*zap.Logger, error) {
	var level zapcore.Level
	if settings.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(settings.Level))); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", settings.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if settings.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var sink zapcore.WriteSyncer
	if settings.Filename == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   settings.Filename,
			MaxSize:    settings.MaxSize,
			MaxBackups: settings.MaxBackups,
			MaxAge:     settings.MaxAge,
		})
	}
	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func replace(l *zap.Logger) {
	if base != nil {
		_ = base.Sync()
	}
	base = l
	sugar = l.Sugar()
}

// L 返回底层的结构化日志，用于注入到字典等组件中
func L() *zap.Logger {
	return base.WithOptions(zap.AddCallerSkip(-1))
}

func Sync() error {
	return base.Sync()
}

func Debug(v ...any) {
	sugar.Debug(v...)
}

func Debugf(format string, v ...any) {
	sugar.Debugf(format, v...)
}

func Info(v ...any) {
	sugar.Info(v...)
}

func Infof(format string, v ...any) {
	sugar.Infof(format, v...)
}

func Warn(v ...any) {
	sugar.Warn(v...)
}

func Warnf(format string, v ...any) {
	sugar.Warnf(format, v...)
}

func Error(v ...any) {
	sugar.Error(v...)
}

func Errorf(format string, v ...any) {
	sugar.Errorf(format, v...)
}

func Fatal(v ...any) {
	sugar.Fatal(v...)
}

func Fatalf(format string, v ...any) {
	sugar.Fatalf(format, v...)
}
