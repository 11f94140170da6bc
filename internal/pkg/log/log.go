package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	otel *otelzap.Logger
}

var (
	global *otelzap.Logger
	once   sync.Once
)

// SetupLogger builds the base zap logger. LOG_LEVEL=debug switches on debug output.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("LOG_LEVEL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("error build logger: %v", err))
	}
	return z
}

// Init sets the process wide logger. Only the first call has effect.
func Init(z *zap.Logger) {
	once.Do(func() {
		global = otelzap.New(z)
	})
}

// Setup returns an otelzap logger for handlers and middleware.
func Setup() *otelzap.Logger {
	Init(SetupLogger())
	return global
}

func GetLogger() Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return &logger{otel: global}
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Info(msg, toFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Warn(msg, toFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.otel.Ctx(ctx).Error(msg, toFields(fields)...)
}

func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
