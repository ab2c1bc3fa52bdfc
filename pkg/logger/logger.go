package logger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
	atom zap.AtomicLevel

	buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
		return cfg.Build(zap.AddCallerSkip(1))
	}
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ActorIDKey   ContextKey = "actor_id"
	ActorRoleKey ContextKey = "actor_role"
)

// Init initializes the process-wide logger. Calls after the first are no-ops.
func Init(env string) {
	once.Do(func() {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.InitialFields = map[string]interface{}{"service": "captura-leads"}

		if env == "development" || env == "test" {
			config = zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		l, err := buildLogger(config)
		if err != nil {
			panic(err)
		}
		log = l
		atom = config.Level
	})
}

// GetLogger returns the underlying zap logger, a no-op one before Init
func GetLogger() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func SetLevel(level zapcore.Level) {
	if log == nil {
		return
	}
	atom.SetLevel(level)
}

// ContextWithRequestID tags ctx so every line logged with it carries request_id
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// ContextWithActor tags ctx with the authenticated staff member
func ContextWithActor(ctx context.Context, actorID, role string) context.Context {
	ctx = context.WithValue(ctx, ActorIDKey, actorID)
	return context.WithValue(ctx, ActorRoleKey, role)
}

// WithContext adds the request scoped fields found in ctx
func WithContext(ctx context.Context) *zap.Logger {
	base := GetLogger()
	if ctx == nil {
		return base
	}

	var fields []zap.Field
	// gin stores the request id under a plain string key
	if reqID, ok := ctx.Value("request_id").(string); ok {
		fields = append(fields, zap.String("request_id", reqID))
	} else if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if actorID, ok := ctx.Value(ActorIDKey).(string); ok && actorID != "" {
		fields = append(fields, zap.String("actor_id", actorID))
	}
	if role, ok := ctx.Value(ActorRoleKey).(string); ok && role != "" {
		fields = append(fields, zap.String("actor_role", role))
	}

	if len(fields) > 0 {
		return base.With(fields...)
	}
	return base
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Info(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Debug(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Warn(msg, fields...)
}

// Security logs an access control event (failed login, forbidden edit) at
// WarnLevel under a stable security_event field
func Security(ctx context.Context, event, msg string, fields ...zap.Field) {
	WithContext(ctx).Warn(msg, append([]zap.Field{zap.String("security_event", event)}, fields...)...)
}

// LogRequest logs an HTTP access line. 5xx go out at ErrorLevel, 4xx at
// WarnLevel.
func LogRequest(ctx context.Context, method, path string, status int, latency time.Duration, clientIP string, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("client_ip", clientIP),
	}, fields...)

	l := WithContext(ctx)
	switch {
	case status >= 500:
		l.Error("HTTP Request failed", fields...)
	case status >= 400:
		l.Warn("HTTP Request rejected", fields...)
	default:
		l.Info("HTTP Request", fields...)
	}
}

// Sync flushes buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
