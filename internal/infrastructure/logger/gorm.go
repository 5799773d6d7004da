package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowSQL = 200 * time.Millisecond

// GormLogger sends GORM's statement log through zap. Statements are logged
// with placeholders only unless WithBoundValues is set, so password hashes
// and customer phone numbers stay out of the logs.
type GormLogger struct {
	logger      *zap.Logger
	logLevel    gormlogger.LogLevel
	slowSQL     time.Duration
	boundValues bool
}

// GormLoggerOption configures a GormLogger
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which a statement is logged as slow
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) {
		l.slowSQL = threshold
	}
}

// WithBoundValues interpolates bound values into logged statements
func WithBoundValues() GormLoggerOption {
	return func(l *GormLogger) {
		l.boundValues = true
	}
}

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	l := &GormLogger{
		logger:   zapLogger.Named("gorm"),
		logLevel: level,
		slowSQL:  defaultSlowSQL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Info {
		l.logger.Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Error {
		l.logger.Sugar().Errorf(msg, data...)
	}
}

// ParamsFilter implements gorm.ParamsFilter. Returning no params leaves the
// placeholders in the statement handed to Trace.
func (l *GormLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.boundValues {
		return sql, params
	}
	return sql, nil
}

// Trace implements gormlogger.Interface. Record-not-found is never logged:
// repositories turn it into a domain error.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	isErr := err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound)
	isSlow := l.slowSQL > 0 && elapsed > l.slowSQL

	var level func(string, ...zap.Field)
	switch {
	case isErr && l.logLevel >= gormlogger.Error:
		level = l.logger.Error
	case isSlow && l.logLevel >= gormlogger.Warn:
		level = l.logger.Warn
	case err == nil && l.logLevel >= gormlogger.Info:
		level = l.logger.Debug
	default:
		return
	}

	sql, rows := fc()
	fields := append(requestFields(ctx),
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	)
	switch {
	case isErr:
		level("SQL Error", append(fields, zap.Error(err))...)
	case isSlow:
		level("Slow SQL", append(fields, zap.Duration("threshold", l.slowSQL))...)
	default:
		level("SQL Query", fields...)
	}
}

// requestFields returns the request and tenant ids carried by ctx
func requestFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 5)
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if id := GetTenantID(ctx); id != "" {
		fields = append(fields, zap.String("tenant_id", id))
	}
	return fields
}

// MapGormLogLevel maps an application log level to a GORM log level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
