package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
	tenantIDKey
	userIDKey
)

// fieldNames are the log field names for the identity keys
var fieldNames = map[ctxKey]string{
	requestIDKey: "request_id",
	tenantIDKey:  "tenant_id",
	userIDKey:    "user_id",
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithRequestID stores the request id and returns a logger carrying it.
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	return enrich(ctx, logger, requestIDKey, requestID)
}

// WithTenantID stores the shop owner's tenant id and returns a logger carrying it.
func WithTenantID(ctx context.Context, logger *zap.Logger, tenantID string) (context.Context, *zap.Logger) {
	return enrich(ctx, logger, tenantIDKey, tenantID)
}

// WithUserID stores the user id and returns a logger carrying it.
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	return enrich(ctx, logger, userIDKey, userID)
}

func enrich(ctx context.Context, logger *zap.Logger, key ctxKey, value string) (context.Context, *zap.Logger) {
	l := logger.With(zap.String(fieldNames[key], value))
	ctx = context.WithValue(ctx, key, value)
	return WithContext(ctx, l), l
}

func lookup(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// GetRequestID returns the request id in ctx, if any.
func GetRequestID(ctx context.Context) string { return lookup(ctx, requestIDKey) }

// GetTenantID returns the tenant id in ctx, if any.
func GetTenantID(ctx context.Context) string { return lookup(ctx, tenantIDKey) }

// GetUserID returns the user id in ctx, if any.
func GetUserID(ctx context.Context) string { return lookup(ctx, userIDKey) }

// WithTraceContext adds trace_id and span_id when ctx carries a valid span.
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// L is FromContext plus trace correlation.
func L(ctx context.Context) *zap.Logger {
	return WithTraceContext(ctx, FromContext(ctx))
}
