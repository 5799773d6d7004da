package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ginRequestIDKey = "request_id"
	ginLoggerKey    = "logger"
)

// GinMiddleware logs one line per request. The request logger is stored on
// both the gin context and the request context.
func GinMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		reqLogger := base.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))
		ctx := WithContext(req.Context(), reqLogger)
		if id := c.GetString(ginRequestIDKey); id != "" {
			ctx, reqLogger = WithRequestID(ctx, reqLogger, id)
		}
		c.Set(ginLoggerKey, reqLogger)
		c.Request = req.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		fields := make([]zap.Field, 0, 7)
		fields = append(fields,
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("bytes", c.Writer.Size()),
		)
		if q := req.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		// the auth middleware runs later and swaps in its own request
		if tenant := GetTenantID(c.Request.Context()); tenant != "" {
			fields = append(fields, zap.String("tenant_id", tenant))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}
		levelFor(reqLogger, status)("HTTP Request", fields...)
	}
}

func levelFor(l *zap.Logger, status int) func(string, ...zap.Field) {
	if status >= http.StatusInternalServerError {
		return l.Error
	}
	if status >= http.StatusBadRequest {
		return l.Warn
	}
	return l.Info
}

// Recovery turns a panic into the API's generic 500 body.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			id := c.GetString(ginRequestIDKey)
			base.Error("Panic recovered",
				zap.String("request_id", id),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stacktrace"),
			)
			body := gin.H{"message": "Server error", "code": "ERR_INTERNAL"}
			if id != "" {
				body["request_id"] = id
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}

// GetGinLogger returns the request logger set by GinMiddleware, or a no-op logger.
func GetGinLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Value(ginLoggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
