package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowQuery = 200 * time.Millisecond

// DBTracingConfig controls statement spans.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // keep bound values in span statements
	SlowQueryThresh time.Duration
	DBSystem        string // postgresql or sqlite
}

func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{SlowQueryThresh: defaultSlowQuery, DBSystem: "postgresql"}
}

// DBTracingPlugin puts otelgorm spans on every statement and marks the slow
// ones, so a sluggish checkout shows which table held it up.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = defaultSlowQuery
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type startKey struct{}

// Callback names, exported for tests and for ordering other callbacks
const (
	CallbackStartPrefix = "vyapar:stmt_start:"
	CallbackSlowPrefix  = "vyapar:stmt_slow:"
)

type stmtHook func(name string, fn func(*gorm.DB)) error

// Register installs otelgorm and the slow statement callbacks on db.
// Nothing is installed while tracing is off.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	stmts := map[string][2]stmtHook{
		"create": {
			func(n string, f func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(n, f) },
		},
		"query": {
			func(n string, f func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(n, f) },
		},
		"update": {
			func(n string, f func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(n, f) },
		},
		"delete": {
			func(n string, f func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(n, f) },
		},
		"row": {
			func(n string, f func(*gorm.DB)) error { return cb.Row().Before("gorm:row").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Row().After("gorm:row").Register(n, f) },
		},
		"raw": {
			func(n string, f func(*gorm.DB)) error { return cb.Raw().Before("gorm:raw").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Raw().After("gorm:raw").Register(n, f) },
		},
	}
	for op, hooks := range stmts {
		if err := hooks[0](CallbackStartPrefix+op, stampStart); err != nil {
			return err
		}
		if err := hooks[1](CallbackSlowPrefix+op, p.annotate); err != nil {
			return err
		}
	}

	p.logger.Info("Statement tracing on",
		zap.String("db_system", p.config.DBSystem),
		zap.Duration("slow_threshold", p.config.SlowQueryThresh),
		zap.Bool("bound_values", p.config.LogFullSQL),
	)
	return nil
}

func stampStart(db *gorm.DB) {
	if ctx := db.Statement.Context; ctx != nil {
		db.Statement.Context = context.WithValue(ctx, startKey{}, time.Now())
	}
}

func (p *DBTracingPlugin) annotate(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{attribute.Int64("db.rows_affected", db.Statement.RowsAffected)}
	if table := db.Statement.Table; table != "" {
		attrs = append(attrs, attribute.String("db.sql.table", table))
	}
	if err := db.Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	start, ok := ctx.Value(startKey{}).(time.Time)
	if elapsed := time.Since(start); ok && elapsed > p.config.SlowQueryThresh {
		attrs = append(attrs,
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		p.logger.Warn("Slow statement",
			zap.String("table", db.Statement.Table),
			zap.Duration("elapsed", elapsed),
		)
	}
	span.SetAttributes(attrs...)
}
