package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dbTracePrefix = "argos_trace"

// DBTracingConfig configures query spans
type DBTracingConfig struct {
	Enabled            bool
	LogFullSQL         bool // keeps bound values in db.statement; never in production
	SlowQueryThreshold time.Duration
	DBName             string
}

// DefaultDBTracingConfig returns tracing off with a 200ms slow-query threshold
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThreshold: 200 * time.Millisecond,
		DBName:             "argos",
	}
}

type dbTracer struct {
	slow time.Duration
}

// InstrumentTracing registers otelgorm on db plus callbacks that tag each
// query span with its table, rows affected and a slow-query event.
func InstrumentTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.SlowQueryThreshold <= 0 {
		cfg.SlowQueryThreshold = DefaultDBTracingConfig().SlowQueryThreshold
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("register otelgorm: %w", err)
	}

	t := &dbTracer{slow: cfg.SlowQueryThreshold}
	if err := registerAround(db, dbTracePrefix, t.annotate); err != nil {
		return fmt.Errorf("register trace callbacks: %w", err)
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThreshold),
	)
	return nil
}

func (t *dbTracer) annotate(db *gorm.DB, operation string) {
	if db.Statement.Context == nil {
		return
	}
	span := trace.SpanFromContext(db.Statement.Context)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(
		attribute.String("db.operation", operation),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	)
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
	}

	if d, ok := elapsed(db, dbTracePrefix); ok && d > t.slow {
		span.SetAttributes(attribute.Bool("db.slow_query", true))
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("duration_ms", d.Milliseconds()),
			attribute.Int64("threshold_ms", t.slow.Milliseconds()),
		))
	}
}
