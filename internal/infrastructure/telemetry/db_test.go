package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestDetectOperation(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{"SELECT * FROM suppliers", "SELECT"},
		{"  select count(*) from users", "SELECT"},
		{"INSERT INTO forecasts VALUES (1)", "INSERT"},
		{"update deliveries set status = 'ok'", "UPDATE"},
		{"DELETE FROM support_tickets", "DELETE"},
		{"CREATE TABLE x (id int)", "OTHER"},
		{"", "OTHER"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectOperation(tt.sql), tt.sql)
	}
}

func TestInstrumentTracing_Disabled(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, InstrumentTracing(db, DefaultDBTracingConfig(), zap.NewNop()))

	assert.Nil(t, db.Callback().Create().Get(dbTracePrefix+":after_create"))
}

func TestInstrumentTracing_Enabled(t *testing.T) {
	recorder := setupTracerWithExporter(t)
	db := setupTestDB(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = true
	require.NoError(t, InstrumentTracing(db, cfg, zap.NewNop()))
	assert.NotNil(t, db.Callback().Query().Get(dbTracePrefix+":after_query"))

	ctx, parent := StartSpan(context.Background(), "request")
	require.NoError(t, db.WithContext(ctx).Create(&testRow{Name: "a"}).Error)
	parent.End()

	assert.GreaterOrEqual(t, len(recorder.Ended()), 2)
}

func recordingSpanContext(t *testing.T) (context.Context, func() sdktrace.ReadOnlySpan) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "query")
	return ctx, func() sdktrace.ReadOnlySpan {
		span.End()
		require.Len(t, recorder.Ended(), 1)
		return recorder.Ended()[0]
	}
}

func TestDBTracer_Annotate(t *testing.T) {
	db := setupTestDB(t)
	ctx, finish := recordingSpanContext(t)

	tx := db.WithContext(ctx)
	tx.Statement.Table = "suppliers"
	tx.Statement.RowsAffected = 3

	(&dbTracer{slow: time.Hour}).annotate(tx, "UPDATE")
	span := finish()

	attrs := attrMap(span.Attributes())
	assert.Equal(t, "UPDATE", attrs["db.operation"].AsString())
	assert.Equal(t, int64(3), attrs["db.rows_affected"].AsInt64())
	assert.Equal(t, "suppliers", attrs["db.sql.table"].AsString())
	assert.NotContains(t, attrs, attribute.Key("db.slow_query"))
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestDBTracer_AnnotateError(t *testing.T) {
	db := setupTestDB(t)

	t.Run("query error marks the span", func(t *testing.T) {
		ctx, finish := recordingSpanContext(t)
		tx := db.WithContext(ctx)
		tx.Error = errors.New("constraint failed")

		(&dbTracer{slow: time.Hour}).annotate(tx, "INSERT")
		span := finish()

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "constraint failed", span.Status().Description)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		ctx, finish := recordingSpanContext(t)
		tx := db.WithContext(ctx)
		tx.Error = gorm.ErrRecordNotFound

		(&dbTracer{slow: time.Hour}).annotate(tx, "SELECT")
		span := finish()

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Empty(t, span.Events())
	})
}

func TestDBTracer_AnnotateSlowQuery(t *testing.T) {
	db := setupTestDB(t)
	ctx, finish := recordingSpanContext(t)

	started := time.Now().Add(-time.Second)
	tx := db.WithContext(context.WithValue(ctx, queryStartKey(dbTracePrefix), started))

	(&dbTracer{slow: 10 * time.Millisecond}).annotate(tx, "SELECT")
	span := finish()

	attrs := attrMap(span.Attributes())
	assert.True(t, attrs["db.slow_query"].AsBool())
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "slow_query", span.Events()[0].Name)
}

func TestDBTracer_AnnotateWithoutSpan(t *testing.T) {
	db := setupTestDB(t)
	assert.NotPanics(t, func() {
		(&dbTracer{slow: time.Hour}).annotate(db.WithContext(context.Background()), "SELECT")
	})
}

func TestDBMetrics_Instrument(t *testing.T) {
	mp, reader := setupTestMeter(t)
	db := setupTestDB(t)

	m, err := NewDBMetrics(mp.Meter("test"), DBMetricsConfig{}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Instrument(db))

	require.NoError(t, db.Create(&testRow{Name: "first"}).Error)
	require.NoError(t, db.Create(&testRow{Name: "second"}).Error)

	var rows []testRow
	require.NoError(t, db.Find(&rows).Error)
	var missing testRow
	require.ErrorIs(t, db.First(&missing, 999).Error, gorm.ErrRecordNotFound)

	total := findMetric(collect(t, reader), "db_query_total")
	assert.Equal(t, int64(2), sumFor(t, total, AttrDBOperation.String("INSERT"), AttrOutcome.String("ok")))
	assert.Equal(t, int64(2), sumFor(t, total, AttrDBOperation.String("SELECT"), AttrOutcome.String("ok")))
	assert.Zero(t, sumFor(t, total, AttrOutcome.String("error")))
}

func TestDBMetrics_RecordQuery(t *testing.T) {
	mp, reader := setupTestMeter(t)
	ctx := context.Background()

	m, err := NewDBMetrics(mp.Meter("test"), DBMetricsConfig{SlowQueryThreshold: 50 * time.Millisecond}, nil)
	require.NoError(t, err)

	m.RecordQuery(ctx, "", "", time.Millisecond, nil)
	m.RecordQuery(ctx, "UPDATE", "deliveries", time.Second, errors.New("deadlock"))
	m.RecordQuery(ctx, "SELECT", "", time.Second, nil)

	rm := collect(t, reader)
	total := findMetric(rm, "db_query_total")
	assert.Equal(t, int64(1), sumFor(t, total, AttrDBOperation.String("OTHER")))
	assert.Equal(t, int64(1), sumFor(t, total, AttrDBOperation.String("UPDATE"), AttrOutcome.String("error")))

	slow := findMetric(rm, "db_slow_query_total")
	assert.Equal(t, int64(1), sumFor(t, slow, AttrDBTable.String("deliveries")))
	assert.Equal(t, int64(1), sumFor(t, slow, AttrDBTable.String("unknown")))
}

func TestDBMetrics_PoolStats(t *testing.T) {
	mp, reader := setupTestMeter(t)
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	m, err := NewDBMetrics(mp.Meter("test"), DBMetricsConfig{PoolStatsInterval: time.Hour}, zap.NewNop())
	require.NoError(t, err)

	m.StartPoolStatsCollection(context.Background(), sqlDB)
	require.Eventually(t, func() bool {
		return findMetric(collect(t, reader), "db_pool_connections_max") != nil
	}, time.Second, 10*time.Millisecond)
	m.Stop()
	m.Stop()

	rm := collect(t, reader)
	maxConns, ok := gaugeFor(t, findMetric(rm, "db_pool_connections_max"))
	require.True(t, ok)
	assert.Equal(t, int64(1), maxConns)

	_, ok = gaugeFor(t, findMetric(rm, "db_pool_connections"), AttrDBState.String("open"))
	assert.True(t, ok)
}
