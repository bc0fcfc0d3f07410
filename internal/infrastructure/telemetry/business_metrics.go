package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned by NewBusinessMetrics without a meter
var ErrMeterNil = errors.New("business metrics: meter cannot be nil")

// RecordCountProvider reports row counts per table for the periodic gauge
type RecordCountProvider interface {
	CountRecords(ctx context.Context) (map[string]int64, error)
}

// BusinessMetricsConfig configures NewBusinessMetrics
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // default 5 minutes
	RecordCounts    RecordCountProvider
}

// BusinessMetrics tracks agent usage, exports, auth events and stored records.
// A nil *BusinessMetrics is valid and records nothing.
type BusinessMetrics struct {
	logger *zap.Logger

	agentQueries      *Counter
	agentQueryLatency *Histogram
	dashboardsSaved   *Counter
	exportsTotal      *Counter
	exportSize        *Histogram
	authEvents        *Counter
	storedRecords     *Gauge

	recordCounts RecordCountProvider
	interval     time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	startOnce    sync.Once
	wg           sync.WaitGroup
}

// NewBusinessMetrics creates the business instruments on cfg.Meter
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := cfg.CollectInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	bm := &BusinessMetrics{
		logger:       logger,
		recordCounts: cfg.RecordCounts,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}

	var err error
	if bm.agentQueries, err = NewCounter(cfg.Meter, "argos_agent_queries_total", "Agent queries answered, by matched domain", "{query}"); err != nil {
		return nil, err
	}
	if bm.agentQueryLatency, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "argos_agent_query_duration_seconds",
		Description: "Time to answer an agent query",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.dashboardsSaved, err = NewCounter(cfg.Meter, "argos_dashboards_saved_total", "Agent results saved as dashboards, by outcome", "{dashboard}"); err != nil {
		return nil, err
	}
	if bm.exportsTotal, err = NewCounter(cfg.Meter, "argos_exports_total", "Report exports by format, delivery and outcome", "{export}"); err != nil {
		return nil, err
	}
	if bm.exportSize, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "argos_export_size_bytes",
		Description: "Size of generated export files",
		Unit:        "By",
		Boundaries:  SizeBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.authEvents, err = NewCounter(cfg.Meter, "argos_auth_events_total", "Register, login, refresh and logout attempts by outcome", "{event}"); err != nil {
		return nil, err
	}
	if bm.storedRecords, err = NewGauge(cfg.Meter, "argos_stored_records", "Rows per table", "{row}"); err != nil {
		return nil, err
	}
	return bm, nil
}

func outcome(err error) attribute.KeyValue {
	if err != nil {
		return AttrOutcome.String("error")
	}
	return AttrOutcome.String("ok")
}

// RecordAgentQuery counts one answered query per matched domain ("general" when none matched)
func (bm *BusinessMetrics) RecordAgentQuery(ctx context.Context, domains []string, d time.Duration) {
	if bm == nil {
		return
	}
	if len(domains) == 0 {
		domains = []string{"general"}
	}
	for _, domain := range domains {
		bm.agentQueries.Inc(ctx, AttrAgentDomain.String(domain))
	}
	bm.agentQueryLatency.RecordDuration(ctx, d)
}

// RecordDashboardSaved counts a save; created is false when an existing dashboard was returned
func (bm *BusinessMetrics) RecordDashboardSaved(ctx context.Context, created bool) {
	if bm == nil {
		return
	}
	result := "existing"
	if created {
		result = "created"
	}
	bm.dashboardsSaved.Inc(ctx, AttrOutcome.String(result))
}

// RecordExport counts an export attempt and, on success, the file size
func (bm *BusinessMetrics) RecordExport(ctx context.Context, format, delivery string, size int, err error) {
	if bm == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrExportFormat.String(format), AttrExportDelivery.String(delivery)}
	bm.exportsTotal.Inc(ctx, append(attrs, outcome(err))...)
	if err == nil {
		bm.exportSize.Record(ctx, float64(size), attrs...)
	}
}

// RecordAuth counts an authentication event such as "login" or "refresh"
func (bm *BusinessMetrics) RecordAuth(ctx context.Context, event string, err error) {
	if bm == nil {
		return
	}
	bm.authEvents.Inc(ctx, AttrAuthEvent.String(event), outcome(err))
}

// CollectRecordCounts samples the record count provider once
func (bm *BusinessMetrics) CollectRecordCounts(ctx context.Context) {
	if bm == nil || bm.recordCounts == nil {
		return
	}
	counts, err := bm.recordCounts.CountRecords(ctx)
	if err != nil {
		bm.logger.Warn("Failed to collect record counts", zap.Error(err))
		return
	}
	for table, n := range counts {
		bm.storedRecords.Record(ctx, n, AttrDBTable.String(table))
	}
}

// StartPeriodicCollection samples record counts every interval until Stop or ctx ends
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context) {
	if bm == nil || bm.recordCounts == nil {
		return
	}
	bm.startOnce.Do(func() {
		bm.wg.Add(1)
		go func() {
			defer bm.wg.Done()
			ticker := time.NewTicker(bm.interval)
			defer ticker.Stop()

			bm.CollectRecordCounts(ctx)
			for {
				select {
				case <-ticker.C:
					bm.CollectRecordCounts(ctx)
				case <-bm.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

// Stop ends periodic collection. Safe to call more than once.
func (bm *BusinessMetrics) Stop() {
	if bm == nil {
		return
	}
	bm.stopOnce.Do(func() {
		close(bm.stopCh)
		bm.wg.Wait()
	})
}
