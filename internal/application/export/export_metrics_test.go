package export

import (
	"context"
	"testing"

	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/argos/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestService_WithMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: mp.Meter("test")})
	require.NoError(t, err)
	svc := newTestService(new(testutil.MockUserRepository), WithMetrics(metrics))

	_, err = svc.Export(ctx, testutil.TestUserID(), ExportRequest{Sections: []string{"revenue"}})
	require.NoError(t, err)
	_, err = svc.Export(ctx, testutil.TestUserID(), ExportRequest{Sections: []string{"revenue"}, Delivery: DeliveryStorage})
	require.Error(t, err)
	_, err = svc.Export(ctx, testutil.TestUserID(), ExportRequest{Sections: nil})
	require.ErrorIs(t, err, ErrNoSections)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "argos_exports_total" {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				format, _ := dp.Attributes.Value(telemetry.AttrExportFormat)
				delivery, _ := dp.Attributes.Value(telemetry.AttrExportDelivery)
				outcome, _ := dp.Attributes.Value(telemetry.AttrOutcome)
				outcomes[format.AsString()+"/"+delivery.AsString()+"/"+outcome.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{
		"csv/download/ok":   1,
		"csv/storage/error": 1,
	}, outcomes)
}
