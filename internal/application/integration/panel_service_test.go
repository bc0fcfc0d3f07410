package integration

import (
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/integration"
	"github.com/argos/backend/internal/infrastructure/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptySource struct{ *catalog.StaticIntegrations }

func (emptySource) Systems(time.Time) []integration.SystemStatus { return nil }

func TestPanelService_Status(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("static panel is degraded", func(t *testing.T) {
		svc := NewPanelService(catalog.NewStaticIntegrations())
		svc.now = func() time.Time { return now }

		resp := svc.Status()

		require.Len(t, resp.Systems, 6)
		assert.Equal(t, integration.Health{Score: 83, Status: integration.HealthDegraded}, resp.Health)
		assert.Equal(t, "erp", resp.Systems[0].ID)
		assert.Equal(t, "há 2 min", resp.Systems[0].LastSyncAgo)
		assert.True(t, resp.Systems[0].LastSync.Before(now))
	})

	t.Run("no systems is critical", func(t *testing.T) {
		svc := NewPanelService(emptySource{catalog.NewStaticIntegrations()})

		resp := svc.Status()

		assert.Empty(t, resp.Systems)
		assert.Equal(t, integration.Health{Score: 0, Status: integration.HealthCritical}, resp.Health)
	})
}

func TestPanelService_Feeds(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	svc := NewPanelService(catalog.NewStaticIntegrations())
	svc.now = func() time.Time { return now }

	events := svc.Events()
	require.NotEmpty(t, events)
	for _, e := range events {
		assert.False(t, e.StartedAt.After(now), e.ID)
	}

	assert.NotEmpty(t, svc.Webhooks())
	assert.Len(t, svc.Mappings(), 7)
	assert.Len(t, svc.Schedules(), 7)
	assert.Equal(t, 1847, svc.Stats().TotalSyncs)
}
