package integration

import (
	"time"

	"github.com/argos/backend/internal/domain/integration"
)

// StatusResponse lists the connected systems and their overall health
type StatusResponse struct {
	Systems []integration.SystemStatus `json:"systems"`
	Health  integration.Health         `json:"health"`
}

// PanelService serves the integration health panel
type PanelService struct {
	source integration.Source
	now    func() time.Time
}

// NewPanelService creates a new PanelService
func NewPanelService(source integration.Source) *PanelService {
	return &PanelService{
		source: source,
		now:    time.Now,
	}
}

// Status returns every system with the overall health score
func (s *PanelService) Status() StatusResponse {
	systems := s.source.Systems(s.now())
	return StatusResponse{
		Systems: systems,
		Health:  integration.OverallHealth(systems),
	}
}

// Events returns the recent sync events, newest first
func (s *PanelService) Events() []integration.SyncEvent {
	return s.source.Events(s.now())
}

// Webhooks returns the recent inbound webhook calls
func (s *PanelService) Webhooks() []integration.WebhookLog {
	return s.source.Webhooks(s.now())
}

// Mappings returns the configured field mappings
func (s *PanelService) Mappings() []integration.DataMapping {
	return s.source.Mappings()
}

// Schedules returns the sync schedules
func (s *PanelService) Schedules() []integration.SyncSchedule {
	return s.source.Schedules(s.now())
}

// Stats returns today's sync statistics
func (s *PanelService) Stats() integration.DailyStats {
	return s.source.Stats()
}
