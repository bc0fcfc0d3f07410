// Package integration models the status panel of the external systems
// (ERP, WMS, MES, CRM, marketplace hub and BI) that feed the dashboards.
package integration

import (
	"fmt"
	"math"
	"time"
)

// SystemState is the connectivity state of an external system
type SystemState string

const (
	StateOnline  SystemState = "online"
	StateWarning SystemState = "warning"
	StateOffline SystemState = "offline"
	StateSyncing SystemState = "syncing"
)

// SystemStatus describes one connected system
type SystemStatus struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Status       SystemState `json:"status"`
	LatencyMs    int         `json:"latency_ms"`
	Uptime       float64     `json:"uptime"`
	LastSync     time.Time   `json:"last_sync"`
	LastSyncAgo  string      `json:"last_sync_ago"`
	TotalRecords int         `json:"total_records"`
	SyncErrors   int         `json:"sync_errors"`
	APIVersion   string      `json:"api_version"`
	Endpoint     string      `json:"endpoint"`
}

// SyncEvent is one data synchronization run between two systems
type SyncEvent struct {
	ID               string     `json:"id"`
	SystemFrom       string     `json:"system_from"`
	SystemTo         string     `json:"system_to"`
	Type             string     `json:"type"`
	Status           string     `json:"status"` // success, error, pending or retrying
	RecordsProcessed int        `json:"records_processed"`
	RecordsFailed    int        `json:"records_failed"`
	StartedAt        time.Time  `json:"started_at"`
	StartedAgo       string     `json:"started_ago"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	DurationSeconds  *int       `json:"duration_seconds,omitempty"`
	ErrorMessage     string     `json:"error_message,omitempty"`
}

// WebhookLog is an inbound webhook call
type WebhookLog struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	Event          string    `json:"event"`
	Payload        string    `json:"payload"`
	Status         string    `json:"status"` // received, processed or failed
	Timestamp      time.Time `json:"timestamp"`
	ReceivedAgo    string    `json:"received_ago"`
	ResponseTimeMs int       `json:"response_time_ms"`
}

// DataMapping maps a field of one system onto a field of another
type DataMapping struct {
	ID             string `json:"id"`
	SourceSystem   string `json:"source_system"`
	SourceField    string `json:"source_field"`
	TargetSystem   string `json:"target_system"`
	TargetField    string `json:"target_field"`
	Transformation string `json:"transformation"`
	Active         bool   `json:"active"`
}

// SyncSchedule is a configured synchronization flow
type SyncSchedule struct {
	ID       string `json:"id"`
	Flow     string `json:"flow"`
	Interval string `json:"interval"`
	NextRun  string `json:"next_run"`
	Enabled  bool   `json:"enabled"`
}

// DailyStats aggregates the synchronization activity of the current day
type DailyStats struct {
	TotalSyncs   int     `json:"total_syncs"`
	SuccessRate  float64 `json:"success_rate"`
	TotalRecords int     `json:"total_records"`
	AvgLatencyMs int     `json:"avg_latency_ms"`
	Errors       int     `json:"errors"`
	Retries      int     `json:"retries"`
	PeakHour     string  `json:"peak_hour"`
	PeakVolume   int     `json:"peak_volume"`
}

// HealthStatus classifies the overall health score
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "healthy"
	HealthDegraded HealthStatus = "degraded"
	HealthCritical HealthStatus = "critical"
)

// Health is the overall health of the integration layer
type Health struct {
	Score  int          `json:"score"`
	Status HealthStatus `json:"status"`
}

// Source provides the integration panel data as of now
type Source interface {
	Systems(now time.Time) []SystemStatus
	Events(now time.Time) []SyncEvent
	Webhooks(now time.Time) []WebhookLog
	Mappings() []DataMapping
	Schedules(now time.Time) []SyncSchedule
	Stats() DailyStats
}

// OverallHealth scores the share of online systems. No systems means critical.
func OverallHealth(systems []SystemStatus) Health {
	if len(systems) == 0 {
		return Health{Score: 0, Status: HealthCritical}
	}
	online := 0
	for _, s := range systems {
		if s.Status == StateOnline {
			online++
		}
	}
	score := int(math.Round(float64(online) / float64(len(systems)) * 100))
	switch {
	case score >= 90:
		return Health{Score: score, Status: HealthHealthy}
	case score >= 70:
		return Health{Score: score, Status: HealthDegraded}
	default:
		return Health{Score: score, Status: HealthCritical}
	}
}

// FormatRelativeTime renders how long before now t happened, in pt-BR.
// Times in the future render as "há 0s".
func FormatRelativeTime(t, now time.Time) string {
	seconds := int(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("há %ds", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("há %d min", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("há %dh", hours)
	}
	return fmt.Sprintf("há %dd", hours/24)
}
