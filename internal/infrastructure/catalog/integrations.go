package catalog

import (
	"time"

	"github.com/argos/backend/internal/domain/integration"
)

// continuous marks flows driven by webhooks or pushes instead of a timer
const continuous = "Contínuo"

type systemSeed struct {
	status  integration.SystemStatus
	syncAgo time.Duration
}

type eventSeed struct {
	event        integration.SyncEvent
	startedAgo   time.Duration
	completedAgo time.Duration // zero while still running
	duration     int
}

type webhookSeed struct {
	log integration.WebhookLog
	ago time.Duration
}

type scheduleSeed struct {
	schedule integration.SyncSchedule
	nextIn   time.Duration // zero for continuous flows
}

// StaticIntegrations is an integration.Source whose timestamps are
// anchored to the time of each call
type StaticIntegrations struct {
	systems   []systemSeed
	events    []eventSeed
	webhooks  []webhookSeed
	mappings  []integration.DataMapping
	schedules []scheduleSeed
	stats     integration.DailyStats
}

var _ integration.Source = (*StaticIntegrations)(nil)

func minutes(m float64) time.Duration { return time.Duration(m * float64(time.Minute)) }

// NewStaticIntegrations returns the built-in integration panel
func NewStaticIntegrations() *StaticIntegrations {
	return &StaticIntegrations{
		systems: []systemSeed{
			{integration.SystemStatus{ID: "erp", Name: "ERP Principal", Type: "TOTVS Protheus", Status: integration.StateOnline, LatencyMs: 45, Uptime: 99.8, TotalRecords: 1247832, SyncErrors: 3, APIVersion: "v3.2.1", Endpoint: "https://erp.argos.com.br/api/v3"}, minutes(2)},
			{integration.SystemStatus{ID: "wms", Name: "WMS Logística", Type: "WMS Cloud", Status: integration.StateOnline, LatencyMs: 120, Uptime: 99.5, TotalRecords: 342156, SyncErrors: 0, APIVersion: "v2.8.0", Endpoint: "https://wms.argos.com.br/api/v2"}, minutes(1)},
			{integration.SystemStatus{ID: "mes", Name: "MES Fábrica", Type: "MES Industrial", Status: integration.StateOnline, LatencyMs: 38, Uptime: 99.9, TotalRecords: 891204, SyncErrors: 1, APIVersion: "v4.1.0", Endpoint: "https://mes.argos.com.br/api/v4"}, 30 * time.Second},
			{integration.SystemStatus{ID: "crm", Name: "CRM / Suporte", Type: "Zendesk", Status: integration.StateWarning, LatencyMs: 890, Uptime: 97.2, TotalRecords: 156789, SyncErrors: 12, APIVersion: "v2", Endpoint: "https://argos.zendesk.com/api/v2"}, minutes(8)},
			{integration.SystemStatus{ID: "hub", Name: "Hub Marketplaces", Type: "Bling / Tiny", Status: integration.StateOnline, LatencyMs: 210, Uptime: 99.1, TotalRecords: 523410, SyncErrors: 5, APIVersion: "v3.0", Endpoint: "https://api.bling.com.br/v3"}, minutes(3)},
			{integration.SystemStatus{ID: "bi", Name: "BI Analytics", Type: "Power BI", Status: integration.StateOnline, LatencyMs: 65, Uptime: 99.7, TotalRecords: 2834567, SyncErrors: 0, APIVersion: "v1.0", Endpoint: "https://api.powerbi.com/v1.0/myorg"}, minutes(5)},
		},
		events: []eventSeed{
			{integration.SyncEvent{ID: "sync-001", SystemFrom: "Hub Marketplaces", SystemTo: "ERP Principal", Type: "Pedidos de Venda", Status: "success", RecordsProcessed: 47}, minutes(5), minutes(4.5), 32},
			{integration.SyncEvent{ID: "sync-002", SystemFrom: "ERP Principal", SystemTo: "MES Fábrica", Type: "Ordens de Produção", Status: "success", RecordsProcessed: 8}, minutes(15), minutes(14.8), 12},
			{integration.SyncEvent{ID: "sync-003", SystemFrom: "MES Fábrica", SystemTo: "ERP Principal", Type: "Apontamentos de Produção", Status: "success", RecordsProcessed: 156, RecordsFailed: 2}, minutes(2), minutes(1.5), 28},
			{integration.SyncEvent{ID: "sync-004", SystemFrom: "ERP Principal", SystemTo: "WMS Logística", Type: "Notas Fiscais", Status: "success", RecordsProcessed: 23}, minutes(8), minutes(7.8), 15},
			{integration.SyncEvent{ID: "sync-005", SystemFrom: "WMS Logística", SystemTo: "Hub Marketplaces", Type: "Rastreamento de Entregas", Status: "success", RecordsProcessed: 34, RecordsFailed: 1}, minutes(30), minutes(29.5), 22},
			{integration.SyncEvent{ID: "sync-006", SystemFrom: "Hub Marketplaces", SystemTo: "CRM / Suporte", Type: "Reclamações de Clientes", Status: "error", RecordsProcessed: 3, RecordsFailed: 2, ErrorMessage: "Timeout na API do Zendesk - latência acima do limite (890ms)"}, minutes(10), minutes(9), 45},
			{integration.SyncEvent{ID: "sync-007", SystemFrom: "ERP Principal", SystemTo: "BI Analytics", Type: "Dados Consolidados", Status: "success", RecordsProcessed: 12450}, minutes(60), minutes(55), 312},
			{integration.SyncEvent{ID: "sync-008", SystemFrom: "Hub Marketplaces", SystemTo: "CRM / Suporte", Type: "Reclamações de Clientes", Status: "retrying", RecordsFailed: 2, ErrorMessage: "Retry automático #2 - aguardando resposta do CRM"}, minutes(1), 0, 0},
		},
		webhooks: []webhookSeed{
			{integration.WebhookLog{ID: "wh-001", Source: "Mercado Livre", Event: "order.created", Payload: `{"order_id":"MLB-2847291","total":1599.90}`, Status: "processed", ResponseTimeMs: 120}, minutes(3)},
			{integration.WebhookLog{ID: "wh-002", Source: "Amazon", Event: "order.shipped", Payload: `{"order_id":"AMZ-9812345","tracking":"JD987654321BR"}`, Status: "processed", ResponseTimeMs: 85}, minutes(5)},
			{integration.WebhookLog{ID: "wh-003", Source: "Shopee", Event: "order.cancelled", Payload: `{"order_id":"SHP-456789","reason":"buyer_request"}`, Status: "processed", ResponseTimeMs: 95}, minutes(12)},
			{integration.WebhookLog{ID: "wh-004", Source: "Magazine Luiza", Event: "return.requested", Payload: `{"order_id":"MLZ-123456","reason":"defect"}`, Status: "processed", ResponseTimeMs: 110}, minutes(18)},
			{integration.WebhookLog{ID: "wh-005", Source: "Zendesk", Event: "ticket.updated", Payload: `{"ticket_id":"TK-3204","status":"escalated"}`, Status: "failed", ResponseTimeMs: 3200}, minutes(20)},
			{integration.WebhookLog{ID: "wh-006", Source: "TOTVS", Event: "nf.emitted", Payload: `{"nf_number":"NF-89012","total":2499.90}`, Status: "processed", ResponseTimeMs: 45}, minutes(25)},
			{integration.WebhookLog{ID: "wh-007", Source: "Mercado Livre", Event: "question.created", Payload: `{"item_id":"MLB-1234","question":"Qual o prazo?"}`, Status: "processed", ResponseTimeMs: 78}, minutes(30)},
			{integration.WebhookLog{ID: "wh-008", Source: "WMS Cloud", Event: "shipment.collected", Payload: `{"tracking":"JD123456789BR","carrier":"Jadlog"}`, Status: "processed", ResponseTimeMs: 62}, minutes(35)},
		},
		mappings: []integration.DataMapping{
			{ID: "dm-001", SourceSystem: "Hub Marketplaces", SourceField: "order.buyer_name", TargetSystem: "ERP Principal", TargetField: "cliente.razao_social", Transformation: "uppercase + trim", Active: true},
			{ID: "dm-002", SourceSystem: "Hub Marketplaces", SourceField: "order.total", TargetSystem: "ERP Principal", TargetField: "pedido.valor_total", Transformation: "BRL currency parse", Active: true},
			{ID: "dm-003", SourceSystem: "ERP Principal", SourceField: "op.numero", TargetSystem: "MES Fábrica", TargetField: "production_order.code", Transformation: "prefix OP-", Active: true},
			{ID: "dm-004", SourceSystem: "MES Fábrica", SourceField: "apontamento.qtd_produzida", TargetSystem: "ERP Principal", TargetField: "op.qtd_realizada", Transformation: "sum aggregate", Active: true},
			{ID: "dm-005", SourceSystem: "ERP Principal", SourceField: "nf.chave_acesso", TargetSystem: "WMS Logística", TargetField: "shipment.invoice_key", Transformation: "direct copy", Active: true},
			{ID: "dm-006", SourceSystem: "WMS Logística", SourceField: "tracking.status", TargetSystem: "Hub Marketplaces", TargetField: "order.shipping_status", Transformation: "status mapping table", Active: true},
			{ID: "dm-007", SourceSystem: "Hub Marketplaces", SourceField: "complaint.text", TargetSystem: "CRM / Suporte", TargetField: "ticket.description", Transformation: "HTML sanitize + translate", Active: false},
		},
		schedules: []scheduleSeed{
			{integration.SyncSchedule{ID: "sch-001", Flow: "Pedidos → ERP", Interval: "Tempo real (webhook)", Enabled: true}, 0},
			{integration.SyncSchedule{ID: "sch-002", Flow: "ERP → MES", Interval: "A cada 15 min", Enabled: true}, minutes(8)},
			{integration.SyncSchedule{ID: "sch-003", Flow: "MES → ERP", Interval: "Tempo real (push)", Enabled: true}, 0},
			{integration.SyncSchedule{ID: "sch-004", Flow: "ERP → WMS", Interval: "A cada 5 min", Enabled: true}, minutes(2)},
			{integration.SyncSchedule{ID: "sch-005", Flow: "WMS → Hub", Interval: "A cada 30 min", Enabled: true}, minutes(18)},
			{integration.SyncSchedule{ID: "sch-006", Flow: "Hub → CRM", Interval: "Tempo real (webhook)", Enabled: true}, 0},
			{integration.SyncSchedule{ID: "sch-007", Flow: "Todos → BI", Interval: "A cada 1 hora", Enabled: true}, minutes(42)},
		},
		stats: integration.DailyStats{
			TotalSyncs:   1847,
			SuccessRate:  98.7,
			TotalRecords: 45230,
			AvgLatencyMs: 148,
			Errors:       24,
			Retries:      8,
			PeakHour:     "10:00-11:00",
			PeakVolume:   312,
		},
	}
}

// Systems returns the connected systems with sync times relative to now
func (s *StaticIntegrations) Systems(now time.Time) []integration.SystemStatus {
	out := make([]integration.SystemStatus, len(s.systems))
	for i, seed := range s.systems {
		st := seed.status
		st.LastSync = now.Add(-seed.syncAgo)
		st.LastSyncAgo = integration.FormatRelativeTime(st.LastSync, now)
		out[i] = st
	}
	return out
}

// Events returns recent sync runs
func (s *StaticIntegrations) Events(now time.Time) []integration.SyncEvent {
	out := make([]integration.SyncEvent, len(s.events))
	for i, seed := range s.events {
		ev := seed.event
		ev.StartedAt = now.Add(-seed.startedAgo)
		ev.StartedAgo = integration.FormatRelativeTime(ev.StartedAt, now)
		if seed.completedAgo > 0 {
			completed := now.Add(-seed.completedAgo)
			duration := seed.duration
			ev.CompletedAt = &completed
			ev.DurationSeconds = &duration
		}
		out[i] = ev
	}
	return out
}

// Webhooks returns inbound webhook calls, newest first
func (s *StaticIntegrations) Webhooks(now time.Time) []integration.WebhookLog {
	out := make([]integration.WebhookLog, len(s.webhooks))
	for i, seed := range s.webhooks {
		wh := seed.log
		wh.Timestamp = now.Add(-seed.ago)
		wh.ReceivedAgo = integration.FormatRelativeTime(wh.Timestamp, now)
		out[i] = wh
	}
	return out
}

// Mappings returns the configured field mappings
func (s *StaticIntegrations) Mappings() []integration.DataMapping {
	out := make([]integration.DataMapping, len(s.mappings))
	copy(out, s.mappings)
	return out
}

// Schedules returns the sync flows with their next run as a clock time
func (s *StaticIntegrations) Schedules(now time.Time) []integration.SyncSchedule {
	out := make([]integration.SyncSchedule, len(s.schedules))
	for i, seed := range s.schedules {
		sch := seed.schedule
		sch.NextRun = continuous
		if seed.nextIn > 0 {
			sch.NextRun = now.Add(seed.nextIn).Format("15:04:05")
		}
		out[i] = sch
	}
	return out
}

// Stats returns today's sync totals
func (s *StaticIntegrations) Stats() integration.DailyStats {
	return s.stats
}
