package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/analytics"
	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentName is recorded as the author of dashboards the agent saves
const AgentName = "Argos AI"

// ErrEmptyQuery is returned for blank queries
var ErrEmptyQuery = shared.NewDomainError("INVALID_QUERY", "Query cannot be empty")

// Service answers agent queries and persists what the agent produces
type Service struct {
	dataset          analytics.Source
	dashboardRepo    dashboard.SavedDashboardRepository
	conversationRepo agent.ConversationRepository
	logger           *zap.Logger
	metrics          *telemetry.BusinessMetrics
	now              func() time.Time
}

// NewService creates a new agent Service
func NewService(
	dataset analytics.Source,
	dashboardRepo dashboard.SavedDashboardRepository,
	conversationRepo agent.ConversationRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		dataset:          dataset,
		dashboardRepo:    dashboardRepo,
		conversationRepo: conversationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// SetMetrics enables business metrics for answered queries and saved dashboards
func (s *Service) SetMetrics(m *telemetry.BusinessMetrics) {
	s.metrics = m
}

// Query answers a free-text question with a message and a widget bundle
func (s *Service) Query(ctx context.Context, userID uuid.UUID, req QueryRequest) (resp *QueryResponse, err error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "agent", "query",
		telemetry.WithAttribute(telemetry.SpanAttrUserID, userID.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Load the conversation first so a foreign id fails before any work is done
	var conversation *agent.Conversation
	if req.ConversationID != nil {
		telemetry.SetAttributes(span, telemetry.SpanAttrConversationID, req.ConversationID.String())
		conversation, err = s.conversationRepo.FindByIDForUser(ctx, userID, *req.ConversationID)
		if err != nil {
			return nil, err
		}
	}

	askedAt := s.now()
	answer := agent.Generate(s.dataset.Dataset(), query, askedAt)
	domains := domainNames(answer.Domains)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrDomains, domains,
		telemetry.SpanAttrWidgets, len(answer.Dashboard.Widgets),
	)

	if conversation != nil {
		repliedAt := s.now()
		err = conversation.AppendMessages(
			agent.ChatMessage{Role: agent.RoleUser, Content: query, Timestamp: askedAt.UnixMilli()},
			agent.ChatMessage{Role: agent.RoleAgent, Content: answer.Message, Timestamp: repliedAt.UnixMilli()},
		)
		if err != nil {
			return nil, err
		}
		if err = s.conversationRepo.Save(ctx, conversation); err != nil {
			return nil, fmt.Errorf("failed to append to conversation: %w", err)
		}
	}

	s.metrics.RecordAgentQuery(ctx, domains, s.now().Sub(askedAt))
	s.logger.Debug("Agent query answered",
		zap.String("user_id", userID.String()),
		zap.Strings("domains", domains),
		zap.Int("widgets", len(answer.Dashboard.Widgets)),
	)

	return &QueryResponse{
		Message:   answer.Message,
		Dashboard: answer.Dashboard,
		Domains:   answer.Domains,
	}, nil
}

// SaveDashboard generates the dashboard for query and stores it for the caller.
// A dashboard already saved for the same query is reused instead of duplicated.
func (s *Service) SaveDashboard(ctx context.Context, userID uuid.UUID, req SaveDashboardRequest) (*SaveDashboardResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	existing, err := s.dashboardRepo.FindByQueryForUser(ctx, userID, query)
	if err == nil {
		s.metrics.RecordDashboardSaved(ctx, false)
		return &SaveDashboardResponse{ID: existing.ID, Title: existing.Title, Created: false}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	generated := agent.Generate(s.dataset.Dataset(), query, s.now()).Dashboard
	widgets, err := json.Marshal(generated.Widgets)
	if err != nil {
		return nil, fmt.Errorf("failed to encode widgets: %w", err)
	}

	saved, err := dashboard.NewSavedDashboard(userID, dashboard.SavedDashboardFields{
		Title:       generated.Title,
		Description: generated.Description,
		Widgets:     string(widgets),
		Query:       generated.Query,
		CreatedBy:   AgentName,
	})
	if err != nil {
		return nil, err
	}
	if err := s.dashboardRepo.Save(ctx, saved); err != nil {
		return nil, err
	}

	s.metrics.RecordDashboardSaved(ctx, true)
	s.logger.Info("Agent dashboard saved",
		zap.String("user_id", userID.String()),
		zap.String("dashboard_id", saved.ID.String()),
	)
	return &SaveDashboardResponse{ID: saved.ID, Title: saved.Title, Created: true}, nil
}

// Suggestions returns the starter queries
func (s *Service) Suggestions() SuggestionsResponse {
	queries := make([]string, len(agent.SuggestedQueries))
	copy(queries, agent.SuggestedQueries)
	return SuggestionsResponse{Queries: queries}
}

func domainNames(domains []agent.Domain) []string {
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = string(d)
	}
	return names
}
