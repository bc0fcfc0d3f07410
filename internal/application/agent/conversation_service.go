package agent

import (
	"context"
	"errors"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrDashboardNotOwned is returned when a conversation links a dashboard the caller cannot see
var ErrDashboardNotOwned = shared.NewDomainError("INVALID_DASHBOARD_ID", "Dashboard not found or not authorized")

// ConversationService handles stored agent conversations
type ConversationService struct {
	conversationRepo agent.ConversationRepository
	dashboardRepo    dashboard.SavedDashboardRepository
}

// NewConversationService creates a new ConversationService
func NewConversationService(
	conversationRepo agent.ConversationRepository,
	dashboardRepo dashboard.SavedDashboardRepository,
) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		dashboardRepo:    dashboardRepo,
	}
}

// Create stores a conversation
func (s *ConversationService) Create(ctx context.Context, userID uuid.UUID, req CreateConversationRequest) (*ConversationResponse, error) {
	conversation, err := agent.NewConversation(userID, agent.ConversationFields{
		Title:       req.Title,
		Messages:    string(req.Messages),
		DashboardID: req.DashboardID,
	})
	if err != nil {
		return nil, err
	}
	if conversation.DashboardID != nil {
		if err := s.ensureDashboardOwned(ctx, userID, *conversation.DashboardID); err != nil {
			return nil, err
		}
	}
	if err := s.conversationRepo.Save(ctx, conversation); err != nil {
		return nil, err
	}

	response := ToConversationResponse(conversation)
	return &response, nil
}

// GetByID retrieves a conversation by ID
func (s *ConversationService) GetByID(ctx context.Context, userID, conversationID uuid.UUID) (*ConversationResponse, error) {
	conversation, err := s.conversationRepo.FindByIDForUser(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	response := ToConversationResponse(conversation)
	return &response, nil
}

// List retrieves the caller's conversations
func (s *ConversationService) List(ctx context.Context, userID uuid.UUID, filter ConversationListFilter) ([]ConversationResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)

	conversations, err := s.conversationRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.conversationRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToConversationResponses(conversations), total, nil
}

// Update applies a partial update. Linking a different dashboard re-checks its ownership.
func (s *ConversationService) Update(ctx context.Context, userID, conversationID uuid.UUID, req UpdateConversationRequest) (*ConversationResponse, error) {
	conversation, err := s.conversationRepo.FindByIDForUser(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	if id := req.DashboardID; id != nil && *id != uuid.Nil {
		if conversation.DashboardID == nil || *conversation.DashboardID != *id {
			if err := s.ensureDashboardOwned(ctx, userID, *id); err != nil {
				return nil, err
			}
		}
	}

	if err := conversation.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.conversationRepo.Save(ctx, conversation); err != nil {
		return nil, err
	}

	response := ToConversationResponse(conversation)
	return &response, nil
}

// Delete deletes a conversation. The linked dashboard is left alone.
func (s *ConversationService) Delete(ctx context.Context, userID, conversationID uuid.UUID) error {
	return s.conversationRepo.DeleteForUser(ctx, userID, conversationID)
}

func (s *ConversationService) ensureDashboardOwned(ctx context.Context, userID, dashboardID uuid.UUID) error {
	_, err := s.dashboardRepo.FindByIDForUser(ctx, userID, dashboardID)
	if errors.Is(err, shared.ErrNotFound) {
		return ErrDashboardNotOwned
	}
	return err
}
