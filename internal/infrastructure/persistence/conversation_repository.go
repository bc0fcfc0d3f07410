package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConversationRepository implements agent.ConversationRepository using GORM
type GormConversationRepository struct {
	table ownedTable[models.ConversationModel, agent.Conversation, *models.ConversationModel]
}

// NewGormConversationRepository creates a new GormConversationRepository
func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{table: ownedTable[models.ConversationModel, agent.Conversation, *models.ConversationModel]{
		db:            db,
		sortFields:    conversationSort,
		searchColumns: []string{"title"},
		filter:        nil,
	}}
}

// FindByIDForUser finds a conversation by ID within the user's rows
func (r *GormConversationRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*agent.Conversation, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's conversations matching the filter
func (r *GormConversationRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]agent.Conversation, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's conversations matching the filter
func (r *GormConversationRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a conversation
func (r *GormConversationRepository) Save(ctx context.Context, entity *agent.Conversation) error {
	return r.table.save(ctx, models.ConversationModelFromDomain(entity))
}

// DeleteForUser deletes a conversation within the user's rows
func (r *GormConversationRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormConversationRepository implements agent.ConversationRepository
var _ agent.ConversationRepository = (*GormConversationRepository)(nil)
