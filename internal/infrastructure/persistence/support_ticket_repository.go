package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/support"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupportTicketRepository implements support.TicketRepository using GORM
type GormSupportTicketRepository struct {
	table ownedTable[models.SupportTicketModel, support.Ticket, *models.SupportTicketModel]
}

// NewGormSupportTicketRepository creates a new GormSupportTicketRepository
func NewGormSupportTicketRepository(db *gorm.DB) *GormSupportTicketRepository {
	return &GormSupportTicketRepository{table: ownedTable[models.SupportTicketModel, support.Ticket, *models.SupportTicketModel]{
		db:            db,
		sortFields:    supportTicketSort,
		searchColumns: []string{"ticket_number", "customer_name", "subject"},
		filter:        equalsFilter("status", "priority", "category", "channel"),
	}}
}

// FindByIDForUser finds a support ticket by ID within the user's rows
func (r *GormSupportTicketRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*support.Ticket, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's support tickets matching the filter
func (r *GormSupportTicketRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]support.Ticket, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's support tickets matching the filter
func (r *GormSupportTicketRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a support ticket
func (r *GormSupportTicketRepository) Save(ctx context.Context, entity *support.Ticket) error {
	return r.table.save(ctx, models.SupportTicketModelFromDomain(entity))
}

// DeleteForUser deletes a support ticket within the user's rows
func (r *GormSupportTicketRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormSupportTicketRepository implements support.TicketRepository
var _ support.TicketRepository = (*GormSupportTicketRepository)(nil)
