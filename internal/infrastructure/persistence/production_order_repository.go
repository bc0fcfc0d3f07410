package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/production"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductionOrderRepository implements production.ProductionOrderRepository using GORM
type GormProductionOrderRepository struct {
	table ownedTable[models.ProductionOrderModel, production.ProductionOrder, *models.ProductionOrderModel]
}

// NewGormProductionOrderRepository creates a new GormProductionOrderRepository
func NewGormProductionOrderRepository(db *gorm.DB) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{table: ownedTable[models.ProductionOrderModel, production.ProductionOrder, *models.ProductionOrderModel]{
		db:            db,
		sortFields:    productionOrderSort,
		searchColumns: []string{"order_number", "product_name"},
		filter:        equalsFilter("status", "priority", "production_line", "channel"),
	}}
}

// FindByIDForUser finds a production order by ID within the user's rows
func (r *GormProductionOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*production.ProductionOrder, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's production orders matching the filter
func (r *GormProductionOrderRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]production.ProductionOrder, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's production orders matching the filter
func (r *GormProductionOrderRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a production order
func (r *GormProductionOrderRepository) Save(ctx context.Context, entity *production.ProductionOrder) error {
	return r.table.save(ctx, models.ProductionOrderModelFromDomain(entity))
}

// DeleteForUser deletes a production order within the user's rows
func (r *GormProductionOrderRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormProductionOrderRepository implements production.ProductionOrderRepository
var _ production.ProductionOrderRepository = (*GormProductionOrderRepository)(nil)
