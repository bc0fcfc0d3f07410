package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements procurement.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	table ownedTable[models.PurchaseOrderModel, procurement.PurchaseOrder, *models.PurchaseOrderModel]
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{table: ownedTable[models.PurchaseOrderModel, procurement.PurchaseOrder, *models.PurchaseOrderModel]{
		db:            db,
		sortFields:    purchaseOrderSort,
		searchColumns: []string{"order_number", "notes"},
		filter:        equalsFilter("status", "supplier_id"),
	}}
}

// FindByIDForUser finds a purchase order by ID within the user's rows
func (r *GormPurchaseOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's purchase orders matching the filter
func (r *GormPurchaseOrderRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's purchase orders matching the filter
func (r *GormPurchaseOrderRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a purchase order
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, entity *procurement.PurchaseOrder) error {
	return r.table.save(ctx, models.PurchaseOrderModelFromDomain(entity))
}

// DeleteForUser deletes a purchase order within the user's rows
func (r *GormPurchaseOrderRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormPurchaseOrderRepository implements procurement.PurchaseOrderRepository
var _ procurement.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
