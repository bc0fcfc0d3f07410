package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/logistics"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements logistics.DeliveryRepository using GORM
type GormDeliveryRepository struct {
	table ownedTable[models.DeliveryModel, logistics.Delivery, *models.DeliveryModel]
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{table: ownedTable[models.DeliveryModel, logistics.Delivery, *models.DeliveryModel]{
		db:            db,
		sortFields:    deliverySort,
		searchColumns: []string{"tracking_code", "order_number", "customer_name", "destination"},
		filter:        equalsFilter("status", "carrier", "channel"),
	}}
}

// FindByIDForUser finds a delivery by ID within the user's rows
func (r *GormDeliveryRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*logistics.Delivery, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's deliveries matching the filter
func (r *GormDeliveryRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]logistics.Delivery, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's deliveries matching the filter
func (r *GormDeliveryRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a delivery
func (r *GormDeliveryRepository) Save(ctx context.Context, entity *logistics.Delivery) error {
	return r.table.save(ctx, models.DeliveryModelFromDomain(entity))
}

// DeleteForUser deletes a delivery within the user's rows
func (r *GormDeliveryRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormDeliveryRepository implements logistics.DeliveryRepository
var _ logistics.DeliveryRepository = (*GormDeliveryRepository)(nil)
