package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements procurement.SupplierRepository using GORM
type GormSupplierRepository struct {
	table ownedTable[models.SupplierModel, procurement.Supplier, *models.SupplierModel]
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{table: ownedTable[models.SupplierModel, procurement.Supplier, *models.SupplierModel]{
		db:            db,
		sortFields:    supplierSort,
		searchColumns: []string{"name", "category", "location"},
		filter:        supplierFilter,
	}}
}

// FindByIDForUser finds a supplier by ID within the user's rows
func (r *GormSupplierRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*procurement.Supplier, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's suppliers matching the filter
func (r *GormSupplierRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]procurement.Supplier, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's suppliers matching the filter
func (r *GormSupplierRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, entity *procurement.Supplier) error {
	return r.table.save(ctx, models.SupplierModelFromDomain(entity))
}

// DeleteForUser deletes a supplier within the user's rows
func (r *GormSupplierRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormSupplierRepository implements procurement.SupplierRepository
var _ procurement.SupplierRepository = (*GormSupplierRepository)(nil)

// supplierFilter handles category and status equality plus min_rating as a lower bound
func supplierFilter(query *gorm.DB, key string, value interface{}) *gorm.DB {
	switch key {
	case "min_rating":
		return query.Where("rating >= ?", value)
	default:
		return equalsFilter("category", "status")(query, key, value)
	}
}
