package persistence

import (
	"context"
	"errors"

	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSavedDashboardRepository implements dashboard.SavedDashboardRepository using GORM
type GormSavedDashboardRepository struct {
	table ownedTable[models.SavedDashboardModel, dashboard.SavedDashboard, *models.SavedDashboardModel]
}

// NewGormSavedDashboardRepository creates a new GormSavedDashboardRepository
func NewGormSavedDashboardRepository(db *gorm.DB) *GormSavedDashboardRepository {
	return &GormSavedDashboardRepository{table: ownedTable[models.SavedDashboardModel, dashboard.SavedDashboard, *models.SavedDashboardModel]{
		db:            db,
		sortFields:    savedDashboardSort,
		searchColumns: []string{"title", "description", "query"},
		filter:        equalsFilter("is_shared"),
	}}
}

// FindByIDForUser finds a saved dashboard by ID within the user's rows
func (r *GormSavedDashboardRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*dashboard.SavedDashboard, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's saved dashboards matching the filter
func (r *GormSavedDashboardRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]dashboard.SavedDashboard, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's saved dashboards matching the filter
func (r *GormSavedDashboardRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// FindByQueryForUser finds the user's saved dashboard stored for query
func (r *GormSavedDashboardRepository) FindByQueryForUser(ctx context.Context, userID uuid.UUID, query string) (*dashboard.SavedDashboard, error) {
	var model models.SavedDashboardModel
	if err := r.table.db.WithContext(ctx).
		Where("user_id = ? AND query = ?", userID, query).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a saved dashboard
func (r *GormSavedDashboardRepository) Save(ctx context.Context, entity *dashboard.SavedDashboard) error {
	return r.table.save(ctx, models.SavedDashboardModelFromDomain(entity))
}

// DeleteForUser deletes a saved dashboard within the user's rows
func (r *GormSavedDashboardRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormSavedDashboardRepository implements dashboard.SavedDashboardRepository
var _ dashboard.SavedDashboardRepository = (*GormSavedDashboardRepository)(nil)
