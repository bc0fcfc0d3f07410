package persistence

import (
	"context"

	"github.com/argos/backend/internal/domain/forecast"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormForecastRepository implements forecast.Repository using GORM
type GormForecastRepository struct {
	table ownedTable[models.ForecastModel, forecast.Forecast, *models.ForecastModel]
}

// NewGormForecastRepository creates a new GormForecastRepository
func NewGormForecastRepository(db *gorm.DB) *GormForecastRepository {
	return &GormForecastRepository{table: ownedTable[models.ForecastModel, forecast.Forecast, *models.ForecastModel]{
		db:            db,
		sortFields:    forecastSort,
		searchColumns: []string{"period", "channel", "product_category"},
		filter:        equalsFilter("period", "channel", "product_category"),
	}}
}

// FindByIDForUser finds a forecast by ID within the user's rows
func (r *GormForecastRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*forecast.Forecast, error) {
	return r.table.findByID(ctx, userID, id)
}

// FindAllForUser finds the user's forecasts matching the filter
func (r *GormForecastRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]forecast.Forecast, error) {
	return r.table.findAll(ctx, userID, filter)
}

// CountForUser counts the user's forecasts matching the filter
func (r *GormForecastRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.table.count(ctx, userID, filter)
}

// Save creates or updates a forecast
func (r *GormForecastRepository) Save(ctx context.Context, entity *forecast.Forecast) error {
	return r.table.save(ctx, models.ForecastModelFromDomain(entity))
}

// DeleteForUser deletes a forecast within the user's rows
func (r *GormForecastRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	return r.table.delete(ctx, userID, id)
}

// Ensure GormForecastRepository implements forecast.Repository
var _ forecast.Repository = (*GormForecastRepository)(nil)
