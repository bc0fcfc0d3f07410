package forecast

import (
	"context"

	"github.com/argos/backend/internal/domain/forecast"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles revenue forecast records
type Service struct {
	repo forecast.Repository
}

// NewService creates a new forecast Service
func NewService(repo forecast.Repository) *Service {
	return &Service{repo: repo}
}

// Create records a forecast
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateForecastRequest) (*ForecastResponse, error) {
	fc, err := forecast.New(userID, req.fields())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, fc); err != nil {
		return nil, err
	}

	response := ToForecastResponse(fc)
	return &response, nil
}

// GetByID retrieves a forecast by ID
func (s *Service) GetByID(ctx context.Context, userID, forecastID uuid.UUID) (*ForecastResponse, error) {
	fc, err := s.repo.FindByIDForUser(ctx, userID, forecastID)
	if err != nil {
		return nil, err
	}

	response := ToForecastResponse(fc)
	return &response, nil
}

// List retrieves the caller's forecasts with filtering and pagination
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]ForecastResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Period != "" {
		domainFilter.Filters["period"] = filter.Period
	}
	if filter.Channel != "" {
		domainFilter.Filters["channel"] = filter.Channel
	}
	if filter.ProductCategory != "" {
		domainFilter.Filters["product_category"] = filter.ProductCategory
	}

	forecasts, err := s.repo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToForecastResponses(forecasts), total, nil
}

// Update applies a partial update; the confidence interval is checked on the merged record
func (s *Service) Update(ctx context.Context, userID, forecastID uuid.UUID, req UpdateForecastRequest) (*ForecastResponse, error) {
	fc, err := s.repo.FindByIDForUser(ctx, userID, forecastID)
	if err != nil {
		return nil, err
	}
	if err := fc.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, fc); err != nil {
		return nil, err
	}

	response := ToForecastResponse(fc)
	return &response, nil
}

// Delete deletes a forecast
func (s *Service) Delete(ctx context.Context, userID, forecastID uuid.UUID) error {
	return s.repo.DeleteForUser(ctx, userID, forecastID)
}
