package dashboard

import (
	"context"
	"time"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/analytics"
	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SavedDashboardService handles saved dashboard operations
type SavedDashboardService struct {
	dashboardRepo dashboard.SavedDashboardRepository
	dataset       analytics.Source
	now           func() time.Time
}

// NewSavedDashboardService creates a new SavedDashboardService
func NewSavedDashboardService(dashboardRepo dashboard.SavedDashboardRepository, dataset analytics.Source) *SavedDashboardService {
	return &SavedDashboardService{
		dashboardRepo: dashboardRepo,
		dataset:       dataset,
		now:           time.Now,
	}
}

// Create saves a dashboard
func (s *SavedDashboardService) Create(ctx context.Context, userID uuid.UUID, req CreateSavedDashboardRequest) (*SavedDashboardResponse, error) {
	d, err := dashboard.NewSavedDashboard(userID, req.fields())
	if err != nil {
		return nil, err
	}
	if err := s.dashboardRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	response := ToSavedDashboardResponse(d)
	return &response, nil
}

// GetByID retrieves a saved dashboard by ID
func (s *SavedDashboardService) GetByID(ctx context.Context, userID, dashboardID uuid.UUID) (*SavedDashboardResponse, error) {
	d, err := s.dashboardRepo.FindByIDForUser(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}

	response := ToSavedDashboardResponse(d)
	return &response, nil
}

// List retrieves the caller's saved dashboards with pagination
func (s *SavedDashboardService) List(ctx context.Context, userID uuid.UUID, filter SavedDashboardListFilter) ([]SavedDashboardResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.IsShared != nil {
		domainFilter.Filters["is_shared"] = *filter.IsShared
	}

	dashboards, err := s.dashboardRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.dashboardRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSavedDashboardResponses(dashboards), total, nil
}

// Update applies a partial update to a saved dashboard
func (s *SavedDashboardService) Update(ctx context.Context, userID, dashboardID uuid.UUID, req UpdateSavedDashboardRequest) (*SavedDashboardResponse, error) {
	d, err := s.dashboardRepo.FindByIDForUser(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}
	if err := d.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.dashboardRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	response := ToSavedDashboardResponse(d)
	return &response, nil
}

// Delete deletes a saved dashboard
func (s *SavedDashboardService) Delete(ctx context.Context, userID, dashboardID uuid.UUID) error {
	return s.dashboardRepo.DeleteForUser(ctx, userID, dashboardID)
}

// View stamps last_viewed and answers the stored query again, so the widgets reflect current data
func (s *SavedDashboardService) View(ctx context.Context, userID, dashboardID uuid.UUID) (*DashboardViewResponse, error) {
	d, err := s.dashboardRepo.FindByIDForUser(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	d.MarkViewed(now)
	if err := s.dashboardRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	answer := agent.Generate(s.dataset.Dataset(), d.Query, now)
	return &DashboardViewResponse{
		SavedDashboardResponse: ToSavedDashboardResponse(d),
		Message:                answer.Message,
		Dashboard:              answer.Dashboard,
	}, nil
}
