package dashboard

import (
	"encoding/json"
	"time"

	"github.com/argos/backend/internal/domain/agent"
	"github.com/argos/backend/internal/domain/dashboard"
	"github.com/google/uuid"
)

// CreateSavedDashboardRequest represents a request to save a dashboard.
// Widgets is the raw widget list; it is stored exactly as sent.
type CreateSavedDashboardRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Widgets     json.RawMessage `json:"widgets" binding:"required"`
	Query       string          `json:"query" binding:"required,max=1000"`
	CreatedBy   string          `json:"created_by" binding:"max=200"`
	IsShared    bool            `json:"is_shared"`
}

// UpdateSavedDashboardRequest represents a partial dashboard update
type UpdateSavedDashboardRequest struct {
	Title       *string         `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string         `json:"description" binding:"omitempty,max=2000"`
	Widgets     json.RawMessage `json:"widgets"`
	Query       *string         `json:"query" binding:"omitempty,min=1,max=1000"`
	CreatedBy   *string         `json:"created_by" binding:"omitempty,max=200"`
	IsShared    *bool           `json:"is_shared"`
	LastViewed  *time.Time      `json:"last_viewed"`
}

// SavedDashboardListFilter represents filter options for the dashboard list
type SavedDashboardListFilter struct {
	IsShared *bool  `form:"is_shared"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SavedDashboardResponse represents a saved dashboard in API responses
type SavedDashboardResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Widgets     json.RawMessage `json:"widgets"`
	Query       string          `json:"query"`
	CreatedBy   string          `json:"created_by,omitempty"`
	IsShared    bool            `json:"is_shared"`
	LastViewed  *time.Time      `json:"last_viewed,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// DashboardViewResponse is a saved dashboard together with widgets regenerated from its query
type DashboardViewResponse struct {
	SavedDashboardResponse
	Message   string                   `json:"message"`
	Dashboard agent.GeneratedDashboard `json:"dashboard"`
}

// ToSavedDashboardResponse converts a domain SavedDashboard to its response
func ToSavedDashboardResponse(d *dashboard.SavedDashboard) SavedDashboardResponse {
	return SavedDashboardResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Widgets:     json.RawMessage(d.Widgets),
		Query:       d.Query,
		CreatedBy:   d.CreatedBy,
		IsShared:    d.IsShared,
		LastViewed:  d.LastViewed,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Version:     d.Version,
	}
}

// ToSavedDashboardResponses converts a slice of dashboards
func ToSavedDashboardResponses(dashboards []dashboard.SavedDashboard) []SavedDashboardResponse {
	responses := make([]SavedDashboardResponse, len(dashboards))
	for i := range dashboards {
		responses[i] = ToSavedDashboardResponse(&dashboards[i])
	}
	return responses
}

func (r CreateSavedDashboardRequest) fields() dashboard.SavedDashboardFields {
	return dashboard.SavedDashboardFields{
		Title:       r.Title,
		Description: r.Description,
		Widgets:     string(r.Widgets),
		Query:       r.Query,
		CreatedBy:   r.CreatedBy,
		IsShared:    r.IsShared,
	}
}

func (r UpdateSavedDashboardRequest) patch() dashboard.SavedDashboardPatch {
	p := dashboard.SavedDashboardPatch{
		Title:       r.Title,
		Description: r.Description,
		Query:       r.Query,
		CreatedBy:   r.CreatedBy,
		IsShared:    r.IsShared,
		LastViewed:  r.LastViewed,
	}
	if len(r.Widgets) > 0 && string(r.Widgets) != "null" {
		widgets := string(r.Widgets)
		p.Widgets = &widgets
	}
	return p
}
