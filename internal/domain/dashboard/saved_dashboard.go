package dashboard

import (
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SavedDashboard is a widget layout a user stored for later.
// Widgets holds the serialized widget list exactly as the client sent it.
type SavedDashboard struct {
	shared.OwnedAggregateRoot
	Title       string
	Description string
	Widgets     string
	Query       string
	CreatedBy   string
	IsShared    bool
	LastViewed  *time.Time
}

// SavedDashboardFields are the values accepted when creating a dashboard
type SavedDashboardFields struct {
	Title       string
	Description string
	Widgets     string
	Query       string
	CreatedBy   string
	IsShared    bool
}

// SavedDashboardPatch lists the fields a partial update may change; nil means untouched
type SavedDashboardPatch struct {
	Title       *string
	Description *string
	Widgets     *string
	Query       *string
	CreatedBy   *string
	IsShared    *bool
	LastViewed  *time.Time
}

// NewSavedDashboard creates a dashboard owned by userID
func NewSavedDashboard(userID uuid.UUID, f SavedDashboardFields) (*SavedDashboard, error) {
	d := &SavedDashboard{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Title:              f.Title,
		Description:        f.Description,
		Widgets:            f.Widgets,
		Query:              f.Query,
		CreatedBy:          f.CreatedBy,
		IsShared:           f.IsShared,
	}
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyPatch validates the merged result and only then commits it
func (d *SavedDashboard) ApplyPatch(p SavedDashboardPatch) error {
	next := *d
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Widgets != nil {
		next.Widgets = *p.Widgets
	}
	if p.Query != nil {
		next.Query = *p.Query
	}
	if p.CreatedBy != nil {
		next.CreatedBy = *p.CreatedBy
	}
	if p.IsShared != nil {
		next.IsShared = *p.IsShared
	}
	if p.LastViewed != nil {
		viewed := p.LastViewed.UTC()
		next.LastViewed = &viewed
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*d = next
	d.MarkUpdated()
	return nil
}

// MarkViewed records that the owner opened the dashboard
func (d *SavedDashboard) MarkViewed(at time.Time) {
	at = at.UTC().Truncate(time.Microsecond)
	d.LastViewed = &at
	d.MarkUpdated()
}

func (d *SavedDashboard) normalize() error {
	var err error
	if d.Title, err = shared.RequireText("Title", d.Title, 200); err != nil {
		return err
	}
	if err = shared.MaxText("Description", d.Description, 2000); err != nil {
		return err
	}
	if err = shared.RequireJSON("Widgets", d.Widgets); err != nil {
		return err
	}
	if d.Query, err = shared.RequireText("Query", d.Query, 1000); err != nil {
		return err
	}
	return shared.MaxText("Created by", d.CreatedBy, 200)
}
