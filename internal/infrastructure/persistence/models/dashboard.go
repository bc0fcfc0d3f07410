package models

import (
	"time"

	"github.com/argos/backend/internal/domain/dashboard"
)

// SavedDashboardModel is the persistence model for the SavedDashboard domain entity.
type SavedDashboardModel struct {
	OwnedAggregateModel
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	Widgets     string `gorm:"type:jsonb;not null"`
	Query       string `gorm:"type:text;index"`
	CreatedBy   string `gorm:"type:varchar(200)"`
	IsShared    bool   `gorm:"not null;default:false"`
	LastViewed  *time.Time
}

// TableName returns the table name for GORM
func (SavedDashboardModel) TableName() string {
	return "saved_dashboards"
}

// ToDomain converts the persistence model to a domain SavedDashboard entity.
func (m *SavedDashboardModel) ToDomain() *dashboard.SavedDashboard {
	return &dashboard.SavedDashboard{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Title:              m.Title,
		Description:        m.Description,
		Widgets:            m.Widgets,
		Query:              m.Query,
		CreatedBy:          m.CreatedBy,
		IsShared:           m.IsShared,
		LastViewed:         m.LastViewed,
	}
}

// FromDomain populates the persistence model from a domain SavedDashboard entity.
func (m *SavedDashboardModel) FromDomain(d *dashboard.SavedDashboard) {
	m.FromDomainOwnedAggregateRoot(d.OwnedAggregateRoot)
	m.Title = d.Title
	m.Description = d.Description
	m.Widgets = d.Widgets
	m.Query = d.Query
	m.CreatedBy = d.CreatedBy
	m.IsShared = d.IsShared
	m.LastViewed = d.LastViewed
}

// SavedDashboardModelFromDomain creates a new persistence model from domain entity.
func SavedDashboardModelFromDomain(d *dashboard.SavedDashboard) *SavedDashboardModel {
	m := &SavedDashboardModel{}
	m.FromDomain(d)
	return m
}
