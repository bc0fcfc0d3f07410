package models

import (
	"github.com/argos/backend/internal/domain/forecast"
	"github.com/shopspring/decimal"
)

// ForecastModel is the persistence model for the Forecast domain entity.
// Actuals are NULL until the period closes.
type ForecastModel struct {
	OwnedAggregateModel
	Period           string           `gorm:"type:varchar(7);not null;index"`
	Channel          string           `gorm:"type:varchar(50);not null"`
	ProductCategory  string           `gorm:"type:varchar(100);not null"`
	PredictedRevenue decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PredictedUnits   int              `gorm:"not null"`
	ConfidenceLower  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ConfidenceUpper  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ActualRevenue    *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ActualUnits      *int
}

// TableName returns the table name for GORM
func (ForecastModel) TableName() string {
	return "forecasts"
}

// ToDomain converts the persistence model to a domain Forecast entity.
func (m *ForecastModel) ToDomain() *forecast.Forecast {
	return &forecast.Forecast{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Period:             m.Period,
		Channel:            m.Channel,
		ProductCategory:    m.ProductCategory,
		PredictedRevenue:   m.PredictedRevenue,
		PredictedUnits:     m.PredictedUnits,
		ConfidenceLower:    m.ConfidenceLower,
		ConfidenceUpper:    m.ConfidenceUpper,
		ActualRevenue:      m.ActualRevenue,
		ActualUnits:        m.ActualUnits,
	}
}

// FromDomain populates the persistence model from a domain Forecast entity.
func (m *ForecastModel) FromDomain(f *forecast.Forecast) {
	m.FromDomainOwnedAggregateRoot(f.OwnedAggregateRoot)
	m.Period = f.Period
	m.Channel = f.Channel
	m.ProductCategory = f.ProductCategory
	m.PredictedRevenue = f.PredictedRevenue
	m.PredictedUnits = f.PredictedUnits
	m.ConfidenceLower = f.ConfidenceLower
	m.ConfidenceUpper = f.ConfidenceUpper
	m.ActualRevenue = f.ActualRevenue
	m.ActualUnits = f.ActualUnits
}

// ForecastModelFromDomain creates a new persistence model from domain entity.
func ForecastModelFromDomain(f *forecast.Forecast) *ForecastModel {
	m := &ForecastModel{}
	m.FromDomain(f)
	return m
}
