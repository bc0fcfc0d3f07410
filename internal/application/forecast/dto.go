package forecast

import (
	"time"

	"github.com/argos/backend/internal/domain/forecast"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateForecastRequest represents a request to record a forecast
type CreateForecastRequest struct {
	Period           string           `json:"period" binding:"required,max=20"`
	Channel          string           `json:"channel" binding:"required,max=50"`
	ProductCategory  string           `json:"product_category" binding:"required,max=100"`
	PredictedRevenue decimal.Decimal  `json:"predicted_revenue"`
	PredictedUnits   int              `json:"predicted_units" binding:"min=0"`
	ConfidenceLower  decimal.Decimal  `json:"confidence_lower"`
	ConfidenceUpper  decimal.Decimal  `json:"confidence_upper"`
	ActualRevenue    *decimal.Decimal `json:"actual_revenue"`
	ActualUnits      *int             `json:"actual_units" binding:"omitempty,min=0"`
}

// UpdateForecastRequest represents a partial forecast update
type UpdateForecastRequest struct {
	Period           *string          `json:"period" binding:"omitempty,min=1,max=20"`
	Channel          *string          `json:"channel" binding:"omitempty,min=1,max=50"`
	ProductCategory  *string          `json:"product_category" binding:"omitempty,min=1,max=100"`
	PredictedRevenue *decimal.Decimal `json:"predicted_revenue"`
	PredictedUnits   *int             `json:"predicted_units" binding:"omitempty,min=0"`
	ConfidenceLower  *decimal.Decimal `json:"confidence_lower"`
	ConfidenceUpper  *decimal.Decimal `json:"confidence_upper"`
	ActualRevenue    *decimal.Decimal `json:"actual_revenue"`
	ActualUnits      *int             `json:"actual_units" binding:"omitempty,min=0"`
}

// ListFilter represents filter options for the forecast list
type ListFilter struct {
	Period          string `form:"period"`
	Channel         string `form:"channel"`
	ProductCategory string `form:"product_category"`
	Page            int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ForecastResponse represents a forecast in API responses.
// Accuracy is only present once the actual revenue is known.
type ForecastResponse struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	Period           string           `json:"period"`
	Channel          string           `json:"channel"`
	ProductCategory  string           `json:"product_category"`
	PredictedRevenue decimal.Decimal  `json:"predicted_revenue"`
	PredictedUnits   int              `json:"predicted_units"`
	ConfidenceLower  decimal.Decimal  `json:"confidence_lower"`
	ConfidenceUpper  decimal.Decimal  `json:"confidence_upper"`
	ActualRevenue    *decimal.Decimal `json:"actual_revenue,omitempty"`
	ActualUnits      *int             `json:"actual_units,omitempty"`
	Accuracy         *float64         `json:"accuracy,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Version          int              `json:"version"`
}

// ToForecastResponse converts a domain Forecast to its response
func ToForecastResponse(fc *forecast.Forecast) ForecastResponse {
	resp := ForecastResponse{
		ID:               fc.ID,
		UserID:           fc.UserID,
		Period:           fc.Period,
		Channel:          fc.Channel,
		ProductCategory:  fc.ProductCategory,
		PredictedRevenue: fc.PredictedRevenue,
		PredictedUnits:   fc.PredictedUnits,
		ConfidenceLower:  fc.ConfidenceLower,
		ConfidenceUpper:  fc.ConfidenceUpper,
		ActualRevenue:    fc.ActualRevenue,
		ActualUnits:      fc.ActualUnits,
		CreatedAt:        fc.CreatedAt,
		UpdatedAt:        fc.UpdatedAt,
		Version:          fc.Version,
	}
	if acc, ok := fc.Accuracy(); ok {
		resp.Accuracy = &acc
	}
	return resp
}

// ToForecastResponses converts a slice of forecasts
func ToForecastResponses(forecasts []forecast.Forecast) []ForecastResponse {
	responses := make([]ForecastResponse, len(forecasts))
	for i := range forecasts {
		responses[i] = ToForecastResponse(&forecasts[i])
	}
	return responses
}

func (r CreateForecastRequest) fields() forecast.Fields {
	return forecast.Fields{
		Period:           r.Period,
		Channel:          r.Channel,
		ProductCategory:  r.ProductCategory,
		PredictedRevenue: r.PredictedRevenue,
		PredictedUnits:   r.PredictedUnits,
		ConfidenceLower:  r.ConfidenceLower,
		ConfidenceUpper:  r.ConfidenceUpper,
		ActualRevenue:    r.ActualRevenue,
		ActualUnits:      r.ActualUnits,
	}
}

func (r UpdateForecastRequest) patch() forecast.Patch {
	return forecast.Patch{
		Period:           r.Period,
		Channel:          r.Channel,
		ProductCategory:  r.ProductCategory,
		PredictedRevenue: r.PredictedRevenue,
		PredictedUnits:   r.PredictedUnits,
		ConfidenceLower:  r.ConfidenceLower,
		ConfidenceUpper:  r.ConfidenceUpper,
		ActualRevenue:    r.ActualRevenue,
		ActualUnits:      r.ActualUnits,
	}
}
