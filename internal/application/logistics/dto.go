package logistics

import (
	"time"

	"github.com/argos/backend/internal/domain/logistics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest represents a request to register a delivery
type CreateDeliveryRequest struct {
	TrackingCode      string          `json:"tracking_code" binding:"required,max=100"`
	OrderNumber       string          `json:"order_number" binding:"required,max=50"`
	CustomerName      string          `json:"customer_name" binding:"required,max=200"`
	Destination       string          `json:"destination" binding:"required,max=300"`
	Carrier           string          `json:"carrier" binding:"required,max=100"`
	Status            string          `json:"status" binding:"required,max=50"`
	Channel           string          `json:"channel" binding:"required,max=50"`
	EstimatedDelivery time.Time       `json:"estimated_delivery" binding:"required"`
	ActualDelivery    *time.Time      `json:"actual_delivery"`
	Weight            *float64        `json:"weight" binding:"omitempty,gt=0"`
	Cost              decimal.Decimal `json:"cost"`
}

// UpdateDeliveryRequest represents a partial delivery update
type UpdateDeliveryRequest struct {
	TrackingCode      *string          `json:"tracking_code" binding:"omitempty,min=1,max=100"`
	OrderNumber       *string          `json:"order_number" binding:"omitempty,min=1,max=50"`
	CustomerName      *string          `json:"customer_name" binding:"omitempty,min=1,max=200"`
	Destination       *string          `json:"destination" binding:"omitempty,min=1,max=300"`
	Carrier           *string          `json:"carrier" binding:"omitempty,min=1,max=100"`
	Status            *string          `json:"status" binding:"omitempty,min=1,max=50"`
	Channel           *string          `json:"channel" binding:"omitempty,min=1,max=50"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery"`
	ActualDelivery    *time.Time       `json:"actual_delivery"`
	Weight            *float64         `json:"weight" binding:"omitempty,gt=0"`
	Cost              *decimal.Decimal `json:"cost"`
}

// DeliveryListFilter represents filter options for the delivery list
type DeliveryListFilter struct {
	Status   string `form:"status"`
	Carrier  string `form:"carrier"`
	Channel  string `form:"channel"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// DeliveryResponse represents a delivery in API responses
type DeliveryResponse struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	TrackingCode      string          `json:"tracking_code"`
	OrderNumber       string          `json:"order_number"`
	CustomerName      string          `json:"customer_name"`
	Destination       string          `json:"destination"`
	Carrier           string          `json:"carrier"`
	Status            string          `json:"status"`
	Channel           string          `json:"channel"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	Weight            *float64        `json:"weight,omitempty"`
	Cost              decimal.Decimal `json:"cost"`
	IsLate            bool            `json:"is_late"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ToDeliveryResponse converts a domain Delivery to its response as of now
func ToDeliveryResponse(d *logistics.Delivery, now time.Time) DeliveryResponse {
	return DeliveryResponse{
		ID:                d.ID,
		UserID:            d.UserID,
		TrackingCode:      d.TrackingCode,
		OrderNumber:       d.OrderNumber,
		CustomerName:      d.CustomerName,
		Destination:       d.Destination,
		Carrier:           d.Carrier,
		Status:            d.Status,
		Channel:           d.Channel,
		EstimatedDelivery: d.EstimatedDelivery,
		ActualDelivery:    d.ActualDelivery,
		Weight:            d.Weight,
		Cost:              d.Cost,
		IsLate:            d.IsLate(now),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		Version:           d.Version,
	}
}

// ToDeliveryResponses converts a slice of deliveries
func ToDeliveryResponses(deliveries []logistics.Delivery, now time.Time) []DeliveryResponse {
	responses := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = ToDeliveryResponse(&deliveries[i], now)
	}
	return responses
}

func (r CreateDeliveryRequest) fields() logistics.DeliveryFields {
	return logistics.DeliveryFields{
		TrackingCode:      r.TrackingCode,
		OrderNumber:       r.OrderNumber,
		CustomerName:      r.CustomerName,
		Destination:       r.Destination,
		Carrier:           r.Carrier,
		Status:            r.Status,
		Channel:           r.Channel,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		Weight:            r.Weight,
		Cost:              r.Cost,
	}
}

func (r UpdateDeliveryRequest) patch() logistics.DeliveryPatch {
	return logistics.DeliveryPatch{
		TrackingCode:      r.TrackingCode,
		OrderNumber:       r.OrderNumber,
		CustomerName:      r.CustomerName,
		Destination:       r.Destination,
		Carrier:           r.Carrier,
		Status:            r.Status,
		Channel:           r.Channel,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		Weight:            r.Weight,
		Cost:              r.Cost,
	}
}
