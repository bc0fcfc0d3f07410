package production

import (
	"time"

	"github.com/argos/backend/internal/domain/production"
	"github.com/google/uuid"
)

// CreateProductionOrderRequest represents a request to create a production order
type CreateProductionOrderRequest struct {
	OrderNumber       string     `json:"order_number" binding:"required,max=50"`
	ProductName       string     `json:"product_name" binding:"required,max=200"`
	Quantity          int        `json:"quantity" binding:"required,min=1"`
	Status            string     `json:"status" binding:"required,max=50"`
	Priority          string     `json:"priority" binding:"required,max=50"`
	ProductionLine    string     `json:"production_line" binding:"required,max=50"`
	StartDate         time.Time  `json:"start_date" binding:"required"`
	EndDate           *time.Time `json:"end_date"`
	CompletedQuantity int        `json:"completed_quantity" binding:"min=0"`
	DefectRate        float64    `json:"defect_rate" binding:"min=0,max=100"`
	Channel           string     `json:"channel" binding:"required,max=50"`
}

// UpdateProductionOrderRequest represents a partial production order update
type UpdateProductionOrderRequest struct {
	OrderNumber       *string    `json:"order_number" binding:"omitempty,min=1,max=50"`
	ProductName       *string    `json:"product_name" binding:"omitempty,min=1,max=200"`
	Quantity          *int       `json:"quantity" binding:"omitempty,min=1"`
	Status            *string    `json:"status" binding:"omitempty,min=1,max=50"`
	Priority          *string    `json:"priority" binding:"omitempty,min=1,max=50"`
	ProductionLine    *string    `json:"production_line" binding:"omitempty,min=1,max=50"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	CompletedQuantity *int       `json:"completed_quantity" binding:"omitempty,min=0"`
	DefectRate        *float64   `json:"defect_rate" binding:"omitempty,min=0,max=100"`
	Channel           *string    `json:"channel" binding:"omitempty,min=1,max=50"`
}

// ProductionOrderListFilter represents filter options for the production order list
type ProductionOrderListFilter struct {
	Status         string `form:"status"`
	Priority       string `form:"priority"`
	ProductionLine string `form:"production_line"`
	Channel        string `form:"channel"`
	Page           int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy        string `form:"order_by"`
	OrderDir       string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductionOrderResponse represents a production order in API responses
type ProductionOrderResponse struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	OrderNumber       string     `json:"order_number"`
	ProductName       string     `json:"product_name"`
	Quantity          int        `json:"quantity"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	ProductionLine    string     `json:"production_line"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CompletedQuantity int        `json:"completed_quantity"`
	DefectRate        float64    `json:"defect_rate"`
	Channel           string     `json:"channel"`
	Progress          float64    `json:"progress"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Version           int        `json:"version"`
}

// ToProductionOrderResponse converts a domain ProductionOrder to its response
func ToProductionOrderResponse(o *production.ProductionOrder) ProductionOrderResponse {
	return ProductionOrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		OrderNumber:       o.OrderNumber,
		ProductName:       o.ProductName,
		Quantity:          o.Quantity,
		Status:            o.Status,
		Priority:          o.Priority,
		ProductionLine:    o.ProductionLine,
		StartDate:         o.StartDate,
		EndDate:           o.EndDate,
		CompletedQuantity: o.CompletedQuantity,
		DefectRate:        o.DefectRate,
		Channel:           o.Channel,
		Progress:          o.Progress(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
	}
}

// ToProductionOrderResponses converts a slice of production orders
func ToProductionOrderResponses(orders []production.ProductionOrder) []ProductionOrderResponse {
	responses := make([]ProductionOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToProductionOrderResponse(&orders[i])
	}
	return responses
}

func (r CreateProductionOrderRequest) fields() production.ProductionOrderFields {
	return production.ProductionOrderFields{
		OrderNumber:       r.OrderNumber,
		ProductName:       r.ProductName,
		Quantity:          r.Quantity,
		Status:            r.Status,
		Priority:          r.Priority,
		ProductionLine:    r.ProductionLine,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		CompletedQuantity: r.CompletedQuantity,
		DefectRate:        r.DefectRate,
		Channel:           r.Channel,
	}
}

func (r UpdateProductionOrderRequest) patch() production.ProductionOrderPatch {
	return production.ProductionOrderPatch{
		OrderNumber:       r.OrderNumber,
		ProductName:       r.ProductName,
		Quantity:          r.Quantity,
		Status:            r.Status,
		Priority:          r.Priority,
		ProductionLine:    r.ProductionLine,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		CompletedQuantity: r.CompletedQuantity,
		DefectRate:        r.DefectRate,
		Channel:           r.Channel,
	}
}
