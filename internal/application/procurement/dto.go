package procurement

import (
	"time"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===================== Supplier DTOs =====================

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Category     string          `json:"category" binding:"required,max=50"`
	ContactEmail string          `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string          `json:"contact_phone" binding:"max=50"`
	Rating       float64         `json:"rating" binding:"min=0,max=5"`
	OnTimeRate   float64         `json:"on_time_rate" binding:"min=0,max=100"`
	QualityScore float64         `json:"quality_score" binding:"min=0,max=100"`
	Status       string          `json:"status" binding:"required,max=50"`
	TotalOrders  int             `json:"total_orders" binding:"min=0"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	LeadTimeDays int             `json:"lead_time_days" binding:"min=0"`
	Location     string          `json:"location" binding:"max=200"`
}

// UpdateSupplierRequest represents a partial supplier update; nil fields are left untouched
type UpdateSupplierRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category     *string          `json:"category" binding:"omitempty,min=1,max=50"`
	ContactEmail *string          `json:"contact_email" binding:"omitempty"`
	ContactPhone *string          `json:"contact_phone" binding:"omitempty,max=50"`
	Rating       *float64         `json:"rating" binding:"omitempty,min=0,max=5"`
	OnTimeRate   *float64         `json:"on_time_rate" binding:"omitempty,min=0,max=100"`
	QualityScore *float64         `json:"quality_score" binding:"omitempty,min=0,max=100"`
	Status       *string          `json:"status" binding:"omitempty,min=1,max=50"`
	TotalOrders  *int             `json:"total_orders" binding:"omitempty,min=0"`
	TotalSpent   *decimal.Decimal `json:"total_spent"`
	LeadTimeDays *int             `json:"lead_time_days" binding:"omitempty,min=0"`
	Location     *string          `json:"location" binding:"omitempty,max=200"`
}

// SupplierListFilter represents filter options for the supplier list
type SupplierListFilter struct {
	Category  string   `form:"category"`
	Status    string   `form:"status"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	Page      int      `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize  int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string   `form:"order_by"`
	OrderDir  string   `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	Rating       float64         `json:"rating"`
	OnTimeRate   float64         `json:"on_time_rate"`
	QualityScore float64         `json:"quality_score"`
	Status       string          `json:"status"`
	TotalOrders  int             `json:"total_orders"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	LeadTimeDays int             `json:"lead_time_days"`
	Location     string          `json:"location,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *procurement.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		Name:         s.Name,
		Category:     s.Category,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Rating:       s.Rating,
		OnTimeRate:   s.OnTimeRate,
		QualityScore: s.QualityScore,
		Status:       s.Status,
		TotalOrders:  s.TotalOrders,
		TotalSpent:   s.TotalSpent,
		LeadTimeDays: s.LeadTimeDays,
		Location:     s.Location,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Version:      s.Version,
	}
}

// ToSupplierResponses converts a slice of suppliers
func ToSupplierResponses(suppliers []procurement.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

func (r CreateSupplierRequest) fields() procurement.SupplierFields {
	return procurement.SupplierFields{
		Name:         r.Name,
		Category:     r.Category,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Rating:       r.Rating,
		OnTimeRate:   r.OnTimeRate,
		QualityScore: r.QualityScore,
		Status:       r.Status,
		TotalOrders:  r.TotalOrders,
		TotalSpent:   r.TotalSpent,
		LeadTimeDays: r.LeadTimeDays,
		Location:     r.Location,
	}
}

func (r UpdateSupplierRequest) patch() procurement.SupplierPatch {
	return procurement.SupplierPatch{
		Name:         r.Name,
		Category:     r.Category,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Rating:       r.Rating,
		OnTimeRate:   r.OnTimeRate,
		QualityScore: r.QualityScore,
		Status:       r.Status,
		TotalOrders:  r.TotalOrders,
		TotalSpent:   r.TotalSpent,
		LeadTimeDays: r.LeadTimeDays,
		Location:     r.Location,
	}
}

// ===================== Purchase Order DTOs =====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID       uuid.UUID       `json:"supplier_id" binding:"required"`
	OrderNumber      string          `json:"order_number" binding:"required,max=50"`
	Status           string          `json:"status" binding:"required,max=50"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Items            string          `json:"items" binding:"required"`
	ExpectedDelivery time.Time       `json:"expected_delivery" binding:"required"`
	ActualDelivery   *time.Time      `json:"actual_delivery"`
	Notes            string          `json:"notes" binding:"max=2000"`
}

// UpdatePurchaseOrderRequest represents a partial purchase order update
type UpdatePurchaseOrderRequest struct {
	SupplierID       *uuid.UUID       `json:"supplier_id"`
	OrderNumber      *string          `json:"order_number" binding:"omitempty,min=1,max=50"`
	Status           *string          `json:"status" binding:"omitempty,min=1,max=50"`
	TotalAmount      *decimal.Decimal `json:"total_amount"`
	Items            *string          `json:"items"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
	ActualDelivery   *time.Time       `json:"actual_delivery"`
	Notes            *string          `json:"notes" binding:"omitempty,max=2000"`
}

// PurchaseOrderListFilter represents filter options for the purchase order list
type PurchaseOrderListFilter struct {
	Status     string `form:"status"`
	SupplierID string `form:"supplier_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	SupplierID       uuid.UUID       `json:"supplier_id"`
	OrderNumber      string          `json:"order_number"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Items            string          `json:"items"`
	ExpectedDelivery time.Time       `json:"expected_delivery"`
	ActualDelivery   *time.Time      `json:"actual_delivery,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Version          int             `json:"version"`
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder to PurchaseOrderResponse
func ToPurchaseOrderResponse(po *procurement.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:               po.ID,
		UserID:           po.UserID,
		SupplierID:       po.SupplierID,
		OrderNumber:      po.OrderNumber,
		Status:           po.Status,
		TotalAmount:      po.TotalAmount,
		Items:            po.Items,
		ExpectedDelivery: po.ExpectedDelivery,
		ActualDelivery:   po.ActualDelivery,
		Notes:            po.Notes,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
		Version:          po.Version,
	}
}

// ToPurchaseOrderResponses converts a slice of purchase orders
func ToPurchaseOrderResponses(orders []procurement.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}

func (r CreatePurchaseOrderRequest) fields() procurement.PurchaseOrderFields {
	return procurement.PurchaseOrderFields{
		SupplierID:       r.SupplierID,
		OrderNumber:      r.OrderNumber,
		Status:           r.Status,
		TotalAmount:      r.TotalAmount,
		Items:            r.Items,
		ExpectedDelivery: r.ExpectedDelivery,
		ActualDelivery:   r.ActualDelivery,
		Notes:            r.Notes,
	}
}

func (r UpdatePurchaseOrderRequest) patch() procurement.PurchaseOrderPatch {
	return procurement.PurchaseOrderPatch{
		SupplierID:       r.SupplierID,
		OrderNumber:      r.OrderNumber,
		Status:           r.Status,
		TotalAmount:      r.TotalAmount,
		Items:            r.Items,
		ExpectedDelivery: r.ExpectedDelivery,
		ActualDelivery:   r.ActualDelivery,
		Notes:            r.Notes,
	}
}
