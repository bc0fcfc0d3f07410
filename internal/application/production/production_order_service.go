package production

import (
	"context"

	"github.com/argos/backend/internal/domain/production"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductionOrderService handles production order business operations
type ProductionOrderService struct {
	orderRepo production.ProductionOrderRepository
}

// NewProductionOrderService creates a new ProductionOrderService
func NewProductionOrderService(orderRepo production.ProductionOrderRepository) *ProductionOrderService {
	return &ProductionOrderService{orderRepo: orderRepo}
}

// Create creates a production order
func (s *ProductionOrderService) Create(ctx context.Context, userID uuid.UUID, req CreateProductionOrderRequest) (*ProductionOrderResponse, error) {
	order, err := production.NewProductionOrder(userID, req.fields())
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToProductionOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a production order by ID
func (s *ProductionOrderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*ProductionOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToProductionOrderResponse(order)
	return &response, nil
}

// List retrieves the caller's production orders with filtering and pagination
func (s *ProductionOrderService) List(ctx context.Context, userID uuid.UUID, filter ProductionOrderListFilter) ([]ProductionOrderResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	for key, value := range map[string]string{
		"status":          filter.Status,
		"priority":        filter.Priority,
		"production_line": filter.ProductionLine,
		"channel":         filter.Channel,
	} {
		if value != "" {
			domainFilter.Filters[key] = value
		}
	}

	orders, err := s.orderRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductionOrderResponses(orders), total, nil
}

// Update applies a partial update; quantity bounds are checked against the merged order
func (s *ProductionOrderService) Update(ctx context.Context, userID, orderID uuid.UUID, req UpdateProductionOrderRequest) (*ProductionOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToProductionOrderResponse(order)
	return &response, nil
}

// Delete deletes a production order
func (s *ProductionOrderService) Delete(ctx context.Context, userID, orderID uuid.UUID) error {
	return s.orderRepo.DeleteForUser(ctx, userID, orderID)
}
