package procurement

import (
	"context"
	"errors"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrSupplierNotOwned is returned when a purchase order points at a supplier the caller cannot see
var ErrSupplierNotOwned = shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier not found or not authorized")

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo    procurement.PurchaseOrderRepository
	supplierRepo procurement.SupplierRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo procurement.PurchaseOrderRepository,
	supplierRepo procurement.SupplierRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
	}
}

// Create creates a purchase order for one of the caller's suppliers
func (s *PurchaseOrderService) Create(ctx context.Context, userID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := procurement.NewPurchaseOrder(userID, req.fields())
	if err != nil {
		return nil, err
	}

	if err := s.ensureSupplierOwned(ctx, userID, order.SupplierID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves the caller's purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, userID uuid.UUID, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.SupplierID != "" {
		supplierID, err := uuid.Parse(filter.SupplierID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_SUPPLIER_ID", "supplier_id must be a valid UUID")
		}
		domainFilter.Filters["supplier_id"] = supplierID
	}

	orders, err := s.orderRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}

// Update applies a partial update. Repointing the order re-checks supplier ownership.
func (s *PurchaseOrderService) Update(ctx context.Context, userID, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if req.SupplierID != nil && *req.SupplierID != order.SupplierID {
		if err := s.ensureSupplierOwned(ctx, userID, *req.SupplierID); err != nil {
			return nil, err
		}
	}

	if err := order.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete deletes a purchase order
func (s *PurchaseOrderService) Delete(ctx context.Context, userID, orderID uuid.UUID) error {
	return s.orderRepo.DeleteForUser(ctx, userID, orderID)
}

func (s *PurchaseOrderService) ensureSupplierOwned(ctx context.Context, userID, supplierID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier ID is required")
	}
	_, err := s.supplierRepo.FindByIDForUser(ctx, userID, supplierID)
	if errors.Is(err, shared.ErrNotFound) {
		return ErrSupplierNotOwned
	}
	return err
}
