package procurement

import (
	"context"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo procurement.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo procurement.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, userID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := procurement.NewSupplier(userID, req.fields())
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, userID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForUser(ctx, userID, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves the caller's suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, userID uuid.UUID, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.MinRating != nil {
		domainFilter.Filters["min_rating"] = *filter.MinRating
	}

	suppliers, err := s.supplierRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, userID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForUser(ctx, userID, supplierID)
	if err != nil {
		return nil, err
	}

	if err := supplier.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier. Purchase orders pointing at it are left as they are.
func (s *SupplierService) Delete(ctx context.Context, userID, supplierID uuid.UUID) error {
	return s.supplierRepo.DeleteForUser(ctx, userID, supplierID)
}
