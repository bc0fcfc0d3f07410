package logistics

import (
	"context"
	"time"

	"github.com/argos/backend/internal/domain/logistics"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DeliveryService handles delivery tracking operations
type DeliveryService struct {
	deliveryRepo logistics.DeliveryRepository
	now          func() time.Time
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveryRepo logistics.DeliveryRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		now:          time.Now,
	}
}

// Create registers a delivery
func (s *DeliveryService) Create(ctx context.Context, userID uuid.UUID, req CreateDeliveryRequest) (*DeliveryResponse, error) {
	delivery, err := logistics.NewDelivery(userID, req.fields())
	if err != nil {
		return nil, err
	}
	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery, s.now())
	return &response, nil
}

// GetByID retrieves a delivery by ID
func (s *DeliveryService) GetByID(ctx context.Context, userID, deliveryID uuid.UUID) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForUser(ctx, userID, deliveryID)
	if err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery, s.now())
	return &response, nil
}

// List retrieves the caller's deliveries with filtering and pagination
func (s *DeliveryService) List(ctx context.Context, userID uuid.UUID, filter DeliveryListFilter) ([]DeliveryResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Carrier != "" {
		domainFilter.Filters["carrier"] = filter.Carrier
	}
	if filter.Channel != "" {
		domainFilter.Filters["channel"] = filter.Channel
	}

	deliveries, err := s.deliveryRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.deliveryRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDeliveryResponses(deliveries, s.now()), total, nil
}

// Update applies a partial update to a delivery
func (s *DeliveryService) Update(ctx context.Context, userID, deliveryID uuid.UUID, req UpdateDeliveryRequest) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForUser(ctx, userID, deliveryID)
	if err != nil {
		return nil, err
	}
	if err := delivery.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery, s.now())
	return &response, nil
}

// Delete deletes a delivery
func (s *DeliveryService) Delete(ctx context.Context, userID, deliveryID uuid.UUID) error {
	return s.deliveryRepo.DeleteForUser(ctx, userID, deliveryID)
}
