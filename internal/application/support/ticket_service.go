package support

import (
	"context"
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/domain/support"
	"github.com/google/uuid"
)

// TicketService handles after-sales support tickets
type TicketService struct {
	ticketRepo support.TicketRepository
	now        func() time.Time
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo support.TicketRepository) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		now:        time.Now,
	}
}

// Create opens a ticket
func (s *TicketService) Create(ctx context.Context, userID uuid.UUID, req CreateTicketRequest) (*TicketResponse, error) {
	ticket, err := support.NewTicket(userID, req.fields())
	if err != nil {
		return nil, err
	}
	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket, s.now())
	return &response, nil
}

// GetByID retrieves a ticket by ID
func (s *TicketService) GetByID(ctx context.Context, userID, ticketID uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByIDForUser(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket, s.now())
	return &response, nil
}

// List retrieves the caller's tickets with filtering and pagination
func (s *TicketService) List(ctx context.Context, userID uuid.UUID, filter TicketListFilter) ([]TicketResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Priority != "" {
		domainFilter.Filters["priority"] = filter.Priority
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Channel != "" {
		domainFilter.Filters["channel"] = filter.Channel
	}

	tickets, err := s.ticketRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ticketRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToTicketResponses(tickets, s.now()), total, nil
}

// Update applies a partial update to a ticket
func (s *TicketService) Update(ctx context.Context, userID, ticketID uuid.UUID, req UpdateTicketRequest) (*TicketResponse, error) {
	ticket, err := s.ticketRepo.FindByIDForUser(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}
	if err := ticket.ApplyPatch(req.patch()); err != nil {
		return nil, err
	}
	if err := s.ticketRepo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	response := ToTicketResponse(ticket, s.now())
	return &response, nil
}

// Delete deletes a ticket
func (s *TicketService) Delete(ctx context.Context, userID, ticketID uuid.UUID) error {
	return s.ticketRepo.DeleteForUser(ctx, userID, ticketID)
}
