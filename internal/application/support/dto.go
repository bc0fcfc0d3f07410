package support

import (
	"time"

	"github.com/argos/backend/internal/domain/support"
	"github.com/google/uuid"
)

// CreateTicketRequest represents a request to open a support ticket
type CreateTicketRequest struct {
	TicketNumber string    `json:"ticket_number" binding:"required,max=50"`
	CustomerName string    `json:"customer_name" binding:"required,max=200"`
	Subject      string    `json:"subject" binding:"required,max=300"`
	Category     string    `json:"category" binding:"required,max=50"`
	Priority     string    `json:"priority" binding:"required,max=50"`
	Status       string    `json:"status" binding:"required,max=50"`
	Channel      string    `json:"channel" binding:"required,max=50"`
	AssignedTo   string    `json:"assigned_to" binding:"max=100"`
	SLADeadline  time.Time `json:"sla_deadline" binding:"required"`
	Resolution   string    `json:"resolution" binding:"max=4000"`
}

// UpdateTicketRequest represents a partial ticket update
type UpdateTicketRequest struct {
	TicketNumber *string    `json:"ticket_number" binding:"omitempty,min=1,max=50"`
	CustomerName *string    `json:"customer_name" binding:"omitempty,min=1,max=200"`
	Subject      *string    `json:"subject" binding:"omitempty,min=1,max=300"`
	Category     *string    `json:"category" binding:"omitempty,min=1,max=50"`
	Priority     *string    `json:"priority" binding:"omitempty,min=1,max=50"`
	Status       *string    `json:"status" binding:"omitempty,min=1,max=50"`
	Channel      *string    `json:"channel" binding:"omitempty,min=1,max=50"`
	AssignedTo   *string    `json:"assigned_to" binding:"omitempty,max=100"`
	SLADeadline  *time.Time `json:"sla_deadline"`
	Resolution   *string    `json:"resolution" binding:"omitempty,max=4000"`
}

// TicketListFilter represents filter options for the ticket list
type TicketListFilter struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
	Channel  string `form:"channel"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TicketResponse represents a support ticket in API responses
type TicketResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	TicketNumber string    `json:"ticket_number"`
	CustomerName string    `json:"customer_name"`
	Subject      string    `json:"subject"`
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Channel      string    `json:"channel"`
	AssignedTo   string    `json:"assigned_to,omitempty"`
	SLADeadline  time.Time `json:"sla_deadline"`
	SLAState     string    `json:"sla_state"`
	Resolution   string    `json:"resolution,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ToTicketResponse converts a domain Ticket to its response as of now
func ToTicketResponse(t *support.Ticket, now time.Time) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		TicketNumber: t.TicketNumber,
		CustomerName: t.CustomerName,
		Subject:      t.Subject,
		Category:     t.Category,
		Priority:     t.Priority,
		Status:       t.Status,
		Channel:      t.Channel,
		AssignedTo:   t.AssignedTo,
		SLADeadline:  t.SLADeadline,
		SLAState:     t.SLAState(now),
		Resolution:   t.Resolution,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Version:      t.Version,
	}
}

// ToTicketResponses converts a slice of tickets
func ToTicketResponses(tickets []support.Ticket, now time.Time) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = ToTicketResponse(&tickets[i], now)
	}
	return responses
}

func (r CreateTicketRequest) fields() support.TicketFields {
	return support.TicketFields{
		TicketNumber: r.TicketNumber,
		CustomerName: r.CustomerName,
		Subject:      r.Subject,
		Category:     r.Category,
		Priority:     r.Priority,
		Status:       r.Status,
		Channel:      r.Channel,
		AssignedTo:   r.AssignedTo,
		SLADeadline:  r.SLADeadline,
		Resolution:   r.Resolution,
	}
}

func (r UpdateTicketRequest) patch() support.TicketPatch {
	return support.TicketPatch{
		TicketNumber: r.TicketNumber,
		CustomerName: r.CustomerName,
		Subject:      r.Subject,
		Category:     r.Category,
		Priority:     r.Priority,
		Status:       r.Status,
		Channel:      r.Channel,
		AssignedTo:   r.AssignedTo,
		SLADeadline:  r.SLADeadline,
		Resolution:   r.Resolution,
	}
}
