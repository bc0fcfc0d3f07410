package support

import (
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Ticket is an after-sales support case
type Ticket struct {
	shared.OwnedAggregateRoot
	TicketNumber string
	CustomerName string
	Subject      string
	Category     string
	Priority     string
	Status       string
	Channel      string
	AssignedTo   string
	SLADeadline  time.Time
	Resolution   string
}

// TicketFields are the values accepted when opening a ticket
type TicketFields struct {
	TicketNumber string
	CustomerName string
	Subject      string
	Category     string
	Priority     string
	Status       string
	Channel      string
	AssignedTo   string
	SLADeadline  time.Time
	Resolution   string
}

// TicketPatch lists the fields a partial update may change
type TicketPatch struct {
	TicketNumber *string
	CustomerName *string
	Subject      *string
	Category     *string
	Priority     *string
	Status       *string
	Channel      *string
	AssignedTo   *string
	SLADeadline  *time.Time
	Resolution   *string
}

// NewTicket creates a ticket owned by userID
func NewTicket(userID uuid.UUID, f TicketFields) (*Ticket, error) {
	t := &Ticket{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		TicketNumber:       f.TicketNumber,
		CustomerName:       f.CustomerName,
		Subject:            f.Subject,
		Category:           f.Category,
		Priority:           f.Priority,
		Status:             f.Status,
		Channel:            f.Channel,
		AssignedTo:         f.AssignedTo,
		SLADeadline:        f.SLADeadline,
		Resolution:         f.Resolution,
	}
	if err := t.normalize(); err != nil {
		return nil, err
	}
	return t, nil
}

// ApplyPatch validates the merged result and only then commits it
func (t *Ticket) ApplyPatch(p TicketPatch) error {
	next := *t
	if p.TicketNumber != nil {
		next.TicketNumber = *p.TicketNumber
	}
	if p.CustomerName != nil {
		next.CustomerName = *p.CustomerName
	}
	if p.Subject != nil {
		next.Subject = *p.Subject
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.Priority != nil {
		next.Priority = *p.Priority
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Channel != nil {
		next.Channel = *p.Channel
	}
	if p.AssignedTo != nil {
		next.AssignedTo = *p.AssignedTo
	}
	if p.SLADeadline != nil {
		next.SLADeadline = *p.SLADeadline
	}
	if p.Resolution != nil {
		next.Resolution = *p.Resolution
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*t = next
	t.MarkUpdated()
	return nil
}

// SLAState classifies the ticket against its deadline: "dentro", "proximo" (under 24h left) or "estourado"
func (t *Ticket) SLAState(now time.Time) string {
	switch remaining := t.SLADeadline.Sub(now); {
	case remaining < 0:
		return "estourado"
	case remaining < 24*time.Hour:
		return "proximo"
	default:
		return "dentro"
	}
}

func (t *Ticket) normalize() error {
	var err error
	if t.TicketNumber, err = shared.RequireText("Ticket number", t.TicketNumber, 50); err != nil {
		return err
	}
	if t.CustomerName, err = shared.RequireText("Customer name", t.CustomerName, 200); err != nil {
		return err
	}
	if t.Subject, err = shared.RequireText("Subject", t.Subject, 300); err != nil {
		return err
	}
	if t.Category, err = shared.RequireText("Category", t.Category, shared.MaxLabelLength); err != nil {
		return err
	}
	if t.Priority, err = shared.RequireText("Priority", t.Priority, shared.MaxLabelLength); err != nil {
		return err
	}
	if t.Status, err = shared.RequireText("Status", t.Status, shared.MaxLabelLength); err != nil {
		return err
	}
	if t.Channel, err = shared.RequireText("Channel", t.Channel, shared.MaxLabelLength); err != nil {
		return err
	}
	if err = shared.MaxText("Assigned to", t.AssignedTo, 100); err != nil {
		return err
	}
	if t.SLADeadline.IsZero() {
		return shared.NewDomainError("INVALID_SLA_DEADLINE", "SLA deadline is required")
	}
	t.SLADeadline = t.SLADeadline.UTC()
	return shared.MaxText("Resolution", t.Resolution, 4000)
}
