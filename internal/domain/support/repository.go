package support

import "github.com/argos/backend/internal/domain/shared"

// TicketRepository persists support tickets.
// Supported filter keys: status, priority, category, channel.
type TicketRepository interface {
	shared.OwnedRepository[Ticket]
}
