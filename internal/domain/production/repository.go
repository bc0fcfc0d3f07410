package production

import "github.com/argos/backend/internal/domain/shared"

// ProductionOrderRepository persists production orders.
// Supported filter keys: status, priority, production_line, channel.
type ProductionOrderRepository interface {
	shared.OwnedRepository[ProductionOrder]
}
