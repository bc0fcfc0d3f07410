package logistics

import "github.com/argos/backend/internal/domain/shared"

// DeliveryRepository persists deliveries.
// Supported filter keys: status, carrier, channel.
type DeliveryRepository interface {
	shared.OwnedRepository[Delivery]
}
