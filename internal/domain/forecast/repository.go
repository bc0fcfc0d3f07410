package forecast

import "github.com/argos/backend/internal/domain/shared"

// Repository persists forecasts.
// Supported filter keys: period, channel, product_category.
type Repository interface {
	shared.OwnedRepository[Forecast]
}
