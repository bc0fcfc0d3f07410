package dashboard

import (
	"context"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SavedDashboardRepository persists saved dashboards.
// Supported filter keys: is_shared (bool).
type SavedDashboardRepository interface {
	shared.OwnedRepository[SavedDashboard]

	// FindByQueryForUser returns the user's dashboard stored for query, or shared.ErrNotFound
	FindByQueryForUser(ctx context.Context, userID uuid.UUID, query string) (*SavedDashboard, error)
}
