package procurement

import (
	"github.com/argos/backend/internal/domain/shared"
)

// SupplierRepository persists suppliers.
// Supported filter keys: category, status, min_rating (float64).
type SupplierRepository interface {
	shared.OwnedRepository[Supplier]
}

// PurchaseOrderRepository persists purchase orders.
// Supported filter keys: status, supplier_id (uuid.UUID).
type PurchaseOrderRepository interface {
	shared.OwnedRepository[PurchaseOrder]
}
