package procurement

import (
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order placed with a supplier.
// SupplierID is a plain reference; deleting the supplier leaves the order as is.
type PurchaseOrder struct {
	shared.OwnedAggregateRoot
	SupplierID       uuid.UUID
	OrderNumber      string
	Status           string
	TotalAmount      decimal.Decimal
	Items            string // JSON line items
	ExpectedDelivery time.Time
	ActualDelivery   *time.Time
	Notes            string
}

// PurchaseOrderFields are the values accepted when creating a purchase order
type PurchaseOrderFields struct {
	SupplierID       uuid.UUID
	OrderNumber      string
	Status           string
	TotalAmount      decimal.Decimal
	Items            string
	ExpectedDelivery time.Time
	ActualDelivery   *time.Time
	Notes            string
}

// PurchaseOrderPatch lists the fields a partial update may change
type PurchaseOrderPatch struct {
	SupplierID       *uuid.UUID
	OrderNumber      *string
	Status           *string
	TotalAmount      *decimal.Decimal
	Items            *string
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
	Notes            *string
}

// NewPurchaseOrder creates a purchase order owned by userID
func NewPurchaseOrder(userID uuid.UUID, f PurchaseOrderFields) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		SupplierID:         f.SupplierID,
		OrderNumber:        f.OrderNumber,
		Status:             f.Status,
		TotalAmount:        f.TotalAmount,
		Items:              f.Items,
		ExpectedDelivery:   f.ExpectedDelivery,
		ActualDelivery:     f.ActualDelivery,
		Notes:              f.Notes,
	}
	if err := po.normalize(); err != nil {
		return nil, err
	}
	return po, nil
}

// ApplyPatch validates the merged result and only then commits it
func (po *PurchaseOrder) ApplyPatch(p PurchaseOrderPatch) error {
	next := *po
	if p.SupplierID != nil {
		next.SupplierID = *p.SupplierID
	}
	if p.OrderNumber != nil {
		next.OrderNumber = *p.OrderNumber
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.TotalAmount != nil {
		next.TotalAmount = *p.TotalAmount
	}
	if p.Items != nil {
		next.Items = *p.Items
	}
	if p.ExpectedDelivery != nil {
		next.ExpectedDelivery = *p.ExpectedDelivery
	}
	if p.ActualDelivery != nil {
		actual := *p.ActualDelivery
		next.ActualDelivery = &actual
	}
	if p.Notes != nil {
		next.Notes = *p.Notes
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*po = next
	po.MarkUpdated()
	return nil
}

// IsDelivered reports whether the order has an actual delivery date
func (po *PurchaseOrder) IsDelivered() bool {
	return po.ActualDelivery != nil
}

func (po *PurchaseOrder) normalize() error {
	var err error
	if po.SupplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER_ID", "Supplier ID is required")
	}
	if po.OrderNumber, err = shared.RequireText("Order number", po.OrderNumber, 50); err != nil {
		return err
	}
	if po.Status, err = shared.RequireText("Status", po.Status, shared.MaxLabelLength); err != nil {
		return err
	}
	if err = shared.ValidateNonNegativeAmount("Total amount", po.TotalAmount); err != nil {
		return err
	}
	if err = shared.RequireJSON("Items", po.Items); err != nil {
		return err
	}
	if po.ExpectedDelivery.IsZero() {
		return shared.NewDomainError("INVALID_EXPECTED_DELIVERY", "Expected delivery is required")
	}
	po.ExpectedDelivery = po.ExpectedDelivery.UTC()
	if po.ActualDelivery != nil {
		actual := po.ActualDelivery.UTC()
		po.ActualDelivery = &actual
	}
	return shared.MaxText("Notes", po.Notes, 2000)
}
