package production

import (
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductionOrder is a manufacturing order running on a factory line
type ProductionOrder struct {
	shared.OwnedAggregateRoot
	OrderNumber       string
	ProductName       string
	Quantity          int
	Status            string
	Priority          string
	ProductionLine    string
	StartDate         time.Time
	EndDate           *time.Time
	CompletedQuantity int
	DefectRate        float64 // percentage
	Channel           string
}

// ProductionOrderFields are the values accepted when creating a production order
type ProductionOrderFields struct {
	OrderNumber       string
	ProductName       string
	Quantity          int
	Status            string
	Priority          string
	ProductionLine    string
	StartDate         time.Time
	EndDate           *time.Time
	CompletedQuantity int
	DefectRate        float64
	Channel           string
}

// ProductionOrderPatch lists the fields a partial update may change
type ProductionOrderPatch struct {
	OrderNumber       *string
	ProductName       *string
	Quantity          *int
	Status            *string
	Priority          *string
	ProductionLine    *string
	StartDate         *time.Time
	EndDate           *time.Time
	CompletedQuantity *int
	DefectRate        *float64
	Channel           *string
}

// NewProductionOrder creates a production order owned by userID
func NewProductionOrder(userID uuid.UUID, f ProductionOrderFields) (*ProductionOrder, error) {
	o := &ProductionOrder{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		OrderNumber:        f.OrderNumber,
		ProductName:        f.ProductName,
		Quantity:           f.Quantity,
		Status:             f.Status,
		Priority:           f.Priority,
		ProductionLine:     f.ProductionLine,
		StartDate:          f.StartDate,
		EndDate:            f.EndDate,
		CompletedQuantity:  f.CompletedQuantity,
		DefectRate:         f.DefectRate,
		Channel:            f.Channel,
	}
	if err := o.normalize(); err != nil {
		return nil, err
	}
	return o, nil
}

// ApplyPatch validates the merged result and only then commits it
func (o *ProductionOrder) ApplyPatch(p ProductionOrderPatch) error {
	next := *o
	if p.OrderNumber != nil {
		next.OrderNumber = *p.OrderNumber
	}
	if p.ProductName != nil {
		next.ProductName = *p.ProductName
	}
	if p.Quantity != nil {
		next.Quantity = *p.Quantity
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Priority != nil {
		next.Priority = *p.Priority
	}
	if p.ProductionLine != nil {
		next.ProductionLine = *p.ProductionLine
	}
	if p.StartDate != nil {
		next.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		next.EndDate = &end
	}
	if p.CompletedQuantity != nil {
		next.CompletedQuantity = *p.CompletedQuantity
	}
	if p.DefectRate != nil {
		next.DefectRate = *p.DefectRate
	}
	if p.Channel != nil {
		next.Channel = *p.Channel
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*o = next
	o.MarkUpdated()
	return nil
}

// Progress returns the completed share of the order as a percentage
func (o *ProductionOrder) Progress() float64 {
	if o.Quantity == 0 {
		return 0
	}
	return float64(o.CompletedQuantity) / float64(o.Quantity) * 100
}

func (o *ProductionOrder) normalize() error {
	var err error
	if o.OrderNumber, err = shared.RequireText("Order number", o.OrderNumber, 50); err != nil {
		return err
	}
	if o.ProductName, err = shared.RequireText("Product name", o.ProductName, 200); err != nil {
		return err
	}
	if o.Status, err = shared.RequireText("Status", o.Status, shared.MaxLabelLength); err != nil {
		return err
	}
	if o.Priority, err = shared.RequireText("Priority", o.Priority, shared.MaxLabelLength); err != nil {
		return err
	}
	if o.ProductionLine, err = shared.RequireText("Production line", o.ProductionLine, shared.MaxLabelLength); err != nil {
		return err
	}
	if o.Channel, err = shared.RequireText("Channel", o.Channel, shared.MaxLabelLength); err != nil {
		return err
	}
	if o.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if o.CompletedQuantity < 0 || o.CompletedQuantity > o.Quantity {
		return shared.NewDomainError("INVALID_COMPLETED_QUANTITY", "Completed quantity must be between 0 and quantity")
	}
	if err = shared.ValidateRange("Defect rate", o.DefectRate, 0, 100); err != nil {
		return err
	}
	if o.StartDate.IsZero() {
		return shared.NewDomainError("INVALID_START_DATE", "Start date is required")
	}
	o.StartDate = o.StartDate.UTC()
	if o.EndDate != nil {
		end := o.EndDate.UTC()
		if end.Before(o.StartDate) {
			return shared.NewDomainError("INVALID_END_DATE", "End date cannot be before start date")
		}
		o.EndDate = &end
	}
	return nil
}
