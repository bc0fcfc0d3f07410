package logistics

import (
	"time"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Delivery is a customer shipment handed to a carrier
type Delivery struct {
	shared.OwnedAggregateRoot
	TrackingCode      string
	OrderNumber       string
	CustomerName      string
	Destination       string
	Carrier           string
	Status            string
	Channel           string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	Weight            *float64 // kg
	Cost              decimal.Decimal
}

// DeliveryFields are the values accepted when creating a delivery
type DeliveryFields struct {
	TrackingCode      string
	OrderNumber       string
	CustomerName      string
	Destination       string
	Carrier           string
	Status            string
	Channel           string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	Weight            *float64
	Cost              decimal.Decimal
}

// DeliveryPatch lists the fields a partial update may change
type DeliveryPatch struct {
	TrackingCode      *string
	OrderNumber       *string
	CustomerName      *string
	Destination       *string
	Carrier           *string
	Status            *string
	Channel           *string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Weight            *float64
	Cost              *decimal.Decimal
}

// NewDelivery creates a delivery owned by userID
func NewDelivery(userID uuid.UUID, f DeliveryFields) (*Delivery, error) {
	d := &Delivery{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		TrackingCode:       f.TrackingCode,
		OrderNumber:        f.OrderNumber,
		CustomerName:       f.CustomerName,
		Destination:        f.Destination,
		Carrier:            f.Carrier,
		Status:             f.Status,
		Channel:            f.Channel,
		EstimatedDelivery:  f.EstimatedDelivery,
		ActualDelivery:     f.ActualDelivery,
		Weight:             f.Weight,
		Cost:               f.Cost,
	}
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyPatch validates the merged result and only then commits it
func (d *Delivery) ApplyPatch(p DeliveryPatch) error {
	next := *d
	if p.TrackingCode != nil {
		next.TrackingCode = *p.TrackingCode
	}
	if p.OrderNumber != nil {
		next.OrderNumber = *p.OrderNumber
	}
	if p.CustomerName != nil {
		next.CustomerName = *p.CustomerName
	}
	if p.Destination != nil {
		next.Destination = *p.Destination
	}
	if p.Carrier != nil {
		next.Carrier = *p.Carrier
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Channel != nil {
		next.Channel = *p.Channel
	}
	if p.EstimatedDelivery != nil {
		next.EstimatedDelivery = *p.EstimatedDelivery
	}
	if p.ActualDelivery != nil {
		actual := *p.ActualDelivery
		next.ActualDelivery = &actual
	}
	if p.Weight != nil {
		w := *p.Weight
		next.Weight = &w
	}
	if p.Cost != nil {
		next.Cost = *p.Cost
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*d = next
	d.MarkUpdated()
	return nil
}

// IsLate reports whether the delivery missed its estimate, as of now when still open
func (d *Delivery) IsLate(now time.Time) bool {
	if d.ActualDelivery != nil {
		return d.ActualDelivery.After(d.EstimatedDelivery)
	}
	return now.After(d.EstimatedDelivery)
}

func (d *Delivery) normalize() error {
	var err error
	if d.TrackingCode, err = shared.RequireText("Tracking code", d.TrackingCode, 100); err != nil {
		return err
	}
	if d.OrderNumber, err = shared.RequireText("Order number", d.OrderNumber, 50); err != nil {
		return err
	}
	if d.CustomerName, err = shared.RequireText("Customer name", d.CustomerName, 200); err != nil {
		return err
	}
	if d.Destination, err = shared.RequireText("Destination", d.Destination, 300); err != nil {
		return err
	}
	if d.Carrier, err = shared.RequireText("Carrier", d.Carrier, 100); err != nil {
		return err
	}
	if d.Status, err = shared.RequireText("Status", d.Status, shared.MaxLabelLength); err != nil {
		return err
	}
	if d.Channel, err = shared.RequireText("Channel", d.Channel, shared.MaxLabelLength); err != nil {
		return err
	}
	if d.EstimatedDelivery.IsZero() {
		return shared.NewDomainError("INVALID_ESTIMATED_DELIVERY", "Estimated delivery is required")
	}
	d.EstimatedDelivery = d.EstimatedDelivery.UTC()
	if d.ActualDelivery != nil {
		actual := d.ActualDelivery.UTC()
		d.ActualDelivery = &actual
	}
	if d.Weight != nil && *d.Weight <= 0 {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight must be positive")
	}
	return shared.ValidateNonNegativeAmount("Cost", d.Cost)
}
