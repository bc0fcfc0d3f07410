package models

import (
	"time"

	"github.com/argos/backend/internal/domain/logistics"
	"github.com/argos/backend/internal/domain/production"
	"github.com/argos/backend/internal/domain/support"
	"github.com/shopspring/decimal"
)

// ProductionOrderModel is the persistence model for the ProductionOrder domain entity.
type ProductionOrderModel struct {
	OwnedAggregateModel
	OrderNumber       string    `gorm:"type:varchar(50);not null"`
	ProductName       string    `gorm:"type:varchar(200);not null"`
	Quantity          int       `gorm:"not null"`
	Status            string    `gorm:"type:varchar(50);not null;default:'planejado';index"`
	Priority          string    `gorm:"type:varchar(50);not null;default:'media'"`
	ProductionLine    string    `gorm:"type:varchar(100);not null"`
	StartDate         time.Time `gorm:"not null"`
	EndDate           *time.Time
	CompletedQuantity int     `gorm:"not null;default:0"`
	DefectRate        float64 `gorm:"not null;default:0"`
	Channel           string  `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (ProductionOrderModel) TableName() string {
	return "production_orders"
}

// ToDomain converts the persistence model to a domain ProductionOrder entity.
func (m *ProductionOrderModel) ToDomain() *production.ProductionOrder {
	return &production.ProductionOrder{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		OrderNumber:        m.OrderNumber,
		ProductName:        m.ProductName,
		Quantity:           m.Quantity,
		Status:             m.Status,
		Priority:           m.Priority,
		ProductionLine:     m.ProductionLine,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		CompletedQuantity:  m.CompletedQuantity,
		DefectRate:         m.DefectRate,
		Channel:            m.Channel,
	}
}

// FromDomain populates the persistence model from a domain ProductionOrder entity.
func (m *ProductionOrderModel) FromDomain(o *production.ProductionOrder) {
	m.FromDomainOwnedAggregateRoot(o.OwnedAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.ProductName = o.ProductName
	m.Quantity = o.Quantity
	m.Status = o.Status
	m.Priority = o.Priority
	m.ProductionLine = o.ProductionLine
	m.StartDate = o.StartDate
	m.EndDate = o.EndDate
	m.CompletedQuantity = o.CompletedQuantity
	m.DefectRate = o.DefectRate
	m.Channel = o.Channel
}

// ProductionOrderModelFromDomain creates a new persistence model from domain entity.
func ProductionOrderModelFromDomain(o *production.ProductionOrder) *ProductionOrderModel {
	m := &ProductionOrderModel{}
	m.FromDomain(o)
	return m
}

// DeliveryModel is the persistence model for the Delivery domain entity.
type DeliveryModel struct {
	OwnedAggregateModel
	TrackingCode      string    `gorm:"type:varchar(50);not null"`
	OrderNumber       string    `gorm:"type:varchar(50);not null"`
	CustomerName      string    `gorm:"type:varchar(200);not null"`
	Destination       string    `gorm:"type:varchar(200);not null"`
	Carrier           string    `gorm:"type:varchar(100);not null"`
	Status            string    `gorm:"type:varchar(50);not null;default:'aguardando';index"`
	Channel           string    `gorm:"type:varchar(50)"`
	EstimatedDelivery time.Time `gorm:"not null"`
	ActualDelivery    *time.Time
	Weight            *float64
	Cost              decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// ToDomain converts the persistence model to a domain Delivery entity.
func (m *DeliveryModel) ToDomain() *logistics.Delivery {
	return &logistics.Delivery{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		TrackingCode:       m.TrackingCode,
		OrderNumber:        m.OrderNumber,
		CustomerName:       m.CustomerName,
		Destination:        m.Destination,
		Carrier:            m.Carrier,
		Status:             m.Status,
		Channel:            m.Channel,
		EstimatedDelivery:  m.EstimatedDelivery,
		ActualDelivery:     m.ActualDelivery,
		Weight:             m.Weight,
		Cost:               m.Cost,
	}
}

// FromDomain populates the persistence model from a domain Delivery entity.
func (m *DeliveryModel) FromDomain(d *logistics.Delivery) {
	m.FromDomainOwnedAggregateRoot(d.OwnedAggregateRoot)
	m.TrackingCode = d.TrackingCode
	m.OrderNumber = d.OrderNumber
	m.CustomerName = d.CustomerName
	m.Destination = d.Destination
	m.Carrier = d.Carrier
	m.Status = d.Status
	m.Channel = d.Channel
	m.EstimatedDelivery = d.EstimatedDelivery
	m.ActualDelivery = d.ActualDelivery
	m.Weight = d.Weight
	m.Cost = d.Cost
}

// DeliveryModelFromDomain creates a new persistence model from domain entity.
func DeliveryModelFromDomain(d *logistics.Delivery) *DeliveryModel {
	m := &DeliveryModel{}
	m.FromDomain(d)
	return m
}

// SupportTicketModel is the persistence model for the support Ticket domain entity.
type SupportTicketModel struct {
	OwnedAggregateModel
	TicketNumber string    `gorm:"type:varchar(50);not null"`
	CustomerName string    `gorm:"type:varchar(200);not null"`
	Subject      string    `gorm:"type:varchar(300);not null"`
	Category     string    `gorm:"type:varchar(50);not null"`
	Priority     string    `gorm:"type:varchar(50);not null;default:'media'"`
	Status       string    `gorm:"type:varchar(50);not null;default:'aberto';index"`
	Channel      string    `gorm:"type:varchar(50)"`
	AssignedTo   string    `gorm:"type:varchar(200)"`
	SLADeadline  time.Time `gorm:"column:sla_deadline;not null"`
	Resolution   string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

// ToDomain converts the persistence model to a domain Ticket entity.
func (m *SupportTicketModel) ToDomain() *support.Ticket {
	return &support.Ticket{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		TicketNumber:       m.TicketNumber,
		CustomerName:       m.CustomerName,
		Subject:            m.Subject,
		Category:           m.Category,
		Priority:           m.Priority,
		Status:             m.Status,
		Channel:            m.Channel,
		AssignedTo:         m.AssignedTo,
		SLADeadline:        m.SLADeadline,
		Resolution:         m.Resolution,
	}
}

// FromDomain populates the persistence model from a domain Ticket entity.
func (m *SupportTicketModel) FromDomain(t *support.Ticket) {
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.TicketNumber = t.TicketNumber
	m.CustomerName = t.CustomerName
	m.Subject = t.Subject
	m.Category = t.Category
	m.Priority = t.Priority
	m.Status = t.Status
	m.Channel = t.Channel
	m.AssignedTo = t.AssignedTo
	m.SLADeadline = t.SLADeadline
	m.Resolution = t.Resolution
}

// SupportTicketModelFromDomain creates a new persistence model from domain entity.
func SupportTicketModelFromDomain(t *support.Ticket) *SupportTicketModel {
	m := &SupportTicketModel{}
	m.FromDomain(t)
	return m
}
