package models

import (
	"time"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	OwnedAggregateModel
	Name         string          `gorm:"type:varchar(200);not null"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	ContactEmail string          `gorm:"type:varchar(200)"`
	ContactPhone string          `gorm:"type:varchar(50)"`
	Rating       float64         `gorm:"not null;default:0"`
	OnTimeRate   float64         `gorm:"not null;default:0"`
	QualityScore float64         `gorm:"not null;default:0"`
	Status       string          `gorm:"type:varchar(50);not null;default:'ativo';index"`
	TotalOrders  int             `gorm:"not null;default:0"`
	TotalSpent   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LeadTimeDays int             `gorm:"not null;default:0"`
	Location     string          `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *procurement.Supplier {
	return &procurement.Supplier{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
		Category:           m.Category,
		ContactEmail:       m.ContactEmail,
		ContactPhone:       m.ContactPhone,
		Rating:             m.Rating,
		OnTimeRate:         m.OnTimeRate,
		QualityScore:       m.QualityScore,
		Status:             m.Status,
		TotalOrders:        m.TotalOrders,
		TotalSpent:         m.TotalSpent,
		LeadTimeDays:       m.LeadTimeDays,
		Location:           m.Location,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *procurement.Supplier) {
	m.FromDomainOwnedAggregateRoot(s.OwnedAggregateRoot)
	m.Name = s.Name
	m.Category = s.Category
	m.ContactEmail = s.ContactEmail
	m.ContactPhone = s.ContactPhone
	m.Rating = s.Rating
	m.OnTimeRate = s.OnTimeRate
	m.QualityScore = s.QualityScore
	m.Status = s.Status
	m.TotalOrders = s.TotalOrders
	m.TotalSpent = s.TotalSpent
	m.LeadTimeDays = s.LeadTimeDays
	m.Location = s.Location
}

// SupplierModelFromDomain creates a new persistence model from domain entity.
func SupplierModelFromDomain(s *procurement.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// PurchaseOrderModel is the persistence model for the PurchaseOrder domain entity.
type PurchaseOrderModel struct {
	OwnedAggregateModel
	SupplierID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber      string          `gorm:"type:varchar(50);not null"`
	Status           string          `gorm:"type:varchar(50);not null;default:'pendente';index"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Items            string          `gorm:"type:jsonb;not null"`
	ExpectedDelivery time.Time       `gorm:"not null"`
	ActualDelivery   *time.Time
	Notes            string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *procurement.PurchaseOrder {
	return &procurement.PurchaseOrder{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		SupplierID:         m.SupplierID,
		OrderNumber:        m.OrderNumber,
		Status:             m.Status,
		TotalAmount:        m.TotalAmount,
		Items:              m.Items,
		ExpectedDelivery:   m.ExpectedDelivery,
		ActualDelivery:     m.ActualDelivery,
		Notes:              m.Notes,
	}
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(o *procurement.PurchaseOrder) {
	m.FromDomainOwnedAggregateRoot(o.OwnedAggregateRoot)
	m.SupplierID = o.SupplierID
	m.OrderNumber = o.OrderNumber
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.Items = o.Items
	m.ExpectedDelivery = o.ExpectedDelivery
	m.ActualDelivery = o.ActualDelivery
	m.Notes = o.Notes
}

// PurchaseOrderModelFromDomain creates a new persistence model from domain entity.
func PurchaseOrderModelFromDomain(o *procurement.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}
