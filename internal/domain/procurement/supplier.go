package procurement

import (
	"strings"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a raw-material or component vendor tracked on the supplier scorecard
type Supplier struct {
	shared.OwnedAggregateRoot
	Name         string
	Category     string
	ContactEmail string
	ContactPhone string
	Rating       float64 // 0-5 stars
	OnTimeRate   float64 // percentage
	QualityScore float64 // percentage
	Status       string
	TotalOrders  int
	TotalSpent   decimal.Decimal
	LeadTimeDays int
	Location     string
}

// SupplierFields are the values accepted when creating a supplier
type SupplierFields struct {
	Name         string
	Category     string
	ContactEmail string
	ContactPhone string
	Rating       float64
	OnTimeRate   float64
	QualityScore float64
	Status       string
	TotalOrders  int
	TotalSpent   decimal.Decimal
	LeadTimeDays int
	Location     string
}

// SupplierPatch lists the fields a partial update may change
type SupplierPatch struct {
	Name         *string
	Category     *string
	ContactEmail *string
	ContactPhone *string
	Rating       *float64
	OnTimeRate   *float64
	QualityScore *float64
	Status       *string
	TotalOrders  *int
	TotalSpent   *decimal.Decimal
	LeadTimeDays *int
	Location     *string
}

// NewSupplier creates a supplier owned by userID
func NewSupplier(userID uuid.UUID, f SupplierFields) (*Supplier, error) {
	s := &Supplier{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Name:               f.Name,
		Category:           f.Category,
		ContactEmail:       f.ContactEmail,
		ContactPhone:       f.ContactPhone,
		Rating:             f.Rating,
		OnTimeRate:         f.OnTimeRate,
		QualityScore:       f.QualityScore,
		Status:             f.Status,
		TotalOrders:        f.TotalOrders,
		TotalSpent:         f.TotalSpent,
		LeadTimeDays:       f.LeadTimeDays,
		Location:           f.Location,
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyPatch validates the merged result and only then commits it
func (s *Supplier) ApplyPatch(p SupplierPatch) error {
	next := *s
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.ContactEmail != nil {
		next.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		next.ContactPhone = *p.ContactPhone
	}
	if p.Rating != nil {
		next.Rating = *p.Rating
	}
	if p.OnTimeRate != nil {
		next.OnTimeRate = *p.OnTimeRate
	}
	if p.QualityScore != nil {
		next.QualityScore = *p.QualityScore
	}
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.TotalOrders != nil {
		next.TotalOrders = *p.TotalOrders
	}
	if p.TotalSpent != nil {
		next.TotalSpent = *p.TotalSpent
	}
	if p.LeadTimeDays != nil {
		next.LeadTimeDays = *p.LeadTimeDays
	}
	if p.Location != nil {
		next.Location = *p.Location
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*s = next
	s.MarkUpdated()
	return nil
}

func (s *Supplier) normalize() error {
	var err error
	if s.Name, err = shared.RequireText("Name", s.Name, 200); err != nil {
		return err
	}
	if s.Category, err = shared.RequireText("Category", s.Category, shared.MaxLabelLength); err != nil {
		return err
	}
	if s.Status, err = shared.RequireText("Status", s.Status, shared.MaxLabelLength); err != nil {
		return err
	}
	s.ContactEmail = strings.ToLower(strings.TrimSpace(s.ContactEmail))
	if err = shared.ValidateEmail("Contact email", s.ContactEmail); err != nil {
		return err
	}
	s.ContactPhone = strings.TrimSpace(s.ContactPhone)
	if err = shared.MaxText("Contact phone", s.ContactPhone, 50); err != nil {
		return err
	}
	if err = shared.MaxText("Location", s.Location, 200); err != nil {
		return err
	}
	if err = shared.ValidateRange("Rating", s.Rating, 0, 5); err != nil {
		return err
	}
	if err = shared.ValidateRange("On time rate", s.OnTimeRate, 0, 100); err != nil {
		return err
	}
	if err = shared.ValidateRange("Quality score", s.QualityScore, 0, 100); err != nil {
		return err
	}
	if err = shared.ValidateNonNegative("Total orders", s.TotalOrders); err != nil {
		return err
	}
	if err = shared.ValidateNonNegative("Lead time days", s.LeadTimeDays); err != nil {
		return err
	}
	return shared.ValidateNonNegativeAmount("Total spent", s.TotalSpent)
}
