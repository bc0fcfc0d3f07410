package forecast

import (
	"github.com/argos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Forecast is a revenue and unit projection for one period, channel and product category.
// Actuals stay nil until the period closes.
type Forecast struct {
	shared.OwnedAggregateRoot
	Period           string
	Channel          string
	ProductCategory  string
	PredictedRevenue decimal.Decimal
	PredictedUnits   int
	ConfidenceLower  decimal.Decimal
	ConfidenceUpper  decimal.Decimal
	ActualRevenue    *decimal.Decimal
	ActualUnits      *int
}

// Fields are the values accepted when creating a forecast
type Fields struct {
	Period           string
	Channel          string
	ProductCategory  string
	PredictedRevenue decimal.Decimal
	PredictedUnits   int
	ConfidenceLower  decimal.Decimal
	ConfidenceUpper  decimal.Decimal
	ActualRevenue    *decimal.Decimal
	ActualUnits      *int
}

// Patch lists the fields a partial update may change
type Patch struct {
	Period           *string
	Channel          *string
	ProductCategory  *string
	PredictedRevenue *decimal.Decimal
	PredictedUnits   *int
	ConfidenceLower  *decimal.Decimal
	ConfidenceUpper  *decimal.Decimal
	ActualRevenue    *decimal.Decimal
	ActualUnits      *int
}

// New creates a forecast owned by userID
func New(userID uuid.UUID, f Fields) (*Forecast, error) {
	fc := &Forecast{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		Period:             f.Period,
		Channel:            f.Channel,
		ProductCategory:    f.ProductCategory,
		PredictedRevenue:   f.PredictedRevenue,
		PredictedUnits:     f.PredictedUnits,
		ConfidenceLower:    f.ConfidenceLower,
		ConfidenceUpper:    f.ConfidenceUpper,
		ActualRevenue:      f.ActualRevenue,
		ActualUnits:        f.ActualUnits,
	}
	if err := fc.normalize(); err != nil {
		return nil, err
	}
	return fc, nil
}

// ApplyPatch validates the merged result and only then commits it
func (fc *Forecast) ApplyPatch(p Patch) error {
	next := *fc
	if p.Period != nil {
		next.Period = *p.Period
	}
	if p.Channel != nil {
		next.Channel = *p.Channel
	}
	if p.ProductCategory != nil {
		next.ProductCategory = *p.ProductCategory
	}
	if p.PredictedRevenue != nil {
		next.PredictedRevenue = *p.PredictedRevenue
	}
	if p.PredictedUnits != nil {
		next.PredictedUnits = *p.PredictedUnits
	}
	if p.ConfidenceLower != nil {
		next.ConfidenceLower = *p.ConfidenceLower
	}
	if p.ConfidenceUpper != nil {
		next.ConfidenceUpper = *p.ConfidenceUpper
	}
	if p.ActualRevenue != nil {
		actual := *p.ActualRevenue
		next.ActualRevenue = &actual
	}
	if p.ActualUnits != nil {
		units := *p.ActualUnits
		next.ActualUnits = &units
	}
	if err := next.normalize(); err != nil {
		return err
	}
	*fc = next
	fc.MarkUpdated()
	return nil
}

// Accuracy returns 100 - |actual-predicted|/predicted*100 once the actual revenue is known
func (fc *Forecast) Accuracy() (float64, bool) {
	if fc.ActualRevenue == nil || fc.PredictedRevenue.IsZero() {
		return 0, false
	}
	deviation := fc.ActualRevenue.Sub(fc.PredictedRevenue).Abs().Div(fc.PredictedRevenue)
	return decimal.NewFromInt(100).Sub(deviation.Mul(decimal.NewFromInt(100))).InexactFloat64(), true
}

func (fc *Forecast) normalize() error {
	var err error
	if fc.Period, err = shared.RequireText("Period", fc.Period, 20); err != nil {
		return err
	}
	if fc.Channel, err = shared.RequireText("Channel", fc.Channel, shared.MaxLabelLength); err != nil {
		return err
	}
	if fc.ProductCategory, err = shared.RequireText("Product category", fc.ProductCategory, 100); err != nil {
		return err
	}
	if err = shared.ValidateNonNegativeAmount("Predicted revenue", fc.PredictedRevenue); err != nil {
		return err
	}
	if err = shared.ValidateNonNegative("Predicted units", fc.PredictedUnits); err != nil {
		return err
	}
	if fc.ConfidenceLower.GreaterThan(fc.ConfidenceUpper) {
		return shared.NewDomainError("INVALID_CONFIDENCE_INTERVAL", "Confidence lower bound cannot exceed upper bound")
	}
	if fc.ActualRevenue != nil {
		if err = shared.ValidateNonNegativeAmount("Actual revenue", *fc.ActualRevenue); err != nil {
			return err
		}
	}
	if fc.ActualUnits != nil {
		return shared.ValidateNonNegative("Actual units", *fc.ActualUnits)
	}
	return nil
}
