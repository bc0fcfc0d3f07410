package production

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFields() ProductionOrderFields {
	return ProductionOrderFields{
		OrderNumber:       "OP-2024-0891",
		ProductName:       "Sofá Retrátil 3 Lugares",
		Quantity:          150,
		Status:            "em_producao",
		Priority:          "alta",
		ProductionLine:    "Linha A",
		StartDate:         time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC),
		CompletedQuantity: 98,
		DefectRate:        1.2,
		Channel:           "Mercado Livre",
	}
}

func TestNewProductionOrder(t *testing.T) {
	o, err := NewProductionOrder(uuid.New(), orderFields())
	require.NoError(t, err)
	assert.InDelta(t, 65.33, o.Progress(), 0.01)

	tests := []struct {
		name    string
		mutate  func(f *ProductionOrderFields)
		wantErr string
	}{
		{"zero quantity", func(f *ProductionOrderFields) { f.Quantity = 0 }, "Quantity must be positive"},
		{"overcompleted", func(f *ProductionOrderFields) { f.CompletedQuantity = 151 }, "Completed quantity"},
		{"defect rate", func(f *ProductionOrderFields) { f.DefectRate = 120 }, "Defect rate"},
		{"missing line", func(f *ProductionOrderFields) { f.ProductionLine = "" }, "Production line is required"},
		{"end before start", func(f *ProductionOrderFields) {
			end := f.StartDate.Add(-time.Hour)
			f.EndDate = &end
		}, "End date cannot be before start date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := orderFields()
			tt.mutate(&f)
			_, err := NewProductionOrder(uuid.New(), f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductionOrder_ApplyPatch(t *testing.T) {
	o, err := NewProductionOrder(uuid.New(), orderFields())
	require.NoError(t, err)

	t.Run("cross-field check uses merged values", func(t *testing.T) {
		qty := 50
		err := o.ApplyPatch(ProductionOrderPatch{Quantity: &qty})
		require.Error(t, err)
		assert.Equal(t, 150, o.Quantity)
	})

	t.Run("completes order", func(t *testing.T) {
		done := 150
		status := "concluido"
		end := o.StartDate.Add(72 * time.Hour)
		require.NoError(t, o.ApplyPatch(ProductionOrderPatch{CompletedQuantity: &done, Status: &status, EndDate: &end}))
		assert.Equal(t, float64(100), o.Progress())
		require.NotNil(t, o.EndDate)
		assert.Equal(t, 2, o.Version)
	})
}
