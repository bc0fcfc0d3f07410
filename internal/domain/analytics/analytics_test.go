package analytics

import (
	"testing"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	actual := 2540000.0
	return &Dataset{
		ExecutiveKPIs: []KPI{{Label: "Faturamento Mensal", Value: "R$ 2.847.500", Change: 12.3, Trend: TrendUp, Icon: "💰"}},
		Suppliers: []SupplierScore{
			{ID: "SUP-001", Name: "MadeiraTech Ltda", OnTimeRate: 96.2, QualityScore: 94, Status: "ativo"},
			{ID: "SUP-004", Name: "Cola & Acabamento", OnTimeRate: 85.3, QualityScore: 82, Status: "em_avaliacao"},
		},
		Forecast: []ForecastPoint{
			{Month: "Jan", Predicted: 2480000, Actual: &actual, LowerBound: 2200000, UpperBound: 2760000},
			{Month: "Mar", Predicted: 3050000, LowerBound: 2720000, UpperBound: 3380000},
		},
		InventoryAlerts: []InventoryAlert{
			{Material: "MDF Branco 15mm", DaysToStockout: 3},
			{Material: "Tecido Suede Cinza", DaysToStockout: 2},
		},
		TopProducts: []TopProduct{
			{Name: "Sofá Retrátil 3 Lugares", Margin: 42.1},
			{Name: "Escrivaninha Home Office", Margin: 44.2},
		},
		WorkOrders: []WorkOrder{{ID: "OP-1", Quantity: 45, Completed: 32, Status: "em_producao"}},
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "R$ 892.400,00", FormatCurrency(892400))
	assert.Equal(t, "R$ 1.546,50", FormatCurrency(1546.5))
	assert.Equal(t, "1.842", FormatNumber(1842))
	assert.Equal(t, "+12.3%", FormatPercent(12.3))
	assert.Equal(t, "-3.2%", FormatPercent(-3.2))
}

func TestDatasetAggregates(t *testing.T) {
	d := sampleDataset()

	assert.Equal(t, 1, d.CountSuppliers("ativo"))
	assert.InDelta(t, 90.75, d.AverageOnTimeRate(), 0.001)
	assert.Equal(t, 71, d.WorkOrders[0].Progress())

	alert, ok := d.MostUrgentAlert()
	require.True(t, ok)
	assert.Equal(t, "Tecido Suede Cinza", alert.Material)

	best, ok := d.HighestMarginProduct()
	require.True(t, ok)
	assert.Equal(t, "Escrivaninha Home Office", best.Name)
	// lookup helpers never reorder the source slices
	assert.Equal(t, "Sofá Retrátil 3 Lugares", d.TopProducts[0].Name)
	assert.Equal(t, "MDF Branco 15mm", d.InventoryAlerts[0].Material)

	acc, ok := d.Forecast[0].Accuracy()
	require.True(t, ok)
	assert.InDelta(t, 97.58, acc, 0.01)
	_, ok = d.Forecast[1].Accuracy()
	assert.False(t, ok)
}

func TestDataset_Table(t *testing.T) {
	d := sampleDataset()

	t.Run("kpi section", func(t *testing.T) {
		table, err := d.Table(SectionExecutiveKPIs)
		require.NoError(t, err)
		assert.Equal(t, "KPIs EXECUTIVOS", table.Section.Heading)
		assert.Equal(t, []string{"Indicador", "Valor", "Variação", "Tendência"}, table.Headers)
		assert.Equal(t, [][]string{{"Faturamento Mensal", "R$ 2.847.500", "12.3%", "up"}}, table.Rows)
	})

	t.Run("forecast leaves open months blank", func(t *testing.T) {
		table, err := d.Table(SectionForecast)
		require.NoError(t, err)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "2540000", table.Rows[0][2])
		assert.Equal(t, "", table.Rows[1][2])
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := d.Table("payroll")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownSection)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Contains(t, domainErr.Message, "payroll")
	})

	t.Run("every section resolves", func(t *testing.T) {
		for _, s := range Sections {
			_, err := d.Table(s.ID)
			assert.NoError(t, err, s.ID)
			_, err = d.Records(s.ID)
			assert.NoError(t, err, s.ID)
		}
	})
}
