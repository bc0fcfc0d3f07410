package forecast

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields() Fields {
	return Fields{
		Period:           "2024-03",
		Channel:          "Amazon",
		ProductCategory:  "Sofás",
		PredictedRevenue: decimal.NewFromInt(1000000),
		PredictedUnits:   420,
		ConfidenceLower:  decimal.NewFromInt(900000),
		ConfidenceUpper:  decimal.NewFromInt(1100000),
	}
}

func TestNew(t *testing.T) {
	t.Run("creates forecast", func(t *testing.T) {
		fc, err := New(uuid.New(), fields())
		require.NoError(t, err)
		_, ok := fc.Accuracy()
		assert.False(t, ok)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		f := fields()
		f.ConfidenceLower = decimal.NewFromInt(1200000)
		_, err := New(uuid.New(), f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lower bound cannot exceed upper bound")
	})

	t.Run("rejects negative actual units", func(t *testing.T) {
		f := fields()
		units := -1
		f.ActualUnits = &units
		_, err := New(uuid.New(), f)
		require.Error(t, err)
	})
}

func TestForecast_ApplyPatch(t *testing.T) {
	fc, err := New(uuid.New(), fields())
	require.NoError(t, err)

	t.Run("interval checked against merged bounds", func(t *testing.T) {
		upper := decimal.NewFromInt(800000)
		require.Error(t, fc.ApplyPatch(Patch{ConfidenceUpper: &upper}))
		assert.True(t, fc.ConfidenceUpper.Equal(decimal.NewFromInt(1100000)))
	})

	t.Run("records actuals", func(t *testing.T) {
		actual := decimal.NewFromInt(950000)
		units := 401
		require.NoError(t, fc.ApplyPatch(Patch{ActualRevenue: &actual, ActualUnits: &units}))

		accuracy, ok := fc.Accuracy()
		require.True(t, ok)
		assert.InDelta(t, 95.0, accuracy, 0.0001)
		assert.Equal(t, 401, *fc.ActualUnits)
	})
}
