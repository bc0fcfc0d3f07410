package logistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/logistics"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDeliveryRepo struct {
	testutil.MockOwnedRepository[logistics.Delivery]
}

var estimated = time.Date(2024, 6, 20, 18, 0, 0, 0, time.UTC)

func newService(repo logistics.DeliveryRepository, now time.Time) *DeliveryService {
	svc := NewDeliveryService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func validRequest() CreateDeliveryRequest {
	return CreateDeliveryRequest{
		TrackingCode:      "BR123456789JD",
		OrderNumber:       "PED-88213",
		CustomerName:      "Maria Souza",
		Destination:       "Curitiba - PR",
		Carrier:           "Jadlog",
		Status:            "em_transito",
		Channel:           "mercado_livre",
		EstimatedDelivery: estimated,
		Cost:              decimal.RequireFromString("89.90"),
	}
}

func TestDeliveryService_Create(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("open delivery past its estimate is late", func(t *testing.T) {
		repo := new(mockDeliveryRepo)
		svc := newService(repo, estimated.Add(2*time.Hour))
		repo.On("Save", ctx, mock.AnythingOfType("*logistics.Delivery")).Return(nil).Once()

		resp, err := svc.Create(ctx, userID, validRequest())

		require.NoError(t, err)
		assert.True(t, resp.IsLate)
		assert.True(t, decimal.RequireFromString("89.9").Equal(resp.Cost))
	})

	t.Run("delivered on time is not late", func(t *testing.T) {
		repo := new(mockDeliveryRepo)
		svc := newService(repo, estimated.Add(72*time.Hour))
		repo.On("Save", ctx, mock.Anything).Return(nil).Once()
		req := validRequest()
		actual := estimated.Add(-time.Hour)
		req.ActualDelivery = &actual

		resp, err := svc.Create(ctx, userID, req)

		require.NoError(t, err)
		assert.False(t, resp.IsLate)
	})

	t.Run("non-positive weight", func(t *testing.T) {
		repo := new(mockDeliveryRepo)
		svc := newService(repo, estimated)
		req := validRequest()
		zero := 0.0
		req.Weight = &zero

		_, err := svc.Create(ctx, userID, req)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_WEIGHT", domainErr.Code)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		repo := new(mockDeliveryRepo)
		svc := newService(repo, estimated)
		saveErr := errors.New("disk full")
		repo.On("Save", ctx, mock.Anything).Return(saveErr).Once()

		resp, err := svc.Create(ctx, userID, validRequest())

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestDeliveryService_Update(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	existing, err := logistics.NewDelivery(userID, validRequest().fields())
	require.NoError(t, err)

	repo := new(mockDeliveryRepo)
	svc := newService(repo, estimated)
	repo.On("FindByIDForUser", ctx, userID, existing.ID).Return(existing, nil).Once()
	repo.On("Save", ctx, existing).Return(nil).Once()

	status := "entregue"
	resp, err := svc.Update(ctx, userID, existing.ID, UpdateDeliveryRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "entregue", resp.Status)
	assert.Equal(t, "Jadlog", resp.Carrier)
	assert.Equal(t, 2, resp.Version)
	repo.AssertExpectations(t)
}

func TestDeliveryService_List(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockDeliveryRepo)
	svc := newService(repo, estimated)

	byCarrier := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["carrier"] == "Correios" && len(f.Filters) == 1
	})
	repo.On("FindAllForUser", ctx, userID, byCarrier).Return([]logistics.Delivery{}, nil).Once()
	repo.On("CountForUser", ctx, userID, byCarrier).Return(int64(0), nil).Once()

	items, total, err := svc.List(ctx, userID, DeliveryListFilter{Carrier: "Correios"})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}
