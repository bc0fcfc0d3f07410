package production

import (
	"context"
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/production"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductionOrderRepo struct {
	testutil.MockOwnedRepository[production.ProductionOrder]
}

func validRequest() CreateProductionOrderRequest {
	return CreateProductionOrderRequest{
		OrderNumber:       "OP-2024-0142",
		ProductName:       "Sofá Retrátil 3 Lugares",
		Quantity:          100,
		Status:            "em_producao",
		Priority:          "alta",
		ProductionLine:    "Linha 1",
		StartDate:         time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC),
		CompletedQuantity: 40,
		DefectRate:        1.8,
		Channel:           "mercado_livre",
	}
}

func TestProductionOrderService_Create(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockProductionOrderRepo)
	svc := NewProductionOrderService(repo)
	repo.On("Save", ctx, mock.AnythingOfType("*production.ProductionOrder")).Return(nil).Once()

	resp, err := svc.Create(ctx, userID, validRequest())

	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.Progress)
	assert.Nil(t, resp.EndDate)
	repo.AssertExpectations(t)
}

func TestProductionOrderService_Create_EndBeforeStart(t *testing.T) {
	repo := new(mockProductionOrderRepo)
	svc := NewProductionOrderService(repo)
	req := validRequest()
	end := req.StartDate.Add(-time.Hour)
	req.EndDate = &end

	_, err := svc.Create(context.Background(), testutil.TestUserID(), req)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_END_DATE", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductionOrderService_Update_ValidatesMergedOrder(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	existing, err := production.NewProductionOrder(userID, validRequest().fields())
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     UpdateProductionOrderRequest
		wantErr string
	}{
		{
			name:    "quantity below completed",
			req:     UpdateProductionOrderRequest{Quantity: ptr(30)},
			wantErr: "INVALID_COMPLETED_QUANTITY",
		},
		{
			name:    "completed above quantity",
			req:     UpdateProductionOrderRequest{CompletedQuantity: ptr(101)},
			wantErr: "INVALID_COMPLETED_QUANTITY",
		},
		{
			name: "quantity and completed together",
			req:  UpdateProductionOrderRequest{Quantity: ptr(30), CompletedQuantity: ptr(30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := *existing
			repo := new(mockProductionOrderRepo)
			svc := NewProductionOrderService(repo)
			repo.On("FindByIDForUser", ctx, userID, order.ID).Return(&order, nil).Once()
			repo.On("Save", ctx, &order).Return(nil).Maybe()

			resp, err := svc.Update(ctx, userID, order.ID, tt.req)

			if tt.wantErr != "" {
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantErr, domainErr.Code)
				assert.Equal(t, 100, order.Quantity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 100.0, resp.Progress)
		})
	}
}

func TestProductionOrderService_List(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockProductionOrderRepo)
	svc := NewProductionOrderService(repo)

	byFilter := mock.MatchedBy(func(f shared.Filter) bool {
		_, hasStatus := f.Filters["status"]
		return f.Filters["production_line"] == "Linha 2" && f.Filters["channel"] == "loja_propria" && !hasStatus
	})
	repo.On("FindAllForUser", ctx, userID, byFilter).Return([]production.ProductionOrder{}, nil).Once()
	repo.On("CountForUser", ctx, userID, byFilter).Return(int64(0), nil).Once()

	_, _, err := svc.List(ctx, userID, ProductionOrderListFilter{ProductionLine: "Linha 2", Channel: "loja_propria"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductionOrderService_GetAndDelete_NotOwned(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	id := uuid.New()
	repo := new(mockProductionOrderRepo)
	svc := NewProductionOrderService(repo)
	repo.On("FindByIDForUser", ctx, userID, id).Return(nil, shared.ErrNotFound).Once()
	repo.On("DeleteForUser", ctx, userID, id).Return(shared.ErrNotFound).Once()

	_, err := svc.GetByID(ctx, userID, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userID, id), shared.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }
