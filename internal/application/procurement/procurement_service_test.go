package procurement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/argos/backend/internal/domain/procurement"
	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSupplierRepo struct {
	testutil.MockOwnedRepository[procurement.Supplier]
}

type mockPurchaseOrderRepo struct {
	testutil.MockOwnedRepository[procurement.PurchaseOrder]
}

func validSupplierRequest() CreateSupplierRequest {
	return CreateSupplierRequest{
		Name:         "Madeireira Sul",
		Category:     "madeira",
		ContactEmail: "Vendas@Madeireira.com.br",
		Rating:       4.5,
		OnTimeRate:   96.2,
		QualityScore: 92,
		Status:       "ativo",
		TotalOrders:  12,
		TotalSpent:   decimal.NewFromInt(150000),
		LeadTimeDays: 7,
		Location:     "Caxias do Sul - RS",
	}
}

func newTestSupplier(t *testing.T, userID uuid.UUID) *procurement.Supplier {
	t.Helper()
	s, err := procurement.NewSupplier(userID, validSupplierRequest().fields())
	require.NoError(t, err)
	return s
}

func newTestPurchaseOrder(t *testing.T, userID, supplierID uuid.UUID) *procurement.PurchaseOrder {
	t.Helper()
	po, err := procurement.NewPurchaseOrder(userID, procurement.PurchaseOrderFields{
		SupplierID:       supplierID,
		OrderNumber:      "PC-2024-001",
		Status:           "pendente",
		TotalAmount:      decimal.NewFromFloat(12500.50),
		Items:            `[{"sku":"MDF-18","qty":40}]`,
		ExpectedDelivery: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return po
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("saves normalized supplier", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo)
		repo.On("Save", ctx, mock.AnythingOfType("*procurement.Supplier")).Return(nil).Once()

		resp, err := svc.Create(ctx, userID, validSupplierRequest())

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, "vendas@madeireira.com.br", resp.ContactEmail)
		assert.Equal(t, 1, resp.Version)
		repo.AssertExpectations(t)
	})

	t.Run("rejects rating above five without saving", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo)
		req := validSupplierRequest()
		req.Rating = 5.5

		resp, err := svc.Create(ctx, userID, req)

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierService_Update(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("changes only present fields", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo)
		existing := newTestSupplier(t, userID)
		repo.On("FindByIDForUser", ctx, userID, existing.ID).Return(existing, nil).Once()
		repo.On("Save", ctx, existing).Return(nil).Once()

		status := "em_avaliacao"
		resp, err := svc.Update(ctx, userID, existing.ID, UpdateSupplierRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, "em_avaliacao", resp.Status)
		assert.Equal(t, "Madeireira Sul", resp.Name)
		assert.Equal(t, 4.5, resp.Rating)
		assert.Equal(t, 2, resp.Version)
		repo.AssertExpectations(t)
	})

	t.Run("invalid patch leaves record untouched", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo)
		existing := newTestSupplier(t, userID)
		repo.On("FindByIDForUser", ctx, userID, existing.ID).Return(existing, nil).Once()

		rate := 120.0
		_, err := svc.Update(ctx, userID, existing.ID, UpdateSupplierRequest{OnTimeRate: &rate})

		require.Error(t, err)
		assert.Equal(t, 96.2, existing.OnTimeRate)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("foreign record is not found", func(t *testing.T) {
		repo := new(mockSupplierRepo)
		svc := NewSupplierService(repo)
		id := uuid.New()
		repo.On("FindByIDForUser", ctx, userID, id).Return(nil, shared.ErrNotFound).Once()

		name := "x"
		_, err := svc.Update(ctx, userID, id, UpdateSupplierRequest{Name: &name})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSupplierService_List(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockSupplierRepo)
	svc := NewSupplierService(repo)

	minRating := 4.0
	expectedFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 20 && f.OrderBy == "created_at" &&
			f.Filters["category"] == "madeira" && f.Filters["min_rating"] == 4.0
	})
	suppliers := []procurement.Supplier{*newTestSupplier(t, userID)}
	repo.On("FindAllForUser", ctx, userID, expectedFilter).Return(suppliers, nil).Once()
	repo.On("CountForUser", ctx, userID, expectedFilter).Return(int64(21), nil).Once()

	items, total, err := svc.List(ctx, userID, SupplierListFilter{Category: "madeira", MinRating: &minRating, Page: 2})

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(21), total)
	repo.AssertExpectations(t)
}

func TestSupplierService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	repo := new(mockSupplierRepo)
	svc := NewSupplierService(repo)
	id := uuid.New()
	repo.On("DeleteForUser", ctx, userID, id).Return(shared.ErrNotFound).Once()

	err := svc.Delete(ctx, userID, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurchaseOrderService_Create(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	request := func(supplierID uuid.UUID) CreatePurchaseOrderRequest {
		return CreatePurchaseOrderRequest{
			SupplierID:       supplierID,
			OrderNumber:      "PC-2024-002",
			Status:           "pendente",
			TotalAmount:      decimal.NewFromInt(800),
			Items:            `[]`,
			ExpectedDelivery: time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("owned supplier", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		supplier := newTestSupplier(t, userID)
		suppliers.On("FindByIDForUser", ctx, userID, supplier.ID).Return(supplier, nil).Once()
		orders.On("Save", ctx, mock.AnythingOfType("*procurement.PurchaseOrder")).Return(nil).Once()

		resp, err := svc.Create(ctx, userID, request(supplier.ID))

		require.NoError(t, err)
		assert.Equal(t, supplier.ID, resp.SupplierID)
		orders.AssertExpectations(t)
	})

	t.Run("supplier owned by someone else", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		foreign := uuid.New()
		suppliers.On("FindByIDForUser", ctx, userID, foreign).Return(nil, shared.ErrNotFound).Once()

		_, err := svc.Create(ctx, userID, request(foreign))

		assert.ErrorIs(t, err, ErrSupplierNotOwned)
		orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		dbErr := errors.New("connection reset")
		id := uuid.New()
		suppliers.On("FindByIDForUser", ctx, userID, id).Return(nil, dbErr).Once()

		_, err := svc.Create(ctx, userID, request(id))

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("invalid items JSON is rejected before lookup", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		req := request(uuid.New())
		req.Items = "[{"

		_, err := svc.Create(ctx, userID, req)

		require.Error(t, err)
		suppliers.AssertNotCalled(t, "FindByIDForUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_Update(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()

	t.Run("repoint to foreign supplier is rejected", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		po := newTestPurchaseOrder(t, userID, uuid.New())
		foreign := uuid.New()
		orders.On("FindByIDForUser", ctx, userID, po.ID).Return(po, nil).Once()
		suppliers.On("FindByIDForUser", ctx, userID, foreign).Return(nil, shared.ErrNotFound).Once()

		_, err := svc.Update(ctx, userID, po.ID, UpdatePurchaseOrderRequest{SupplierID: &foreign})

		assert.ErrorIs(t, err, ErrSupplierNotOwned)
		assert.NotEqual(t, foreign, po.SupplierID)
	})

	t.Run("order keeps pointing at a deleted supplier", func(t *testing.T) {
		orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
		svc := NewPurchaseOrderService(orders, suppliers)
		gone := uuid.New()
		po := newTestPurchaseOrder(t, userID, gone)
		orders.On("FindByIDForUser", ctx, userID, po.ID).Return(po, nil).Once()
		orders.On("Save", ctx, po).Return(nil).Once()

		delivered := time.Date(2024, 7, 3, 9, 30, 0, 0, time.UTC)
		resp, err := svc.Update(ctx, userID, po.ID, UpdatePurchaseOrderRequest{ActualDelivery: &delivered})

		require.NoError(t, err)
		assert.Equal(t, gone, resp.SupplierID)
		require.NotNil(t, resp.ActualDelivery)
		assert.True(t, delivered.Equal(*resp.ActualDelivery))
		suppliers.AssertNotCalled(t, "FindByIDForUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPurchaseOrderService_List(t *testing.T) {
	ctx := context.Background()
	userID := testutil.TestUserID()
	orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
	svc := NewPurchaseOrderService(orders, suppliers)
	supplierID := uuid.New()

	byFilter := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["supplier_id"] == supplierID && f.Filters["status"] == "pendente" && f.OrderDir == "asc"
	})
	orders.On("FindAllForUser", ctx, userID, byFilter).Return([]procurement.PurchaseOrder{}, nil).Once()
	orders.On("CountForUser", ctx, userID, byFilter).Return(int64(0), nil).Once()

	items, total, err := svc.List(ctx, userID, PurchaseOrderListFilter{Status: "pendente", SupplierID: supplierID.String(), OrderDir: "asc"})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
	orders.AssertExpectations(t)
}

func TestPurchaseOrderService_List_RejectsMalformedSupplierID(t *testing.T) {
	orders, suppliers := new(mockPurchaseOrderRepo), new(mockSupplierRepo)
	svc := NewPurchaseOrderService(orders, suppliers)

	_, _, err := svc.List(context.Background(), testutil.TestUserID(), PurchaseOrderListFilter{SupplierID: "not-a-uuid"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_SUPPLIER_ID", domainErr.Code)
	orders.AssertNotCalled(t, "FindAllForUser", mock.Anything, mock.Anything, mock.Anything)
}
