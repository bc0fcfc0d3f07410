package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	agentapp "github.com/argos/backend/internal/application/agent"
	analyticsapp "github.com/argos/backend/internal/application/analytics"
	dashboardapp "github.com/argos/backend/internal/application/dashboard"
	exportapp "github.com/argos/backend/internal/application/export"
	forecastapp "github.com/argos/backend/internal/application/forecast"
	identityapp "github.com/argos/backend/internal/application/identity"
	integrationapp "github.com/argos/backend/internal/application/integration"
	logisticsapp "github.com/argos/backend/internal/application/logistics"
	procurementapp "github.com/argos/backend/internal/application/procurement"
	productionapp "github.com/argos/backend/internal/application/production"
	supportapp "github.com/argos/backend/internal/application/support"
	"github.com/argos/backend/internal/infrastructure/auth"
	"github.com/argos/backend/internal/infrastructure/catalog"
	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/argos/backend/internal/infrastructure/persistence"
	"github.com/argos/backend/internal/interfaces/http/handler"
	"github.com/argos/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPIClient(t *testing.T, tdb *TestDB) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "integration-access-secret-32-bytes!!",
		RefreshSecret:          "integration-refresh-secret-32-bytes!",
		Issuer:                 "argos-integration",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
	})
	blacklist := auth.NewInMemoryTokenBlacklist(time.Minute)
	t.Cleanup(func() { _ = blacklist.Close() })

	db := tdb.DB
	dataset := catalog.NewStaticDataset()
	users := persistence.NewGormUserRepository(db)
	dashboards := persistence.NewGormSavedDashboardRepository(db)
	suppliers := persistence.NewGormSupplierRepository(db)
	conversations := persistence.NewGormConversationRepository(db)

	api := router.NewAPI(router.APIConfig{
		ServiceName:    "argos-integration",
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	}, router.Handlers{
		System:           handler.NewSystemHandler("integration", handler.HealthCheck{Name: "database", Check: tdb.SqlDB.PingContext}),
		Auth:             handler.NewAuthHandler(identityapp.NewAuthService(users, jwtService, blacklist, log)),
		SavedDashboards:  handler.NewSavedDashboardHandler(dashboardapp.NewSavedDashboardService(dashboards, dataset)),
		Suppliers:        handler.NewSupplierHandler(procurementapp.NewSupplierService(suppliers)),
		PurchaseOrders:   handler.NewPurchaseOrderHandler(procurementapp.NewPurchaseOrderService(persistence.NewGormPurchaseOrderRepository(db), suppliers)),
		ProductionOrders: handler.NewProductionOrderHandler(productionapp.NewProductionOrderService(persistence.NewGormProductionOrderRepository(db))),
		Deliveries:       handler.NewDeliveryHandler(logisticsapp.NewDeliveryService(persistence.NewGormDeliveryRepository(db))),
		SupportTickets:   handler.NewSupportTicketHandler(supportapp.NewTicketService(persistence.NewGormSupportTicketRepository(db))),
		Forecasts:        handler.NewForecastHandler(forecastapp.NewService(persistence.NewGormForecastRepository(db))),
		Conversations:    handler.NewConversationHandler(agentapp.NewConversationService(conversations, dashboards)),
		Agent:            handler.NewAgentHandler(agentapp.NewService(dataset, dashboards, conversations, log)),
		Analytics:        handler.NewAnalyticsHandler(analyticsapp.NewService(dataset)),
		Integrations:     handler.NewIntegrationHandler(integrationapp.NewPanelService(catalog.NewStaticIntegrations())),
		Exports:          handler.NewExportHandler(exportapp.NewService(dataset, users, log)),
	})
	t.Cleanup(api.Close)

	return &apiClient{t: t, engine: api.Engine}
}

func (c *apiClient) do(method, path, token string, body any) (int, envelope) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (c *apiClient) register(email string) string {
	c.t.Helper()

	status, env := c.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": email, "password": "s3cret-pass", "name": "Tester",
	})
	require.Equal(c.t, http.StatusCreated, status)

	var data struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(c.t, data.Token.AccessToken)
	return data.Token.AccessToken
}

func TestAPIFlow_ProcurementAndIsolation(t *testing.T) {
	client := newAPIClient(t, NewTestDB(t))
	alice := client.register("alice@example.com")
	bob := client.register("bob@example.com")

	status, env := client.do(http.MethodPost, "/api/v1/suppliers", alice, map[string]any{
		"name": "Acme Têxtil", "category": "Matéria-prima", "status": "ativo", "rating": 4.2, "total_spent": "1200.50",
	})
	require.Equal(t, http.StatusCreated, status)
	var supplier struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &supplier))

	order := map[string]any{
		"supplier_id":       supplier.ID,
		"order_number":      "PO-001",
		"status":            "pendente",
		"total_amount":      "980.00",
		"items":             `[{"sku":"ALG-01","quantity":10}]`,
		"expected_delivery": "2024-07-01T12:00:00Z",
	}
	status, _ = client.do(http.MethodPost, "/api/v1/purchase-orders", alice, order)
	assert.Equal(t, http.StatusCreated, status)

	// bob cannot reference alice's supplier
	status, env = client.do(http.MethodPost, "/api/v1/purchase-orders", bob, order)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ERR_VALIDATION", env.Error.Code)

	status, env = client.do(http.MethodGet, "/api/v1/purchase-orders", alice, nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	status, env = client.do(http.MethodGet, "/api/v1/suppliers", bob, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), env.Meta.Total)

	status, _ = client.do(http.MethodGet, "/api/v1/suppliers/"+supplier.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPIFlow_AgentDashboardIsSavedOnce(t *testing.T) {
	client := newAPIClient(t, NewTestDB(t))
	token := client.register("ana@example.com")

	status, _ := client.do(http.MethodPost, "/api/v1/agent/dashboards", token, map[string]string{"query": "status da produção"})
	assert.Equal(t, http.StatusCreated, status)

	status, env := client.do(http.MethodPost, "/api/v1/agent/dashboards", token, map[string]string{"query": "status da produção"})
	assert.Equal(t, http.StatusOK, status)
	var saved struct {
		Created bool `json:"created"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.False(t, saved.Created)

	status, env = client.do(http.MethodGet, "/api/v1/saved-dashboards", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), env.Meta.Total)
}

func TestAPIFlow_DuplicateRegistration(t *testing.T) {
	client := newAPIClient(t, NewTestDB(t))
	client.register("dup@example.com")

	status, env := client.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "DUP@example.com", "password": "s3cret-pass", "name": "Again",
	})
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
}

func TestAPIFlow_Readiness(t *testing.T) {
	client := newAPIClient(t, NewTestDB(t))

	status, _ := client.do(http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, status)
}
