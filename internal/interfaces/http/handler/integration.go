package handler

import (
	integrationapp "github.com/argos/backend/internal/application/integration"
	"github.com/gin-gonic/gin"
)

// IntegrationHandler serves the integration health panel. Every feed is static.
type IntegrationHandler struct {
	BaseHandler
	service *integrationapp.PanelService
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(service *integrationapp.PanelService) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

// Status godoc
// @Summary      Connected systems and overall health
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[integrationapp.StatusResponse]
// @Security     BearerAuth
// @Router       /integrations/status [get]
func (h *IntegrationHandler) Status(c *gin.Context) {
	h.Success(c, h.service.Status())
}

// Events godoc
// @Summary      Recent sync events
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[[]integration.SyncEvent]
// @Security     BearerAuth
// @Router       /integrations/events [get]
func (h *IntegrationHandler) Events(c *gin.Context) {
	h.Success(c, h.service.Events())
}

// Webhooks godoc
// @Summary      Webhook delivery log
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[[]integration.WebhookLog]
// @Security     BearerAuth
// @Router       /integrations/webhooks [get]
func (h *IntegrationHandler) Webhooks(c *gin.Context) {
	h.Success(c, h.service.Webhooks())
}

// Mappings godoc
// @Summary      Field mappings between systems
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[[]integration.DataMapping]
// @Security     BearerAuth
// @Router       /integrations/mappings [get]
func (h *IntegrationHandler) Mappings(c *gin.Context) {
	h.Success(c, h.service.Mappings())
}

// Schedules godoc
// @Summary      Sync schedules
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[[]integration.SyncSchedule]
// @Security     BearerAuth
// @Router       /integrations/schedules [get]
func (h *IntegrationHandler) Schedules(c *gin.Context) {
	h.Success(c, h.service.Schedules())
}

// Stats godoc
// @Summary      Daily sync totals
// @Tags         integrations
// @Produce      json
// @Success      200 {object} APIResponse[integration.DailyStats]
// @Security     BearerAuth
// @Router       /integrations/stats [get]
func (h *IntegrationHandler) Stats(c *gin.Context) {
	h.Success(c, h.service.Stats())
}
