package handler

import (
	"net/http"

	agentapp "github.com/argos/backend/internal/application/agent"
	"github.com/argos/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AgentHandler exposes the dashboard-generating agent
type AgentHandler struct {
	BaseHandler
	service *agentapp.Service
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(service *agentapp.Service) *AgentHandler {
	return &AgentHandler{service: service}
}

// Query godoc
// @Summary      Ask the agent
// @Description  Detects the business domains a free-text query mentions and answers with a generated dashboard.
// @Description  With conversation_id, the exchange is appended to that conversation.
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        request body agentapp.QueryRequest true "Query"
// @Success      200 {object} APIResponse[agentapp.QueryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent/query [post]
func (h *AgentHandler) Query(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req agentapp.QueryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	answer, err := h.service.Query(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, answer)
}

// SaveDashboard godoc
// @Summary      Generate and save a dashboard
// @Description  Reuses the caller's existing dashboard when one was already saved for the same query
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        request body agentapp.SaveDashboardRequest true "Query"
// @Success      200 {object} APIResponse[agentapp.SaveDashboardResponse]
// @Success      201 {object} APIResponse[agentapp.SaveDashboardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent/dashboards [post]
func (h *AgentHandler) SaveDashboard(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req agentapp.SaveDashboardRequest
	if !h.bindJSON(c, &req) {
		return
	}

	saved, err := h.service.SaveDashboard(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if saved.Created {
		c.JSON(http.StatusCreated, dto.NewSuccessResponse(saved))
		return
	}
	h.Success(c, saved)
}

// Suggestions godoc
// @Summary      Starter queries
// @Tags         agent
// @Produce      json
// @Success      200 {object} APIResponse[agentapp.SuggestionsResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent/suggestions [get]
func (h *AgentHandler) Suggestions(c *gin.Context) {
	h.Success(c, h.service.Suggestions())
}
