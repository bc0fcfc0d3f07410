package handler

import (
	agentapp "github.com/argos/backend/internal/application/agent"
	"github.com/gin-gonic/gin"
)

// ConversationHandler handles agent conversations endpoints
type ConversationHandler struct {
	BaseHandler
	service *agentapp.ConversationService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(service *agentapp.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// Create godoc
// @Summary      Create a conversation
// @Tags         agent-conversations
// @Accept       json
// @Produce      json
// @Param        request body agentapp.CreateConversationRequest true "Conversation to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent-conversations [post]
func (h *ConversationHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req agentapp.CreateConversationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created.ID)
}

// GetByID godoc
// @Summary      Get a conversation
// @Tags         agent-conversations
// @Produce      json
// @Param        id path string true "Conversation ID" format(uuid)
// @Success      200 {object} APIResponse[agentapp.ConversationResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent-conversations/{id} [get]
func (h *ConversationHandler) GetByID(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, found)
}

// List godoc
// @Summary      List the caller's agent conversations
// @Tags         agent-conversations
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]agentapp.ConversationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent-conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter agentapp.ConversationListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	items, total, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := listPage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// Update godoc
// @Summary      Partially update a conversation
// @Description  Only the fields present in the body are changed
// @Tags         agent-conversations
// @Accept       json
// @Produce      json
// @Param        id path string true "Conversation ID" format(uuid)
// @Param        request body agentapp.UpdateConversationRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent-conversations/{id} [patch]
func (h *ConversationHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req agentapp.UpdateConversationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Update(c.Request.Context(), userID, id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Affected(c, id)
}

// Delete godoc
// @Summary      Delete a conversation
// @Tags         agent-conversations
// @Produce      json
// @Param        id path string true "Conversation ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /agent-conversations/{id} [delete]
func (h *ConversationHandler) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Affected(c, id)
}
