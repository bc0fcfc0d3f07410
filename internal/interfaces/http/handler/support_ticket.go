package handler

import (
	supportapp "github.com/argos/backend/internal/application/support"
	"github.com/gin-gonic/gin"
)

// SupportTicketHandler handles support tickets endpoints
type SupportTicketHandler struct {
	BaseHandler
	service *supportapp.TicketService
}

// NewSupportTicketHandler creates a new SupportTicketHandler
func NewSupportTicketHandler(service *supportapp.TicketService) *SupportTicketHandler {
	return &SupportTicketHandler{service: service}
}

// Create godoc
// @Summary      Create a support ticket
// @Tags         support-tickets
// @Accept       json
// @Produce      json
// @Param        request body supportapp.CreateTicketRequest true "Support ticket to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /support-tickets [post]
func (h *SupportTicketHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req supportapp.CreateTicketRequest
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
// @Summary      Get a support ticket
// @Tags         support-tickets
// @Produce      json
// @Param        id path string true "Support ticket ID" format(uuid)
// @Success      200 {object} APIResponse[supportapp.TicketResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /support-tickets/{id} [get]
func (h *SupportTicketHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's support tickets
// @Tags         support-tickets
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        priority query string false "Filter by priority"
// @Param        category query string false "Filter by category"
// @Param        channel query string false "Filter by channel"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]supportapp.TicketResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /support-tickets [get]
func (h *SupportTicketHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter supportapp.TicketListFilter
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
// @Summary      Partially update a support ticket
// @Description  Only the fields present in the body are changed
// @Tags         support-tickets
// @Accept       json
// @Produce      json
// @Param        id path string true "Support ticket ID" format(uuid)
// @Param        request body supportapp.UpdateTicketRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /support-tickets/{id} [patch]
func (h *SupportTicketHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req supportapp.UpdateTicketRequest
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
// @Summary      Delete a support ticket
// @Tags         support-tickets
// @Produce      json
// @Param        id path string true "Support ticket ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /support-tickets/{id} [delete]
func (h *SupportTicketHandler) Delete(c *gin.Context) {
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
