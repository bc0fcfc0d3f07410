package handler

import (
	logisticsapp "github.com/argos/backend/internal/application/logistics"
	"github.com/gin-gonic/gin"
)

// DeliveryHandler handles deliveries endpoints
type DeliveryHandler struct {
	BaseHandler
	service *logisticsapp.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(service *logisticsapp.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: service}
}

// Create godoc
// @Summary      Create a delivery
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        request body logisticsapp.CreateDeliveryRequest true "Delivery to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries [post]
func (h *DeliveryHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req logisticsapp.CreateDeliveryRequest
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
// @Summary      Get a delivery
// @Tags         deliveries
// @Produce      json
// @Param        id path string true "Delivery ID" format(uuid)
// @Success      200 {object} APIResponse[logisticsapp.DeliveryResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's deliveries
// @Tags         deliveries
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        carrier query string false "Filter by carrier"
// @Param        channel query string false "Filter by channel"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]logisticsapp.DeliveryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter logisticsapp.DeliveryListFilter
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
// @Summary      Partially update a delivery
// @Description  Only the fields present in the body are changed
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id path string true "Delivery ID" format(uuid)
// @Param        request body logisticsapp.UpdateDeliveryRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries/{id} [patch]
func (h *DeliveryHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req logisticsapp.UpdateDeliveryRequest
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
// @Summary      Delete a delivery
// @Tags         deliveries
// @Produce      json
// @Param        id path string true "Delivery ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /deliveries/{id} [delete]
func (h *DeliveryHandler) Delete(c *gin.Context) {
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
