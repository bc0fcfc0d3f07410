package handler

import (
	productionapp "github.com/argos/backend/internal/application/production"
	"github.com/gin-gonic/gin"
)

// ProductionOrderHandler handles production orders endpoints
type ProductionOrderHandler struct {
	BaseHandler
	service *productionapp.ProductionOrderService
}

// NewProductionOrderHandler creates a new ProductionOrderHandler
func NewProductionOrderHandler(service *productionapp.ProductionOrderService) *ProductionOrderHandler {
	return &ProductionOrderHandler{service: service}
}

// Create godoc
// @Summary      Create a production order
// @Tags         production-orders
// @Accept       json
// @Produce      json
// @Param        request body productionapp.CreateProductionOrderRequest true "Production order to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /production-orders [post]
func (h *ProductionOrderHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req productionapp.CreateProductionOrderRequest
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
// @Summary      Get a production order
// @Tags         production-orders
// @Produce      json
// @Param        id path string true "Production order ID" format(uuid)
// @Success      200 {object} APIResponse[productionapp.ProductionOrderResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /production-orders/{id} [get]
func (h *ProductionOrderHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's production orders
// @Tags         production-orders
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        priority query string false "Filter by priority"
// @Param        production_line query string false "Filter by production line"
// @Param        channel query string false "Filter by channel"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]productionapp.ProductionOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /production-orders [get]
func (h *ProductionOrderHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter productionapp.ProductionOrderListFilter
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
// @Summary      Partially update a production order
// @Description  Only the fields present in the body are changed
// @Tags         production-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Production order ID" format(uuid)
// @Param        request body productionapp.UpdateProductionOrderRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /production-orders/{id} [patch]
func (h *ProductionOrderHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req productionapp.UpdateProductionOrderRequest
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
// @Summary      Delete a production order
// @Tags         production-orders
// @Produce      json
// @Param        id path string true "Production order ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /production-orders/{id} [delete]
func (h *ProductionOrderHandler) Delete(c *gin.Context) {
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
