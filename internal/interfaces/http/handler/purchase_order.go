package handler

import (
	procurementapp "github.com/argos/backend/internal/application/procurement"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler handles purchase orders endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	service *procurementapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(service *procurementapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

// Create godoc
// @Summary      Create a purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        request body procurementapp.CreatePurchaseOrderRequest true "Purchase order to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req procurementapp.CreatePurchaseOrderRequest
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
// @Summary      Get a purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} APIResponse[procurementapp.PurchaseOrderResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        supplier_id query string false "Filter by supplier" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]procurementapp.PurchaseOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter procurementapp.PurchaseOrderListFilter
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
// @Summary      Partially update a purchase order
// @Description  Only the fields present in the body are changed
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Param        request body procurementapp.UpdatePurchaseOrderRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-orders/{id} [patch]
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req procurementapp.UpdatePurchaseOrderRequest
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
// @Summary      Delete a purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
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
