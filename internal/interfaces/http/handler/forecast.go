package handler

import (
	forecastapp "github.com/argos/backend/internal/application/forecast"
	"github.com/gin-gonic/gin"
)

// ForecastHandler handles forecasts endpoints
type ForecastHandler struct {
	BaseHandler
	service *forecastapp.Service
}

// NewForecastHandler creates a new ForecastHandler
func NewForecastHandler(service *forecastapp.Service) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// Create godoc
// @Summary      Create a forecast
// @Tags         forecasts
// @Accept       json
// @Produce      json
// @Param        request body forecastapp.CreateForecastRequest true "Forecast to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /forecasts [post]
func (h *ForecastHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req forecastapp.CreateForecastRequest
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
// @Summary      Get a forecast
// @Tags         forecasts
// @Produce      json
// @Param        id path string true "Forecast ID" format(uuid)
// @Success      200 {object} APIResponse[forecastapp.ForecastResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /forecasts/{id} [get]
func (h *ForecastHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's forecasts
// @Tags         forecasts
// @Produce      json
// @Param        period query string false "Filter by period"
// @Param        channel query string false "Filter by channel"
// @Param        product_category query string false "Filter by product category"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]forecastapp.ForecastResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /forecasts [get]
func (h *ForecastHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter forecastapp.ListFilter
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
// @Summary      Partially update a forecast
// @Description  Only the fields present in the body are changed
// @Tags         forecasts
// @Accept       json
// @Produce      json
// @Param        id path string true "Forecast ID" format(uuid)
// @Param        request body forecastapp.UpdateForecastRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /forecasts/{id} [patch]
func (h *ForecastHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req forecastapp.UpdateForecastRequest
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
// @Summary      Delete a forecast
// @Tags         forecasts
// @Produce      json
// @Param        id path string true "Forecast ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /forecasts/{id} [delete]
func (h *ForecastHandler) Delete(c *gin.Context) {
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
