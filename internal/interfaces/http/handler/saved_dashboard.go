package handler

import (
	dashboardapp "github.com/argos/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// SavedDashboardHandler handles saved dashboards endpoints
type SavedDashboardHandler struct {
	BaseHandler
	service *dashboardapp.SavedDashboardService
}

// NewSavedDashboardHandler creates a new SavedDashboardHandler
func NewSavedDashboardHandler(service *dashboardapp.SavedDashboardService) *SavedDashboardHandler {
	return &SavedDashboardHandler{service: service}
}

// Create godoc
// @Summary      Create a saved dashboard
// @Tags         saved-dashboards
// @Accept       json
// @Produce      json
// @Param        request body dashboardapp.CreateSavedDashboardRequest true "Saved dashboard to create"
// @Success      201 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards [post]
func (h *SavedDashboardHandler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req dashboardapp.CreateSavedDashboardRequest
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
// @Summary      Get a saved dashboard
// @Tags         saved-dashboards
// @Produce      json
// @Param        id path string true "Saved dashboard ID" format(uuid)
// @Success      200 {object} APIResponse[dashboardapp.SavedDashboardResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards/{id} [get]
func (h *SavedDashboardHandler) GetByID(c *gin.Context) {
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
// @Summary      List the caller's saved dashboards
// @Tags         saved-dashboards
// @Produce      json
// @Param        is_shared query boolean false "Filter by sharing"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        order_by query string false "Sort column" default(created_at)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} APIResponse[[]dashboardapp.SavedDashboardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards [get]
func (h *SavedDashboardHandler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var filter dashboardapp.SavedDashboardListFilter
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
// @Summary      Partially update a saved dashboard
// @Description  Only the fields present in the body are changed
// @Tags         saved-dashboards
// @Accept       json
// @Produce      json
// @Param        id path string true "Saved dashboard ID" format(uuid)
// @Param        request body dashboardapp.UpdateSavedDashboardRequest true "Fields to change"
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards/{id} [patch]
func (h *SavedDashboardHandler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dashboardapp.UpdateSavedDashboardRequest
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
// @Summary      Delete a saved dashboard
// @Tags         saved-dashboards
// @Produce      json
// @Param        id path string true "Saved dashboard ID" format(uuid)
// @Success      200 {object} APIResponse[dto.IDResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards/{id} [delete]
func (h *SavedDashboardHandler) Delete(c *gin.Context) {
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

// View godoc
// @Summary      Open a saved dashboard
// @Description  Stamps last_viewed and regenerates the widgets from the stored query
// @Tags         saved-dashboards
// @Produce      json
// @Param        id path string true "Saved dashboard ID" format(uuid)
// @Success      200 {object} APIResponse[dashboardapp.DashboardViewResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /saved-dashboards/{id}/view [post]
func (h *SavedDashboardHandler) View(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.service.View(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}
