package handler

import (
	analyticsapp "github.com/argos/backend/internal/application/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the read-only business dataset
type AnalyticsHandler struct {
	BaseHandler
	service *analyticsapp.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service *analyticsapp.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// ListSections godoc
// @Summary      List report sections
// @Tags         analytics
// @Produce      json
// @Success      200 {object} APIResponse[[]analyticsapp.SectionResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/sections [get]
func (h *AnalyticsHandler) ListSections(c *gin.Context) {
	h.Success(c, h.service.ListSections())
}

// GetSection godoc
// @Summary      Get a report section with its rows
// @Tags         analytics
// @Produce      json
// @Param        section path string true "Section id" Enums(executive_kpis, revenue, channels, production, products, inventory, logistics, support, suppliers, forecast, retail_kpis, industry_kpis)
// @Success      200 {object} APIResponse[analyticsapp.SectionDataResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/sections/{section} [get]
func (h *AnalyticsHandler) GetSection(c *gin.Context) {
	section, err := h.service.GetSection(c.Param("section"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, section)
}
