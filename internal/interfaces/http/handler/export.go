package handler

import (
	"fmt"
	"net/http"

	exportapp "github.com/argos/backend/internal/application/export"
	"github.com/gin-gonic/gin"
)

// ExportHandler renders report sections to a file and delivers it
type ExportHandler struct {
	BaseHandler
	service *exportapp.Service
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(service *exportapp.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export godoc
// @Summary      Export report sections
// @Description  download streams the file back. storage uploads it and returns a presigned URL.
// @Description  email sends it as an attachment to the given address or the caller's own.
// @Tags         exports
// @Accept       json
// @Produce      json,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request body exportapp.ExportRequest true "Sections, format and delivery"
// @Success      200 {file} file "download delivery"
// @Success      200 {object} APIResponse[exportapp.StoredExportResponse] "storage delivery"
// @Success      200 {object} APIResponse[exportapp.EmailedExportResponse] "email delivery"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /exports [post]
func (h *ExportHandler) Export(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req exportapp.ExportRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.service.Export(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	switch {
	case result.Stored != nil:
		h.Success(c, result.Stored)
	case result.Emailed != nil:
		h.Success(c, result.Emailed)
	default:
		file := result.File
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
		c.Data(http.StatusOK, file.ContentType, file.Data)
	}
}
