package handler

import (
	"errors"
	"net/http"

	"github.com/argos/backend/internal/domain/shared"
	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/argos/backend/internal/interfaces/http/dto"
	"github.com/argos/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response carrying the new record's id
func (h *BaseHandler) Created(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id.String()}))
}

// Affected sends a 200 response carrying the id of the updated or deleted record
func (h *BaseHandler) Affected(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.IDResponse{ID: id.String()}))
}

// Error sends an error response with the given status
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message)
}

// InternalError sends a 500 response without leaking the cause
func (h *BaseHandler) InternalError(c *gin.Context) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// HandleError converts domain errors to HTTP responses. Anything else is logged
// and reported as an internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		logger.GetGinLogger(c).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		h.InternalError(c)
		return
	}

	code := dto.NormalizeErrorCode(domainErr.Code)
	status := dto.GetHTTPStatus(code)

	if code == dto.ErrCodeValidation {
		var details []dto.ValidationDetail
		if field, ok := dto.FieldFromErrorCode(domainErr.Code); ok {
			details = []dto.ValidationDetail{{Field: field, Message: domainErr.Message}}
		}
		c.JSON(status, dto.NewValidationErrorResponse(domainErr.Message, getRequestID(c), details))
		return
	}

	if status >= http.StatusInternalServerError {
		logger.GetGinLogger(c).Error("Request failed", zap.String("code", domainErr.Code), zap.Error(err))
	}
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, domainErr.Message, getRequestID(c)))
}

// userID returns the authenticated caller or writes a 401
func (h *BaseHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the :id path parameter or writes a 400
func (h *BaseHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds and validates the request body or writes a 400 with field details
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery binds and validates query parameters or writes a 400 with field details
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// listPage returns the page and page size a list filter resolves to
func listPage(page, pageSize int) (int, int) {
	filter := shared.NewFilter(page, pageSize, "", "")
	return filter.Page, filter.PageSize
}
