package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/argos/backend/internal/infrastructure/logger"
	"github.com/argos/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupValidatorOnce sync.Once

// SetupValidator makes gin's validator report fields by their JSON (or form) name.
// Safe to call more than once.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return ""
}

// FormatValidationErrors turns binding errors into a validation envelope.
// Malformed JSON and type mismatches produce an envelope without details.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return dto.NewValidationErrorResponse("Malformed request body", requestID, nil)
	}

	details := make([]dto.ValidationDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, dto.ValidationDetail{Field: fe.Field(), Message: getValidationMessage(fe)})
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError writes a 400 validation response
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, c.GetString(logger.GinRequestIDKey)))
}

// Messages per validator tag. Parameterised ones are completed with the tag param.
var validationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"uuid":     "Invalid UUID format",
	"url":      "Invalid URL format",
	"numeric":  "Must be numeric",
	"alphanum": "Must be alphanumeric",
	"alpha":    "Must contain only letters",
	"oneof":    "Must be one of: ",
	"gte":      "Must be greater than or equal to ",
	"lte":      "Must be less than or equal to ",
	"gt":       "Must be greater than ",
	"lt":       "Must be less than ",
}

func getValidationMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		return lengthOrValue("Must be at least ", fe.Param(), isText)
	case "max":
		return lengthOrValue("Must be at most ", fe.Param(), isText)
	case "len":
		return "Must be exactly " + fe.Param() + " characters"
	}

	msg, ok := validationMessages[fe.Tag()]
	if !ok {
		return "Invalid value"
	}
	if strings.HasSuffix(msg, " ") {
		return msg + fe.Param()
	}
	return msg
}

func lengthOrValue(prefix, param string, isText bool) string {
	if isText {
		return prefix + param + " characters"
	}
	return prefix + param
}
