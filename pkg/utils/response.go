package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/contextkeys"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

// ValidationErrorDetail — одна непройденная проверка поля.
type ValidationErrorDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	withPagination, _ := strconv.ParseBool(ctx.QueryParam("withPagination"))
	if withPagination && len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		totalPages := 0
		if filter.Limit > 0 {
			totalPages = (int(total[0]) + filter.Limit - 1) / filter.Limit
		}
		pagination := map[string]interface{}{
			"total_count": total[0],
			"page":        filter.Page,
			"limit":       filter.Limit,
			"total_pages": totalPages,
		}
		response.Body = map[string]interface{}{"list": body, "pagination": pagination}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

// ErrorResponse переводит ошибку в HTTP-ответ. Техническая причина уходит
// в лог; клиент видит только пользовательское сообщение. Неопознанные
// ошибки схлопываются в 500 без деталей.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	requestID := c.Request().Context().Value(contextkeys.RequestIDKey)

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
				zap.Any("request_id", requestID),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}

		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]ValidationErrorDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, ValidationErrorDetail{Field: e.Field(), Rule: e.Tag()})
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Validation failed",
			"body":    details,
		})
	}

	logger.Error("Unexpected Error", zap.Error(err), zap.Any("request_id", requestID))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Internal server error",
	})
}

// NewValidationDetails собирает Details для ручных проверок вне validator.
func NewValidationDetails(pairs ...string) []ValidationErrorDetail {
	details := make([]ValidationErrorDetail, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		details = append(details, ValidationErrorDetail{Field: pairs[i], Rule: pairs[i+1]})
	}
	return details
}
