package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Сентинельные ошибки доменного слоя.
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrConflict     = errors.New("нарушение бизнес-правила")
	ErrBadRequest   = errors.New("неверный запрос")
)

// HttpError — ошибка, готовая к отдаче клиенту: HTTP-код, пользовательское
// сообщение и обёрнутая техническая причина. Причина попадает только в лог,
// в тело ответа — никогда.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// NewValidationError — 400 со списком ошибок по полям в Details.
func NewValidationError(message string, details interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Err: ErrBadRequest, Details: details}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError — нарушение бизнес-правила (занятый слот, недоступный
// статус и т.п.). API отдаёт такие ошибки с кодом 400.
func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Err: ErrConflict}
}
