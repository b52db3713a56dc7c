package contextkeys

type contextKey string

// RequestIDKey хранит request_id в context.Context запроса, чтобы любой
// слой мог привязать свой лог к access-логу.
const RequestIDKey contextKey = "request_id"
