package entities

import "time"

// User минимален: аутентификации в системе нет, но идентификатор
// пользователя нужен брони и избранному.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
