package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGymRequest DTO для создания спортзала
// @Description DTO для создания спортзала
type CreateGymRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Phone       string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// GymResponse DTO для ответа с информацией о спортзале
// @Description DTO для ответа с информацией о спортзале
type GymResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckInRequest DTO для отметки в спортзале
// @Description DTO для отметки в спортзале
type CheckInRequest struct {
	UserID    string   `json:"user_id" validate:"required,uuid"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CheckInResponse DTO для ответа с информацией об отметке
// @Description DTO для ответа с информацией об отметке
type CheckInResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	GymID       uuid.UUID  `json:"gym_id"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MetricsResponse DTO для ответа с метриками пользователя
// @Description DTO для ответа с метриками пользователя
type MetricsResponse struct {
	CheckInsCount int `json:"check_ins_count"`
}
