package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn представляет отметку пользователя в спортзале
type CheckIn struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	GymID       uuid.UUID  `json:"gym_id"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
