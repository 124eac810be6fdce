package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Gym представляет спортзал, в котором пользователь может отметиться
type Gym struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Phone       string         `json:"phone"`
	Latitude    pgtype.Numeric `json:"latitude"`
	Longitude   pgtype.Numeric `json:"longitude"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewCoordinate переводит координату в градусах в decimal
func NewCoordinate(value float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("invalid coordinate %v: %w", value, err)
	}
	return n, nil
}

// CoordinateToFloat возвращает decimal координату как float64
func CoordinateToFloat(n pgtype.Numeric) (float64, error) {
	f, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("failed to convert coordinate: %w", err)
	}
	if !f.Valid {
		return 0, fmt.Errorf("coordinate is null")
	}
	return f.Float64, nil
}
