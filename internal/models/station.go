package models

import (
	"time"

	"github.com/google/uuid"
)

// PoliceStation представляет полицейский участок с контактными каналами.
// Во время жизни тревоги участок неизменяем, административные правки
// выполняются вне этого сервиса.
type PoliceStation struct {
	ID        uuid.UUID `json:"id"`
	StationID string    `json:"station_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StationWithDistance - участок вместе с расстоянием до точки запроса
type StationWithDistance struct {
	PoliceStation
	DistanceMeters float64 `json:"distance_meters"`
}
