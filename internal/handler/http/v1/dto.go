package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateSOSRequest DTO для активации SOS-тревоги
// @Description DTO для активации SOS-тревоги
type CreateSOSRequest struct {
	UserID        string  `json:"user_id" validate:"required"`
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	TriggerMethod string  `json:"trigger_method,omitempty" validate:"omitempty,oneof=button gesture"`
}

// UpdateLocationRequest DTO для живого трекинга активной тревоги
// @Description DTO для живого трекинга активной тревоги
type UpdateLocationRequest struct {
	Latitude       float64 `json:"latitude" validate:"latitude"`
	Longitude      float64 `json:"longitude" validate:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters,omitempty" validate:"gte=0"`
}

// CancelSOSRequest DTO для отмены тревоги владельцем
// @Description DTO для отмены тревоги владельцем
type CancelSOSRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// StationNotificationResponse - запись об уведомлении участка
type StationNotificationResponse struct {
	StationID      string    `json:"station_id"`
	StationName    string    `json:"station_name"`
	DistanceMeters float64   `json:"distance_meters"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// ContactNotificationResponse - запись об SMS экстренному контакту
type ContactNotificationResponse struct {
	ContactName    string    `json:"contact_name"`
	ContactPhone   string    `json:"contact_phone"`
	DeliveryStatus string    `json:"delivery_status"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// NearbyUserNotificationResponse - запись о push пользователю поблизости
type NearbyUserNotificationResponse struct {
	UserID         string    `json:"user_id"`
	DistanceMeters float64   `json:"distance_meters"`
	DeliveryStatus string    `json:"delivery_status"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// LocationUpdateResponse - одна точка трекинга
type LocationUpdateResponse struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
}

// SOSAlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type SOSAlertResponse struct {
	ID            uuid.UUID `json:"id"`
	AlertID       string    `json:"alert_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserPhone     string    `json:"user_phone"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Status        string    `json:"status"`
	TriggerMethod string    `json:"trigger_method"`

	NotifiedStations    []StationNotificationResponse    `json:"notified_stations"`
	NotifiedContacts    []ContactNotificationResponse    `json:"notified_contacts"`
	NotifiedNearbyUsers []NearbyUserNotificationResponse `json:"notified_nearby_users"`
	LocationUpdates     []LocationUpdateResponse         `json:"location_updates"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FaceBoxResponse - прямоугольник лица на изображении
type FaceBoxResponse struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RecognizedFaceResponse - опознанное лицо
type RecognizedFaceResponse struct {
	Name       string          `json:"name"`
	Confidence float64         `json:"confidence"`
	Box        FaceBoxResponse `json:"box"`
}

// UnknownFaceResponse - неопознанное лицо
type UnknownFaceResponse struct {
	Box FaceBoxResponse `json:"box"`
}

// ImageScanResponse DTO для результата сканирования изображения
// @Description DTO для результата сканирования изображения
type ImageScanResponse struct {
	Recognized []RecognizedFaceResponse `json:"recognized"`
	Unknown    []UnknownFaceResponse    `json:"unknown"`
	TotalFaces int                      `json:"total_faces"`
}

// EvidenceResponse DTO для результата обработки видеодоказательства
// @Description DTO для результата обработки видеодоказательства
type EvidenceResponse struct {
	StationName          string `json:"station_name"`
	StationEmail         string `json:"station_email"`
	MatchCount           int    `json:"match_count"`
	UnknownCount         int    `json:"unknown_count"`
	RecognitionAvailable bool   `json:"recognition_available"`
}

// ReloadWatchlistResponse DTO для результата перезагрузки watchlist
// @Description DTO для результата перезагрузки watchlist
type ReloadWatchlistResponse struct {
	SampleCount int `json:"sample_count"`
}
