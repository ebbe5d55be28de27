package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы SOS-тревоги. Переходы: active -> responded|cancelled|resolved,
// responded -> resolved. Из cancelled и resolved переходов нет.
const (
	AlertStatusActive    = "active"
	AlertStatusResponded = "responded"
	AlertStatusResolved  = "resolved"
	AlertStatusCancelled = "cancelled"
)

// Способы активации тревоги
const (
	TriggerMethodButton  = "button"
	TriggerMethodGesture = "gesture"
)

// Статусы доставки уведомления получателю
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// SOSAlert представляет одну SOS-тревогу с историей уведомлений и перемещений.
// Списки уведомлений и обновлений локации append-only: записи никогда
// не редактируются и не удаляются (аудиторский след).
type SOSAlert struct {
	ID            uuid.UUID `json:"id"`
	AlertID       string    `json:"alert_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserPhone     string    `json:"user_phone"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Status        string    `json:"status"`
	TriggerMethod string    `json:"trigger_method"`

	NotifiedStations    []StationNotification    `json:"notified_stations"`
	NotifiedContacts    []ContactNotification    `json:"notified_contacts"`
	NotifiedNearbyUsers []NearbyUserNotification `json:"notified_nearby_users"`
	LocationUpdates     []LocationUpdate         `json:"location_updates"`

	RespondedBy   string     `json:"responded_by,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	ResponseNotes string     `json:"response_notes,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal сообщает, достигла ли тревога конечного статуса
func (a *SOSAlert) IsTerminal() bool {
	return a.Status == AlertStatusCancelled || a.Status == AlertStatusResolved
}

// StationNotification - запись об уведомлении полицейского участка
type StationNotification struct {
	StationID      string    `json:"station_id"`
	StationName    string    `json:"station_name"`
	DistanceMeters float64   `json:"distance_meters"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// ContactNotification - запись об SMS-уведомлении экстренного контакта
type ContactNotification struct {
	ContactName    string    `json:"contact_name"`
	ContactPhone   string    `json:"contact_phone"`
	DeliveryStatus string    `json:"delivery_status"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// NearbyUserNotification - запись о push-уведомлении пользователя поблизости
type NearbyUserNotification struct {
	UserID         string    `json:"user_id"`
	DistanceMeters float64   `json:"distance_meters"`
	DeliveryStatus string    `json:"delivery_status"`
	NotifiedAt     time.Time `json:"notified_at"`
}

// LocationUpdate - одна точка живого трекинга активной тревоги
type LocationUpdate struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	Timestamp      time.Time `json:"timestamp"`
}
