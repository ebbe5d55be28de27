package models

import "time"

// User - профиль пользователя в объеме, который нужен координатору тревог.
// Аутентификация и CRUD профиля живут в отдельном сервисе.
type User struct {
	UserID              string             `json:"user_id"`
	FullName            string             `json:"full_name"`
	PhoneNumber         string             `json:"phone_number"`
	Email               string             `json:"email,omitempty"`
	EmergencyContacts   []EmergencyContact `json:"emergency_contacts"`
	LastKnownLatitude   *float64           `json:"last_known_latitude,omitempty"`
	LastKnownLongitude  *float64           `json:"last_known_longitude,omitempty"`
	FCMToken            string             `json:"-"`
	ReceiveNearbyAlerts bool               `json:"receive_nearby_alerts"`
	CreatedAt           time.Time          `json:"created_at"`
}

// EmergencyContact - доверенный контакт пользователя.
// Пара (пользователь, телефон) уникальна.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

// NearbyRecipient - пользователь поблизости, согласившийся получать
// push-уведомления о чужих тревогах
type NearbyRecipient struct {
	UserID         string  `json:"user_id"`
	FCMToken       string  `json:"-"`
	DistanceMeters float64 `json:"distance_meters"`
}
