package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// GetByUserID возвращает пользователя с его экстренными контактами
func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT
			user_id,
			full_name,
			phone_number,
			COALESCE(email, ''),
			emergency_contacts,
			ST_Y(last_known_location::geometry) as latitude,
			ST_X(last_known_location::geometry) as longitude,
			COALESCE(fcm_token, ''),
			receive_nearby_alerts
		FROM users
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.FullName,
		&user.PhoneNumber,
		&user.Email,
		&user.EmergencyContacts,
		&user.LastKnownLatitude,
		&user.LastKnownLongitude,
		&user.FCMToken,
		&user.ReceiveNearbyAlerts,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by user_id: %w", err)
	}
	return user, nil
}

// FindNearbyRecipients возвращает пользователей в радиусе от точки,
// согласившихся на оповещения и имеющих push-токен. Сам отправитель исключается.
func (r *UserRepository) FindNearbyRecipients(ctx context.Context, lat, lon, radiusMeters float64, limit int, excludeUserID string) ([]models.NearbyRecipient, error) {
	query := `
		SELECT
			user_id,
			fcm_token,
			ST_Distance(
				last_known_location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) as distance_meters
		FROM users
		WHERE
			user_id != $3
			AND receive_nearby_alerts = TRUE
			AND fcm_token IS NOT NULL
			AND fcm_token != ''
			AND last_known_location IS NOT NULL
			AND ST_DWithin(
				last_known_location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$4
			)
		ORDER BY distance_meters
		LIMIT $5;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, excludeUserID, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]models.NearbyRecipient, 0)
	for rows.Next() {
		var rec models.NearbyRecipient
		if err := rows.Scan(&rec.UserID, &rec.FCMToken, &rec.DistanceMeters); err != nil {
			return nil, fmt.Errorf("failed to scan nearby recipient row: %w", err)
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nearby recipients: %w", err)
	}
	return recipients, nil
}
