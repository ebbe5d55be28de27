package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/service"
	"github.com/redis/go-redis/v9"
)

// Срок жизни кеша снимка тревоги
const alertCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create сохраняет тревогу вместе с записями рассылки одной транзакцией
func (r *AlertRepository) Create(ctx context.Context, alert *models.SOSAlert) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin alert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sos_alerts (id, alert_id, user_id, user_name, user_phone, location, status, trigger_method)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9)
		RETURNING created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		alert.ID,
		alert.AlertID,
		alert.UserID,
		alert.UserName,
		alert.UserPhone,
		alert.Longitude,
		alert.Latitude,
		alert.Status,
		alert.TriggerMethod,
	).Scan(&alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sos alert: %w", err)
	}

	// Записи рассылки уходят одним batch вместо отдельных round-trip'ов
	batch := &pgx.Batch{}
	for _, n := range alert.NotifiedStations {
		batch.Queue(`
			INSERT INTO alert_station_notifications (alert_id, station_id, station_name, distance_meters, notified_at)
			VALUES ($1, $2, $3, $4, $5);
		`, alert.AlertID, n.StationID, n.StationName, n.DistanceMeters, n.NotifiedAt)
	}
	for _, n := range alert.NotifiedContacts {
		batch.Queue(`
			INSERT INTO alert_contact_notifications (alert_id, contact_name, contact_phone, delivery_status, notified_at)
			VALUES ($1, $2, $3, $4, $5);
		`, alert.AlertID, n.ContactName, n.ContactPhone, n.DeliveryStatus, n.NotifiedAt)
	}
	for _, n := range alert.NotifiedNearbyUsers {
		batch.Queue(`
			INSERT INTO alert_nearby_notifications (alert_id, user_id, distance_meters, delivery_status, notified_at)
			VALUES ($1, $2, $3, $4, $5);
		`, alert.AlertID, n.UserID, n.DistanceMeters, n.DeliveryStatus, n.NotifiedAt)
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert notification record: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close notification batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit alert tx: %w", err)
	}
	return nil
}

// GetByAlertID возвращает тревогу по публичному идентификатору
// вместе со всеми записями рассылки и историей перемещений
func (r *AlertRepository) GetByAlertID(ctx context.Context, alertID string) (*models.SOSAlert, error) {
	alert := &models.SOSAlert{}
	query := `
		SELECT
			id,
			alert_id,
			user_id,
			user_name,
			user_phone,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			status,
			trigger_method,
			COALESCE(responded_by, ''),
			responded_at,
			COALESCE(response_notes, ''),
			resolved_at,
			created_at,
			updated_at
		FROM sos_alerts
		WHERE alert_id = $1;
	`
	err := r.db.QueryRow(ctx, query, alertID).Scan(
		&alert.ID,
		&alert.AlertID,
		&alert.UserID,
		&alert.UserName,
		&alert.UserPhone,
		&alert.Latitude,
		&alert.Longitude,
		&alert.Status,
		&alert.TriggerMethod,
		&alert.RespondedBy,
		&alert.RespondedAt,
		&alert.ResponseNotes,
		&alert.ResolvedAt,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by alert_id: %w", err)
	}

	if err := r.loadAlertChildren(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *AlertRepository) loadAlertChildren(ctx context.Context, alert *models.SOSAlert) error {
	rows, err := r.db.Query(ctx, `
		SELECT station_id, station_name, distance_meters, notified_at
		FROM alert_station_notifications
		WHERE alert_id = $1
		ORDER BY notified_at;
	`, alert.AlertID)
	if err != nil {
		return fmt.Errorf("failed to load station notifications: %w", err)
	}
	defer rows.Close()
	alert.NotifiedStations = make([]models.StationNotification, 0)
	for rows.Next() {
		var n models.StationNotification
		if err := rows.Scan(&n.StationID, &n.StationName, &n.DistanceMeters, &n.NotifiedAt); err != nil {
			return fmt.Errorf("failed to scan station notification: %w", err)
		}
		alert.NotifiedStations = append(alert.NotifiedStations, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating station notifications: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT contact_name, contact_phone, delivery_status, notified_at
		FROM alert_contact_notifications
		WHERE alert_id = $1
		ORDER BY notified_at;
	`, alert.AlertID)
	if err != nil {
		return fmt.Errorf("failed to load contact notifications: %w", err)
	}
	defer rows.Close()
	alert.NotifiedContacts = make([]models.ContactNotification, 0)
	for rows.Next() {
		var n models.ContactNotification
		if err := rows.Scan(&n.ContactName, &n.ContactPhone, &n.DeliveryStatus, &n.NotifiedAt); err != nil {
			return fmt.Errorf("failed to scan contact notification: %w", err)
		}
		alert.NotifiedContacts = append(alert.NotifiedContacts, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating contact notifications: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT user_id, distance_meters, delivery_status, notified_at
		FROM alert_nearby_notifications
		WHERE alert_id = $1
		ORDER BY notified_at;
	`, alert.AlertID)
	if err != nil {
		return fmt.Errorf("failed to load nearby notifications: %w", err)
	}
	defer rows.Close()
	alert.NotifiedNearbyUsers = make([]models.NearbyUserNotification, 0)
	for rows.Next() {
		var n models.NearbyUserNotification
		if err := rows.Scan(&n.UserID, &n.DistanceMeters, &n.DeliveryStatus, &n.NotifiedAt); err != nil {
			return fmt.Errorf("failed to scan nearby notification: %w", err)
		}
		alert.NotifiedNearbyUsers = append(alert.NotifiedNearbyUsers, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating nearby notifications: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			accuracy_meters,
			recorded_at
		FROM alert_location_updates
		WHERE alert_id = $1
		ORDER BY recorded_at;
	`, alert.AlertID)
	if err != nil {
		return fmt.Errorf("failed to load location updates: %w", err)
	}
	defer rows.Close()
	alert.LocationUpdates = make([]models.LocationUpdate, 0)
	for rows.Next() {
		var u models.LocationUpdate
		if err := rows.Scan(&u.Latitude, &u.Longitude, &u.AccuracyMeters, &u.Timestamp); err != nil {
			return fmt.Errorf("failed to scan location update: %w", err)
		}
		alert.LocationUpdates = append(alert.LocationUpdates, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating location updates: %w", err)
	}
	return nil
}

// AppendLocationUpdate добавляет точку трекинга и двигает текущую позицию тревоги
func (r *AlertRepository) AppendLocationUpdate(ctx context.Context, alertID string, update models.LocationUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin location update tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO alert_location_updates (alert_id, location, accuracy_meters, recorded_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5);
	`, alertID, update.Longitude, update.Latitude, update.AccuracyMeters, update.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert location update: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE sos_alerts SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			updated_at = NOW()
		WHERE alert_id = $3;
	`, update.Longitude, update.Latitude, alertID)
	if err != nil {
		return fmt.Errorf("failed to move alert location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit location update tx: %w", err)
	}
	return nil
}

// SetStatus обновляет статус тревоги и момент ее закрытия
func (r *AlertRepository) SetStatus(ctx context.Context, alertID, status string, resolvedAt *time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE sos_alerts SET
			status = $1,
			resolved_at = $2,
			updated_at = NOW()
		WHERE alert_id = $3;
	`, status, resolvedAt, alertID)
	if err != nil {
		return fmt.Errorf("failed to set alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
	}
	return nil
}

// FindNearbyActive возвращает активные тревоги в радиусе от точки
// по возрастанию расстояния. Списки рассылки для списочной выдачи не грузятся.
func (r *AlertRepository) FindNearbyActive(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*models.SOSAlert, error) {
	query := `
		SELECT
			id,
			alert_id,
			user_id,
			user_name,
			user_phone,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			status,
			trigger_method,
			created_at,
			updated_at
		FROM sos_alerts
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY ST_Distance(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
		)
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SOSAlert, 0)
	for rows.Next() {
		alert := &models.SOSAlert{}
		err := rows.Scan(
			&alert.ID,
			&alert.AlertID,
			&alert.UserID,
			&alert.UserName,
			&alert.UserPhone,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Status,
			&alert.TriggerMethod,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nearby alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nearby alerts: %w", err)
	}
	return alerts, nil
}

// GetAlertFromCache пытается получить снимок тревоги из Redis
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, alertID string) (*models.SOSAlert, error) {
	key := fmt.Sprintf("sos_alert:%s", alertID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.SOSAlert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache сохраняет снимок тревоги в Redis
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.SOSAlert) error {
	key := fmt.Sprintf("sos_alert:%s", alert.AlertID)
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, alertCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// InvalidateAlertCache удаляет снимок тревоги из Redis
func (r *AlertRepository) InvalidateAlertCache(ctx context.Context, alertID string) error {
	key := fmt.Sprintf("sos_alert:%s", alertID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}
