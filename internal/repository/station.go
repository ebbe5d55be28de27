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

type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) service.StationRepository {
	return &StationRepository{db: db}
}

// FindNearest возвращает активные участки в радиусе от точки
// по возрастанию расстояния
func (r *StationRepository) FindNearest(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]models.StationWithDistance, error) {
	query := `
		SELECT
			id,
			station_id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			COALESCE(address, ''),
			phone,
			COALESCE(email, ''),
			is_active,
			created_at,
			updated_at,
			ST_Distance(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
			) as distance_meters
		FROM police_stations
		WHERE
			is_active = TRUE
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY distance_meters
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearest stations: %w", err)
	}
	defer rows.Close()

	stations := make([]models.StationWithDistance, 0)
	for rows.Next() {
		var s models.StationWithDistance
		err := rows.Scan(
			&s.ID,
			&s.StationID,
			&s.Name,
			&s.Latitude,
			&s.Longitude,
			&s.Address,
			&s.Phone,
			&s.Email,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.DistanceMeters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}
	return stations, nil
}

// GetByPhone возвращает активный участок по номеру телефона
func (r *StationRepository) GetByPhone(ctx context.Context, phone string) (*models.PoliceStation, error) {
	station := &models.PoliceStation{}
	query := `
		SELECT
			id,
			station_id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			COALESCE(address, ''),
			phone,
			COALESCE(email, ''),
			is_active,
			created_at,
			updated_at
		FROM police_stations
		WHERE phone = $1 AND is_active = TRUE;
	`
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&station.ID,
		&station.StationID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
		&station.Address,
		&station.Phone,
		&station.Email,
		&station.IsActive,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("station with phone %s: %w", phone, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get station by phone: %w", err)
	}
	return station, nil
}
