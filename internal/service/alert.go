package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/notifier"
	"github.com/nirapotta/sos-backend/internal/webhook"
	"github.com/nirapotta/sos-backend/pkg/geo"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд тревог
type AlertRepository interface {
	Create(ctx context.Context, alert *models.SOSAlert) error
	GetByAlertID(ctx context.Context, alertID string) (*models.SOSAlert, error)
	AppendLocationUpdate(ctx context.Context, alertID string, update models.LocationUpdate) error
	SetStatus(ctx context.Context, alertID, status string, resolvedAt *time.Time) error
	FindNearbyActive(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*models.SOSAlert, error)
	GetAlertFromCache(ctx context.Context, alertID string) (*models.SOSAlert, error)
	SetAlertCache(ctx context.Context, alert *models.SOSAlert) error
	InvalidateAlertCache(ctx context.Context, alertID string) error
}

// UserRepository определяет контракт справочника пользователей и контактов
type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	FindNearbyRecipients(ctx context.Context, lat, lon, radiusMeters float64, limit int, excludeUserID string) ([]models.NearbyRecipient, error)
}

// StationRepository определяет контракт геопоиска полицейских участков
type StationRepository interface {
	FindNearest(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]models.StationWithDistance, error)
	GetByPhone(ctx context.Context, phone string) (*models.PoliceStation, error)
}

// NotificationDispatcher определяет контракт рассылки по каналам уведомлений
type NotificationDispatcher interface {
	Fanout(ctx context.Context, in notifier.FanoutInput) *notifier.FanoutResult
}

// AlertService определяет контракт бизнес-логики жизненного цикла SOS-тревог
type AlertService interface {
	CreateSOSAlert(ctx context.Context, userID string, lat, lon float64, triggerMethod string) (*models.SOSAlert, error)
	UpdateSOSLocation(ctx context.Context, alertID string, lat, lon, accuracy float64) (*models.SOSAlert, error)
	CancelSOSAlert(ctx context.Context, alertID, requesterUserID string) (*models.SOSAlert, error)
	GetSOSAlert(ctx context.Context, alertID string) (*models.SOSAlert, error)
	GetNearbyAlerts(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.SOSAlert, error)
}

type alertService struct {
	alerts     AlertRepository
	users      UserRepository
	stations   StationRepository
	dispatcher NotificationDispatcher
	publisher  webhook.EventPublisher
	logger     *logrus.Logger
	cfg        *config.Config
}

// NewAlertService создает сервис жизненного цикла тревог
func NewAlertService(
	alerts AlertRepository,
	users UserRepository,
	stations StationRepository,
	dispatcher NotificationDispatcher,
	publisher webhook.EventPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertService{
		alerts:     alerts,
		users:      users,
		stations:   stations,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// newAlertID генерирует человекочитаемый идентификатор тревоги
func newAlertID() string {
	return fmt.Sprintf("SOS-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.New().String()[:8]))
}

// CreateSOSAlert создает тревогу: находит участки и прохожих рядом,
// рассылает уведомления по трем каналам и сохраняет тревогу вместе
// с записями рассылки. Частичные отказы доставки операцию не проваливают:
// она падает только на неизвестном пользователе, невалидных координатах
// или сбое самих запросов обнаружения.
func (s *alertService) CreateSOSAlert(ctx context.Context, userID string, lat, lon float64, triggerMethod string) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateSOSAlert",
		"user_id": userID,
	})
	log.Info("Creating SOS alert")

	if err := geo.ValidatePoint(lat, lon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch triggerMethod {
	case "":
		triggerMethod = models.TriggerMethodButton
	case models.TriggerMethodButton, models.TriggerMethodGesture:
	default:
		return nil, fmt.Errorf("%w: unsupported trigger method %q", ErrInvalidInput, triggerMethod)
	}

	user, err := s.users.GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("User lookup failed for SOS alert")
		return nil, fmt.Errorf("service: could not resolve user: %w", err)
	}

	stations, err := s.stations.FindNearest(ctx, lat, lon, s.cfg.StationSearchRadiusMeters, s.cfg.StationSearchLimit)
	if err != nil {
		log.WithError(err).Error("Station discovery failed")
		return nil, fmt.Errorf("service: station discovery failed: %w", err)
	}

	bystanders, err := s.users.FindNearbyRecipients(ctx, lat, lon, s.cfg.BystanderRadiusMeters, s.cfg.BystanderLimit, userID)
	if err != nil {
		log.WithError(err).Error("Bystander discovery failed")
		return nil, fmt.Errorf("service: bystander discovery failed: %w", err)
	}

	alert := &models.SOSAlert{
		ID:            uuid.New(),
		AlertID:       newAlertID(),
		UserID:        user.UserID,
		UserName:      user.FullName,
		UserPhone:     user.PhoneNumber,
		Latitude:      lat,
		Longitude:     lon,
		Status:        models.AlertStatusActive,
		TriggerMethod: triggerMethod,
	}

	fanout := s.dispatcher.Fanout(ctx, notifier.FanoutInput{
		AlertID:    alert.AlertID,
		UserName:   user.FullName,
		Latitude:   lat,
		Longitude:  lon,
		Stations:   stations,
		Contacts:   user.EmergencyContacts,
		Bystanders: bystanders,
	})

	alert.NotifiedStations = fanout.Stations
	alert.NotifiedContacts = fanout.Contacts
	alert.NotifiedNearbyUsers = fanout.NearbyUsers

	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to persist SOS alert")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	if err := s.alerts.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to cache created alert")
	}

	s.publishEvent(ctx, log, webhook.EventAlertCreated, alert)

	log.WithFields(logrus.Fields{
		"alert_id":   alert.AlertID,
		"stations":   len(alert.NotifiedStations),
		"contacts":   len(alert.NotifiedContacts),
		"bystanders": len(alert.NotifiedNearbyUsers),
	}).Info("SOS alert created")

	return alert, nil
}

// UpdateSOSLocation добавляет ровно одну запись живого трекинга и обновляет
// текущую точку тревоги. Допустимо только для активной тревоги.
func (s *alertService) UpdateSOSLocation(ctx context.Context, alertID string, lat, lon, accuracy float64) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateSOSLocation",
		"alert_id": alertID,
	})

	if err := geo.ValidatePoint(lat, lon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	alert, err := s.getAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status != models.AlertStatusActive {
		log.WithField("status", alert.Status).Warn("Location update rejected for non-active alert")
		return nil, fmt.Errorf("service: alert %s: %w", alertID, ErrAlertNotActive)
	}

	update := models.LocationUpdate{
		Latitude:       lat,
		Longitude:      lon,
		AccuracyMeters: accuracy,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.alerts.AppendLocationUpdate(ctx, alertID, update); err != nil {
		log.WithError(err).Error("Failed to append location update")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	if err := s.alerts.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	alert.LocationUpdates = append(alert.LocationUpdates, update)
	alert.Latitude = lat
	alert.Longitude = lon
	alert.UpdatedAt = update.Timestamp

	log.Info("Alert location updated")
	return alert, nil
}

// CancelSOSAlert переводит тревогу в терминальный статус cancelled.
// Отменить может только владелец и только активную тревогу: повторная
// отмена терминальной тревоги возвращает ErrAlertNotActive, а не no-op.
func (s *alertService) CancelSOSAlert(ctx context.Context, alertID, requesterUserID string) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CancelSOSAlert",
		"alert_id": alertID,
		"user_id":  requesterUserID,
	})

	alert, err := s.getAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.UserID != requesterUserID {
		log.Warn("Cancel rejected: requester is not the alert owner")
		return nil, fmt.Errorf("service: user %s does not own alert %s: %w", requesterUserID, alertID, ErrUnauthorized)
	}
	if alert.Status != models.AlertStatusActive {
		log.WithField("status", alert.Status).Warn("Cancel rejected for non-active alert")
		return nil, fmt.Errorf("service: alert %s: %w", alertID, ErrAlertNotActive)
	}

	now := time.Now().UTC()
	if err := s.alerts.SetStatus(ctx, alertID, models.AlertStatusCancelled, &now); err != nil {
		log.WithError(err).Error("Failed to cancel alert")
		return nil, fmt.Errorf("service: could not cancel alert: %w", err)
	}

	if err := s.alerts.InvalidateAlertCache(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to invalidate alert cache")
	}

	alert.Status = models.AlertStatusCancelled
	alert.ResolvedAt = &now
	alert.UpdatedAt = now

	s.publishEvent(ctx, log, webhook.EventAlertCancelled, alert)

	log.Info("SOS alert cancelled")
	return alert, nil
}

// GetSOSAlert возвращает снимок тревоги, сначала пробуя кеш
func (s *alertService) GetSOSAlert(ctx context.Context, alertID string) (*models.SOSAlert, error) {
	return s.getAlert(ctx, alertID)
}

// GetNearbyAlerts возвращает активные тревоги в радиусе от точки,
// по возрастанию расстояния, не более настроенного лимита
func (s *alertService) GetNearbyAlerts(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "GetNearbyAlerts",
	})

	if err := geo.ValidatePoint(lat, lon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := geo.ValidateRadius(radiusMeters); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	alerts, err := s.alerts.FindNearbyActive(ctx, lat, lon, radiusMeters, s.cfg.NearbyAlertsLimit)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby alerts")
		return nil, fmt.Errorf("service: could not find nearby alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Nearby alerts listed")
	return alerts, nil
}

// getAlert читает тревогу через кеш, при промахе идет в бд и прогревает кеш
func (s *alertService) getAlert(ctx context.Context, alertID string) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"alert_id": alertID,
	})

	cached, err := s.alerts.GetAlertFromCache(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Alert cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	alert, err := s.alerts.GetByAlertID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	if err := s.alerts.SetAlertCache(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to cache alert")
	}
	return alert, nil
}

// publishEvent публикует событие жизненного цикла в очередь вебхуков.
// Отказ публикации тревогу не проваливает.
func (s *alertService) publishEvent(ctx context.Context, log *logrus.Entry, eventType string, alert *models.SOSAlert) {
	event := webhook.AlertEvent{
		Type:      eventType,
		AlertID:   alert.AlertID,
		UserID:    alert.UserID,
		Latitude:  alert.Latitude,
		Longitude: alert.Longitude,
		Status:    alert.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert event")
	}
}
