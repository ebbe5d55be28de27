package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/notifier"
	"github.com/nirapotta/sos-backend/internal/service/mocks"
	"github.com/nirapotta/sos-backend/internal/webhook"
	webhook_mocks "github.com/nirapotta/sos-backend/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertServiceMocks struct {
	alerts     *mocks.MockAlertRepository
	users      *mocks.MockUserRepository
	stations   *mocks.MockStationRepository
	dispatcher *mocks.MockNotificationDispatcher
	publisher  *webhook_mocks.MockEventPublisher
}

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *alertServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &alertServiceMocks{
		alerts:     mocks.NewMockAlertRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		stations:   mocks.NewMockStationRepository(ctrl),
		dispatcher: mocks.NewMockNotificationDispatcher(ctrl),
		publisher:  webhook_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StationSearchRadiusMeters: 10000,
		StationSearchLimit:        3,
		BystanderRadiusMeters:     500,
		BystanderLimit:            50,
		NearbyAlertsRadiusMeters:  5000,
		NearbyAlertsLimit:         20,
	}

	service := NewAlertService(m.alerts, m.users, m.stations, m.dispatcher, m.publisher, logger, cfg)
	return service.(*alertService), m
}

func TestCreateSOSAlert_Success_NoRecipients(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{
		UserID:      "user-1",
		FullName:    "Elena Petrova",
		PhoneNumber: "+8801700000001",
	}

	// Ожидания
	m.users.EXPECT().
		GetByUserID(ctx, "user-1").
		Return(user, nil).
		Times(1)

	m.stations.EXPECT().
		FindNearest(ctx, 23.8103, 90.4125, 10000.0, 3).
		Return(nil, nil).
		Times(1)

	m.users.EXPECT().
		FindNearbyRecipients(ctx, 23.8103, 90.4125, 500.0, 50, "user-1").
		Return(nil, nil).
		Times(1)

	m.dispatcher.EXPECT().
		Fanout(ctx, gomock.Any()).
		Return(&notifier.FanoutResult{}).
		Times(1)

	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.alerts.EXPECT().
		SetAlertCache(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	alert, err := service.CreateSOSAlert(ctx, "user-1", 23.8103, 90.4125, "")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Equal(t, models.TriggerMethodButton, alert.TriggerMethod)
	assert.Equal(t, "Elena Petrova", alert.UserName)
	assert.NotEmpty(t, alert.AlertID)
	assert.Empty(t, alert.NotifiedStations)
	assert.Empty(t, alert.NotifiedContacts)
	assert.Empty(t, alert.NotifiedNearbyUsers)
}

func TestCreateSOSAlert_PartialDeliveryFailuresRecorded(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	user := &models.User{
		UserID:      "user-1",
		FullName:    "Elena Petrova",
		PhoneNumber: "+8801700000001",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Mother", Phone: "+8801700000002"},
			{Name: "Brother", Phone: "+8801700000003"},
			{Name: "Friend", Phone: "+8801700000004"},
		},
	}
	fanout := &notifier.FanoutResult{
		Contacts: []models.ContactNotification{
			{ContactName: "Mother", ContactPhone: "+8801700000002", DeliveryStatus: models.DeliveryStatusSent},
			{ContactName: "Brother", ContactPhone: "+8801700000003", DeliveryStatus: models.DeliveryStatusFailed},
			{ContactName: "Friend", ContactPhone: "+8801700000004", DeliveryStatus: models.DeliveryStatusFailed},
		},
		ContactSummary: notifier.ChannelSummary{Attempted: 3, Succeeded: 1, Failed: 2},
	}

	// Ожидания
	m.users.EXPECT().GetByUserID(ctx, "user-1").Return(user, nil).Times(1)
	m.stations.EXPECT().FindNearest(ctx, 23.8103, 90.4125, 10000.0, 3).Return(nil, nil).Times(1)
	m.users.EXPECT().FindNearbyRecipients(ctx, 23.8103, 90.4125, 500.0, 50, "user-1").Return(nil, nil).Times(1)
	m.dispatcher.EXPECT().Fanout(ctx, gomock.Any()).Return(fanout).Times(1)

	// Частичные отказы доставки не мешают сохранению тревоги
	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			assert.Len(t, alert.NotifiedContacts, 3)
			return nil
		}).
		Times(1)
	m.alerts.EXPECT().SetAlertCache(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	alert, err := service.CreateSOSAlert(ctx, "user-1", 23.8103, 90.4125, models.TriggerMethodGesture)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, alert.NotifiedContacts, 3)
	assert.Equal(t, models.DeliveryStatusFailed, alert.NotifiedContacts[1].DeliveryStatus)
}

func TestCreateSOSAlert_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, _ := newTestAlertService(t)
	ctx := context.Background()

	// Действие
	alert, err := service.CreateSOSAlert(ctx, "user-1", 91.0, 0.0, "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, alert)
}

func TestCreateSOSAlert_UnsupportedTriggerMethod(t *testing.T) {
	// Подготовка
	service, _ := newTestAlertService(t)
	ctx := context.Background()

	// Действие
	alert, err := service.CreateSOSAlert(ctx, "user-1", 23.8103, 90.4125, "telepathy")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, alert)
}

func TestCreateSOSAlert_UnknownUser(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	m.users.EXPECT().
		GetByUserID(ctx, "ghost").
		Return(nil, fmt.Errorf("user not found: %w", ErrNotFound)).
		Times(1)

	// Действие
	alert, err := service.CreateSOSAlert(ctx, "ghost", 23.8103, 90.4125, "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, alert)
}

func TestUpdateSOSLocation_Success_AppendsSingleUpdate(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	stored := &models.SOSAlert{
		AlertID:   "SOS-1-ABCDEF01",
		UserID:    "user-1",
		Latitude:  23.8103,
		Longitude: 90.4125,
		Status:    models.AlertStatusActive,
	}

	// Ожидания
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)
	m.alerts.EXPECT().
		AppendLocationUpdate(ctx, "SOS-1-ABCDEF01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.LocationUpdate) error {
			assert.Equal(t, 23.8110, update.Latitude)
			assert.Equal(t, 90.4130, update.Longitude)
			assert.Equal(t, 12.5, update.AccuracyMeters)
			return nil
		}).
		Times(1)
	m.alerts.EXPECT().InvalidateAlertCache(ctx, "SOS-1-ABCDEF01").Return(nil).Times(1)

	// Действие
	alert, err := service.UpdateSOSLocation(ctx, "SOS-1-ABCDEF01", 23.8110, 90.4130, 12.5)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alert.LocationUpdates, 1)
	assert.Equal(t, 23.8110, alert.Latitude)
	assert.Equal(t, 90.4130, alert.Longitude)
}

func TestUpdateSOSLocation_RejectedForCancelledAlert(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	resolvedAt := time.Now().UTC()
	stored := &models.SOSAlert{
		AlertID:    "SOS-1-ABCDEF01",
		UserID:     "user-1",
		Status:     models.AlertStatusCancelled,
		ResolvedAt: &resolvedAt,
	}

	// Ожидания
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)

	// Действие
	alert, err := service.UpdateSOSLocation(ctx, "SOS-1-ABCDEF01", 23.8110, 90.4130, 5.0)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertNotActive)
	assert.Nil(t, alert)
}

func TestCancelSOSAlert_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	stored := &models.SOSAlert{
		AlertID: "SOS-1-ABCDEF01",
		UserID:  "user-1",
		Status:  models.AlertStatusActive,
	}

	// Ожидания
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)
	m.alerts.EXPECT().
		SetStatus(ctx, "SOS-1-ABCDEF01", models.AlertStatusCancelled, gomock.Any()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().InvalidateAlertCache(ctx, "SOS-1-ABCDEF01").Return(nil).Times(1)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.AlertEvent) error {
			assert.Equal(t, webhook.EventAlertCancelled, event.Type)
			return nil
		}).
		Times(1)

	// Действие
	alert, err := service.CancelSOSAlert(ctx, "SOS-1-ABCDEF01", "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusCancelled, alert.Status)
	require.NotNil(t, alert.ResolvedAt)
}

func TestCancelSOSAlert_NotOwner(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	stored := &models.SOSAlert{
		AlertID: "SOS-1-ABCDEF01",
		UserID:  "user-1",
		Status:  models.AlertStatusActive,
	}

	// Ожидания
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)

	// Действие
	alert, err := service.CancelSOSAlert(ctx, "SOS-1-ABCDEF01", "intruder")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, alert)
}

func TestCancelSOSAlert_AlreadyTerminal(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	stored := &models.SOSAlert{
		AlertID: "SOS-1-ABCDEF01",
		UserID:  "user-1",
		Status:  models.AlertStatusResolved,
	}

	// Ожидания
	// Проверка владельца идет раньше проверки статуса, поэтому владелец
	// терминальной тревоги получает именно конфликт статуса
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)

	// Действие
	alert, err := service.CancelSOSAlert(ctx, "SOS-1-ABCDEF01", "user-1")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlertNotActive)
	assert.Nil(t, alert)
}

func TestGetSOSAlert_Success_FromDB(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	stored := &models.SOSAlert{
		AlertID: "SOS-1-ABCDEF01",
		UserID:  "user-1",
		Status:  models.AlertStatusActive,
	}

	// Ожидания
	// 1. Промах кеша
	m.alerts.EXPECT().GetAlertFromCache(ctx, "SOS-1-ABCDEF01").Return(nil, nil).Times(1)
	// 2. Попадание в БД
	m.alerts.EXPECT().GetByAlertID(ctx, "SOS-1-ABCDEF01").Return(stored, nil).Times(1)
	// 3. Запись в кеш
	m.alerts.EXPECT().SetAlertCache(ctx, stored).Return(nil).Times(1)

	// Действие
	alert, err := service.GetSOSAlert(ctx, "SOS-1-ABCDEF01")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, alert)
}

func TestGetNearbyAlerts_InvalidRadius(t *testing.T) {
	// Подготовка
	service, _ := newTestAlertService(t)
	ctx := context.Background()

	// Действие
	alerts, err := service.GetNearbyAlerts(ctx, 23.8103, 90.4125, -1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, alerts)
}

func TestGetNearbyAlerts_Success(t *testing.T) {
	// Подготовка
	service, m := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.SOSAlert{
		{AlertID: "SOS-1-ABCDEF01", Status: models.AlertStatusActive},
		{AlertID: "SOS-2-ABCDEF02", Status: models.AlertStatusActive},
	}

	// Ожидания
	m.alerts.EXPECT().
		FindNearbyActive(ctx, 23.8103, 90.4125, 5000.0, 20).
		Return(expected, nil).
		Times(1)

	// Действие
	alerts, err := service.GetNearbyAlerts(ctx, 23.8103, 90.4125, 5000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}
