package notifier_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/nirapotta/sos-backend/internal/notifier"
	"github.com/nirapotta/sos-backend/internal/notifier/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDispatcher — вспомогательная функция для создания диспетчера с моками.
func newTestDispatcher(t *testing.T) (*notifier.Dispatcher, *mocks.MockSMSSender, *mocks.MockPushSender) {
	ctrl := gomock.NewController(t)
	smsMock := mocks.NewMockSMSSender(ctrl)
	pushMock := mocks.NewMockPushSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return notifier.NewDispatcher(smsMock, pushMock, logger), smsMock, pushMock
}

func TestFanout_EmptyRecipients(t *testing.T) {
	// Подготовка
	dispatcher, _, _ := newTestDispatcher(t)
	ctx := context.Background()

	// Действие: никого не нашли — рассылка все равно успешна
	result := dispatcher.Fanout(ctx, notifier.FanoutInput{AlertID: "SOS-1"})

	// Проверки
	require.NotNil(t, result)
	assert.Empty(t, result.Stations)
	assert.Empty(t, result.Contacts)
	assert.Empty(t, result.NearbyUsers)
	assert.Equal(t, notifier.ChannelSummary{}, result.ContactSummary)
}

func TestFanout_StationsRecorded(t *testing.T) {
	// Подготовка
	dispatcher, _, _ := newTestDispatcher(t)
	ctx := context.Background()
	in := notifier.FanoutInput{
		AlertID: "SOS-2",
		Stations: []models.StationWithDistance{
			{PoliceStation: models.PoliceStation{StationID: "PS-1", Name: "Central"}, DistanceMeters: 1200},
			{PoliceStation: models.PoliceStation{StationID: "PS-2", Name: "North"}, DistanceMeters: 4800},
		},
	}

	// Действие
	result := dispatcher.Fanout(ctx, in)

	// Проверки: запись в журнале считается уведомлением
	require.Len(t, result.Stations, 2)
	assert.Equal(t, "PS-1", result.Stations[0].StationID)
	assert.Equal(t, 1200.0, result.Stations[0].DistanceMeters)
	assert.False(t, result.Stations[0].NotifiedAt.IsZero())
	assert.Equal(t, notifier.ChannelSummary{Attempted: 2, Succeeded: 2}, result.StationSummary)
}

func TestFanout_ContactPartialFailure(t *testing.T) {
	// Подготовка: 3 контакта, 2 отправки падают, 1 проходит
	dispatcher, smsMock, _ := newTestDispatcher(t)
	ctx := context.Background()
	in := notifier.FanoutInput{
		AlertID:  "SOS-3",
		UserName: "Amina Rahman",
		Contacts: []models.EmergencyContact{
			{Name: "Father", Phone: "+8801700000001"},
			{Name: "Sister", Phone: "+8801700000002"},
			{Name: "Friend", Phone: "+8801700000003"},
		},
	}

	smsMock.EXPECT().
		SendEmergencyAlert(gomock.Any(), "+8801700000001", "Amina Rahman", gomock.Any()).
		Return(fmt.Errorf("carrier rejected")).Times(1)
	smsMock.EXPECT().
		SendEmergencyAlert(gomock.Any(), "+8801700000002", "Amina Rahman", gomock.Any()).
		Return(nil).Times(1)
	smsMock.EXPECT().
		SendEmergencyAlert(gomock.Any(), "+8801700000003", "Amina Rahman", gomock.Any()).
		Return(fmt.Errorf("timeout")).Times(1)

	// Действие
	result := dispatcher.Fanout(ctx, in)

	// Проверки: все 3 попытки записаны, отказы не прерывают рассылку
	require.Len(t, result.Contacts, 3)
	statuses := map[string]int{}
	for _, c := range result.Contacts {
		statuses[c.DeliveryStatus]++
	}
	assert.Equal(t, 2, statuses[models.DeliveryStatusFailed])
	assert.Equal(t, 1, statuses[models.DeliveryStatusSent])
	assert.Equal(t, notifier.ChannelSummary{Attempted: 3, Succeeded: 1, Failed: 2}, result.ContactSummary)
}

func TestFanout_BystanderPerUserStatus(t *testing.T) {
	// Подготовка: одна batch-отправка, статус по каждому получателю
	dispatcher, _, pushMock := newTestDispatcher(t)
	ctx := context.Background()
	in := notifier.FanoutInput{
		AlertID:   "SOS-4",
		Latitude:  23.8103,
		Longitude: 90.4125,
		Bystanders: []models.NearbyRecipient{
			{UserID: "u1", FCMToken: "tok1", DistanceMeters: 120},
			{UserID: "u2", FCMToken: "tok2", DistanceMeters: 340},
		},
	}

	pushMock.EXPECT().
		SendMulticast(gomock.Any(), []string{"tok1", "tok2"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bool{true, false}, nil).Times(1)

	// Действие
	result := dispatcher.Fanout(ctx, in)

	// Проверки: расстояние фиксируется индивидуально
	require.Len(t, result.NearbyUsers, 2)
	assert.Equal(t, models.DeliveryStatusSent, result.NearbyUsers[0].DeliveryStatus)
	assert.Equal(t, 120.0, result.NearbyUsers[0].DistanceMeters)
	assert.Equal(t, models.DeliveryStatusFailed, result.NearbyUsers[1].DeliveryStatus)
	assert.Equal(t, notifier.ChannelSummary{Attempted: 2, Succeeded: 1, Failed: 1}, result.BystanderSummary)
}

func TestFanout_BystanderBatchFailure(t *testing.T) {
	// Подготовка: отказ всей batch-отправки помечает всех как failed
	dispatcher, _, pushMock := newTestDispatcher(t)
	ctx := context.Background()
	in := notifier.FanoutInput{
		AlertID: "SOS-5",
		Bystanders: []models.NearbyRecipient{
			{UserID: "u1", FCMToken: "tok1", DistanceMeters: 90},
		},
	}

	pushMock.EXPECT().
		SendMulticast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("fcm unavailable")).Times(1)

	// Действие
	result := dispatcher.Fanout(ctx, in)

	// Проверки
	require.Len(t, result.NearbyUsers, 1)
	assert.Equal(t, models.DeliveryStatusFailed, result.NearbyUsers[0].DeliveryStatus)
	assert.Equal(t, notifier.ChannelSummary{Attempted: 1, Failed: 1}, result.BystanderSummary)
}
