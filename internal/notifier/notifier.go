package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nirapotta/sos-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// SMSSender определяет контракт отправки экстренного SMS одному контакту
type SMSSender interface {
	SendEmergencyAlert(ctx context.Context, toPhone, userName, locationURL string) error
}

// PushSender определяет контракт batch-отправки push-уведомлений.
// Возвращаемый срез соответствует порядку токенов: true - доставлено в транспорт.
type PushSender interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]bool, error)
}

// EmailMessage - письмо с вложениями для канала электронной почты
type EmailMessage struct {
	To          string
	ReplyTo     string
	Subject     string
	Body        string
	Attachments []EmailAttachment
}

// EmailAttachment - файл, прикладываемый к письму
type EmailAttachment struct {
	Path     string
	Filename string
}

// EmailSender определяет контракт доставки письма
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// FanoutInput - рабочие элементы одной рассылки по трем каналам
type FanoutInput struct {
	AlertID   string
	UserName  string
	Latitude  float64
	Longitude float64

	Stations   []models.StationWithDistance
	Contacts   []models.EmergencyContact
	Bystanders []models.NearbyRecipient
}

// ChannelSummary - счетчики попыток по одному каналу
type ChannelSummary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// FanoutResult - агрегированный результат рассылки. Частичные отказы
// фиксируются в записях получателей и никогда не превращаются в ошибку.
type FanoutResult struct {
	Stations    []models.StationNotification
	Contacts    []models.ContactNotification
	NearbyUsers []models.NearbyUserNotification

	StationSummary   ChannelSummary
	ContactSummary   ChannelSummary
	BystanderSummary ChannelSummary
}

// Dispatcher рассылает уведомления о тревоге по трем независимым каналам:
// журнал участков, SMS контактам, push пользователям поблизости
type Dispatcher struct {
	sms    SMSSender
	push   PushSender
	logger *logrus.Logger
}

// NewDispatcher создает новый Dispatcher
func NewDispatcher(sms SMSSender, push PushSender, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		sms:    sms,
		push:   push,
		logger: logger,
	}
}

// Fanout выполняет рассылку по трем каналам параллельно. Отказ отдельного
// получателя не блокирует остальных и не прерывает вызывающую операцию,
// поэтому метод не возвращает ошибку.
func (d *Dispatcher) Fanout(ctx context.Context, in FanoutInput) *FanoutResult {
	log := d.logger.WithFields(logrus.Fields{
		"component": "notifier",
		"alert_id":  in.AlertID,
	})

	result := &FanoutResult{}
	locationURL := fmt.Sprintf("https://maps.google.com/?q=%f,%f", in.Latitude, in.Longitude)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Stations, result.StationSummary = d.notifyStations(log, in.Stations)
	}()

	go func() {
		defer wg.Done()
		result.Contacts, result.ContactSummary = d.notifyContacts(ctx, log, in, locationURL)
	}()

	go func() {
		defer wg.Done()
		result.NearbyUsers, result.BystanderSummary = d.notifyBystanders(ctx, log, in)
	}()

	wg.Wait()

	log.WithFields(logrus.Fields{
		"stations":   result.StationSummary,
		"contacts":   result.ContactSummary,
		"bystanders": result.BystanderSummary,
	}).Info("Notification fanout completed")

	return result
}

// notifyStations фиксирует уведомление участков. Доставка полицейскому
// транспорту - внешний коллаборатор: сама запись считается уведомлением.
func (d *Dispatcher) notifyStations(log *logrus.Entry, stations []models.StationWithDistance) ([]models.StationNotification, ChannelSummary) {
	records := make([]models.StationNotification, 0, len(stations))
	for _, station := range stations {
		records = append(records, models.StationNotification{
			StationID:      station.StationID,
			StationName:    station.Name,
			DistanceMeters: station.DistanceMeters,
			NotifiedAt:     time.Now().UTC(),
		})
		log.WithFields(logrus.Fields{
			"station":         station.Name,
			"distance_meters": station.DistanceMeters,
		}).Info("Police station alerted")
	}
	n := len(records)
	return records, ChannelSummary{Attempted: n, Succeeded: n}
}

func (d *Dispatcher) notifyContacts(ctx context.Context, log *logrus.Entry, in FanoutInput, locationURL string) ([]models.ContactNotification, ChannelSummary) {
	records := make([]models.ContactNotification, 0, len(in.Contacts))
	summary := ChannelSummary{}

	for _, contact := range in.Contacts {
		summary.Attempted++
		status := models.DeliveryStatusSent
		if err := d.sms.SendEmergencyAlert(ctx, contact.Phone, in.UserName, locationURL); err != nil {
			status = models.DeliveryStatusFailed
			summary.Failed++
			log.WithError(err).WithField("contact", contact.Name).Warn("Failed to send emergency SMS")
		} else {
			summary.Succeeded++
		}

		records = append(records, models.ContactNotification{
			ContactName:    contact.Name,
			ContactPhone:   contact.Phone,
			DeliveryStatus: status,
			NotifiedAt:     time.Now().UTC(),
		})
	}
	return records, summary
}

func (d *Dispatcher) notifyBystanders(ctx context.Context, log *logrus.Entry, in FanoutInput) ([]models.NearbyUserNotification, ChannelSummary) {
	if len(in.Bystanders) == 0 {
		return []models.NearbyUserNotification{}, ChannelSummary{}
	}

	tokens := make([]string, len(in.Bystanders))
	for i, b := range in.Bystanders {
		tokens[i] = b.FCMToken
	}

	data := map[string]string{
		"type":      "sos_alert",
		"alert_id":  in.AlertID,
		"latitude":  fmt.Sprintf("%f", in.Latitude),
		"longitude": fmt.Sprintf("%f", in.Longitude),
	}

	delivered, err := d.push.SendMulticast(ctx, tokens,
		"SOS Alert Nearby",
		"Someone needs help nearby. Please assist if safe to do so.",
		data,
	)
	if err != nil {
		// Отказ всей batch-отправки: фиксируем failed по каждому получателю
		log.WithError(err).Warn("Failed to send multicast push to bystanders")
		delivered = make([]bool, len(tokens))
	}

	records := make([]models.NearbyUserNotification, 0, len(in.Bystanders))
	summary := ChannelSummary{Attempted: len(in.Bystanders)}
	for i, b := range in.Bystanders {
		status := models.DeliveryStatusFailed
		if i < len(delivered) && delivered[i] {
			status = models.DeliveryStatusSent
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		records = append(records, models.NearbyUserNotification{
			UserID:         b.UserID,
			DistanceMeters: b.DistanceMeters,
			DeliveryStatus: status,
			NotifiedAt:     time.Now().UTC(),
		})
	}
	return records, summary
}
