package notifier

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// FCMPushSender отправляет push-уведомления через Firebase Cloud Messaging.
// Без файла учетных данных работает в mock-режиме с логированием.
type FCMPushSender struct {
	client *messaging.Client
	logger *logrus.Logger
}

// NewFCMPushSender инициализирует Firebase app и messaging-клиент
func NewFCMPushSender(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*FCMPushSender, error) {
	s := &FCMPushSender{logger: logger}

	if cfg.FirebaseCredentialsFile == "" {
		logger.Warn("FIREBASE_CREDENTIALS_FILE is not set, push notifications run in mock mode")
		return s, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM messaging client: %w", err)
	}

	s.client = client
	return s, nil
}

// SendMulticast отправляет одно push-сообщение набору токенов.
// Возвращаемый срез повторяет порядок токенов.
func (s *FCMPushSender) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]bool, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	if s.client == nil {
		// Mock-режим: считаем всех доставленными
		s.logger.WithField("recipients", len(tokens)).Infof("Mock multicast push: %s", title)
		delivered := make([]bool, len(tokens))
		for i := range delivered {
			delivered[i] = true
		}
		return delivered, nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := s.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("fcm: multicast send failed: %w", err)
	}

	delivered := make([]bool, len(tokens))
	for i, r := range resp.Responses {
		delivered[i] = r.Success
	}

	s.logger.WithFields(logrus.Fields{
		"success": resp.SuccessCount,
		"failure": resp.FailureCount,
	}).Info("Multicast push dispatched")

	return delivered, nil
}
