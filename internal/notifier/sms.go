package notifier

import (
	"context"
	"fmt"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSMSSender отправляет SMS через Twilio. Без учетных данных работает
// в mock-режиме: сообщение только логируется и считается доставленным.
type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
	logger *logrus.Logger
}

// NewTwilioSMSSender создает отправителя SMS из конфигурации
func NewTwilioSMSSender(cfg *config.Config, logger *logrus.Logger) *TwilioSMSSender {
	s := &TwilioSMSSender{
		from:   cfg.TwilioFromNumber,
		logger: logger,
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return s
}

// SendEmergencyAlert отправляет экстренное SMS одному контакту
func (s *TwilioSMSSender) SendEmergencyAlert(ctx context.Context, toPhone, userName, locationURL string) error {
	body := fmt.Sprintf("EMERGENCY ALERT: %s has triggered an SOS alert. Track their location: %s", userName, locationURL)

	if s.client == nil {
		// Mock-режим для разработки
		s.logger.WithField("to", toPhone).Infof("Mock emergency SMS: %s", body)
		return nil
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: failed to send emergency SMS: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.WithFields(logrus.Fields{"to": toPhone, "sid": sid}).Info("Emergency SMS sent")
	return nil
}
