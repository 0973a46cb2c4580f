package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator отправка сообщения через API Twilio
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender отправляет SMS клиентам салона
type Sender struct {
	api  MessageCreator
	from string
	log  Logger
}

// NewSender создает отправителя поверх REST клиента Twilio
func NewSender(accountSID, authToken, from string, log Logger) *Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewSenderWithAPI(client.Api, from, log)
}

// NewSenderWithAPI создает отправителя с произвольной реализацией API
func NewSenderWithAPI(api MessageCreator, from string, log Logger) *Sender {
	return &Sender{api: api, from: from, log: log}
}

// Send отправляет SMS на номер to
func (s *Sender) Send(ctx context.Context, to, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrNoPhone
	}
	// twilio-go не принимает контекст, проверяем отмену до запроса
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, to, err)
	}

	if resp != nil && resp.Sid != nil {
		s.log.Info("sms: message sent to %s, sid=%s", to, *resp.Sid)
	} else {
		s.log.Info("sms: message sent to %s", to)
	}
	return nil
}

// NoopSender используется, когда отправка SMS отключена
type NoopSender struct{}

// Send ничего не отправляет
func (NoopSender) Send(context.Context, string, string) error {
	return nil
}
