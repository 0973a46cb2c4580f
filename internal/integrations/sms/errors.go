package sms

import "errors"

var (
	// ErrSend возвращается, когда Twilio не принял сообщение
	ErrSend = errors.New("sms: failed to send message")

	// ErrNoPhone возвращается, когда у клиента нет телефона
	ErrNoPhone = errors.New("sms: recipient phone is empty")
)
