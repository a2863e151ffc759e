package whatsapp

import "errors"

var (
	// ErrSendFailed возвращается, когда Twilio не принял сообщение
	ErrSendFailed = errors.New("whatsapp client: send failed")

	// ErrNotConfigured возвращается, когда не заданы учетные данные Twilio
	ErrNotConfigured = errors.New("whatsapp client: twilio credentials are not configured")
)
