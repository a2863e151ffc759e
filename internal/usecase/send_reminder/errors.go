package send_reminder

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указан ID записи или телефон
	ErrInvalidInput = errors.New("send_reminder: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("send_reminder: appointment not found")

	// ErrClientNotFound возвращается, когда клиент записи не найден
	ErrClientNotFound = errors.New("send_reminder: client not found")

	// ErrNoPhone возвращается, когда у клиента нет телефона
	ErrNoPhone = errors.New("send_reminder: client has no phone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminder: internal error")
)
