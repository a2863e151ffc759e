package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда редактируемая запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrClientNotFound возвращается, когда новый клиент записи не найден
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrNotInSeries возвращается при редактировании "эта и следующие" записи без серии
	ErrNotInSeries = errors.New("update_appointment: appointment is not part of a series")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrPartialSeries возвращается, когда серия обновлена не полностью
	ErrPartialSeries = errors.New("update_appointment: series was only partially updated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
