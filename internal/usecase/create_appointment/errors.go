package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент записи не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPartialSeries возвращается, когда серия сохранена не полностью
	ErrPartialSeries = errors.New("create_appointment: series was only partially created")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
