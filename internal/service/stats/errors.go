package stats

import "errors"

var (
	// ErrInvalidSort возвращается для неизвестного поля или направления сортировки
	ErrInvalidSort = errors.New("invalid sort parameters")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("stats service: internal error")
)
