package tags

import "errors"

var (
	// ErrTagNotFound возвращается, когда метка не найдена
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tags service: internal error")
)
