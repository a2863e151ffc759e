package agenda

import "errors"

var (
	// ErrInternal возвращается, когда не удалось собрать снимок данных
	ErrInternal = errors.New("agenda loader: internal error")
)
