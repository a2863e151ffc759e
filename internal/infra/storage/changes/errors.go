package changes

import "errors"

var (
	// ErrInvalidPayload возвращается для уведомления не в формате "<collection>:<op>:<id>"
	ErrInvalidPayload = errors.New("changes: invalid notification payload")

	// ErrListen возвращается, когда не удалось подписаться на канал уведомлений
	ErrListen = errors.New("changes: failed to listen")
)
