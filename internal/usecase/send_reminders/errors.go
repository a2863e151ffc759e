package send_reminders

import "errors"

var (
	// ErrInternal возвращается, когда не удалось загрузить данные для прогона
	ErrInternal = errors.New("send_reminders: internal error")
)
