package changes

import "github.com/m04kA/SMC-AgendaService/internal/infra/storage/changes"

type Subscriber interface {
	Subscribe(collection string, fn func(changes.Event)) func()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
