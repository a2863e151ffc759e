package check_conflicts

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/planning"
)

// SnapshotLoader источник снимка агенды для поиска конфликтов
type SnapshotLoader interface {
	Snapshot(ctx context.Context) (*planning.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
