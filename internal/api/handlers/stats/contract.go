package stats

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

type StatsService interface {
	ClientStats(ctx context.Context, sortBy, dir string) ([]domain.ClientStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
