package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Поля сортировки
const (
	SortName        = "name"
	SortTotal       = "total"
	SortRevenue     = "revenue"
	SortAvgDuration = "avgDuration"
)

// Service сервис статистики по клиентам
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(clientRepo ClientRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ClientStats статистика по прошедшим записям каждого клиента.
// sortBy: name, total, revenue, avgDuration (по умолчанию total); dir: asc или desc (по умолчанию desc)
func (s *Service) ClientStats(ctx context.Context, sortBy, dir string) ([]domain.ClientStats, error) {
	less, err := comparator(sortBy, dir)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	clients, err := s.clientRepo.List(ctx, "")
	if err != nil {
		s.logger.Error("ClientStats: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: ClientStats - list clients: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{To: &now})
	if err != nil {
		s.logger.Error("ClientStats: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: ClientStats - list appointments: %v", ErrInternal, err)
	}

	result := domain.ComputeClientStats(clients, appointments, now)
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })

	return result, nil
}

func comparator(sortBy, dir string) (func(a, b domain.ClientStats) bool, error) {
	var asc func(a, b domain.ClientStats) bool

	switch sortBy {
	case SortName:
		asc = func(a, b domain.ClientStats) bool {
			return strings.ToLower(a.Client.FullName()) < strings.ToLower(b.Client.FullName())
		}
	case SortTotal, "":
		asc = func(a, b domain.ClientStats) bool { return a.Total < b.Total }
	case SortRevenue:
		asc = func(a, b domain.ClientStats) bool { return a.Revenue < b.Revenue }
	case SortAvgDuration:
		asc = func(a, b domain.ClientStats) bool { return a.AvgDurationMinutes < b.AvgDurationMinutes }
	default:
		return nil, fmt.Errorf("%w: sort=%q", ErrInvalidSort, sortBy)
	}

	switch dir {
	case "asc":
		return asc, nil
	case "desc", "":
		return func(a, b domain.ClientStats) bool { return asc(b, a) }, nil
	default:
		return nil, fmt.Errorf("%w: dir=%q", ErrInvalidSort, dir)
	}
}
