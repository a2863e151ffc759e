package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, in ClientInput) (*domain.Client, error) {
	client, err := in.toDomain("")
	if err != nil {
		s.logger.Warn("CreateClient: validation failed: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("CreateClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClient: created client id=%s", created.ID)
	return created, nil
}

// Update заменяет данные клиента
func (s *Service) Update(ctx context.Context, id string, in ClientInput) (*domain.Client, error) {
	client, err := in.toDomain(id)
	if err != nil {
		s.logger.Warn("UpdateClient: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.clientRepo.Update(ctx, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdateClient: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("UpdateClient: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateClient: updated client id=%s", id)
	return updated, nil
}

// Delete удаляет клиента вместе со всеми его записями в одной транзакции
func (s *Service) Delete(ctx context.Context, id string) error {
	var removed int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.appointmentRepo.DeleteByClientID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - delete appointments: %v", ErrInternal, err)
		}
		removed = n

		if err := s.clientRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("%w: Delete - delete client: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			s.logger.Warn("DeleteClient: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("DeleteClient: failed for id=%s: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteClient: deleted client id=%s with %d appointments", id, removed)
	return nil
}

// Get возвращает клиента по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClient: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// List возвращает клиентов, самые частые первыми
func (s *Service) List(ctx context.Context, search string) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return clients, nil
}
