package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	tagRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/tag"
)

const maxTagNameLength = 100

// Service сервис меток ("specials")
type Service struct {
	tagRepo         TagRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса меток
func NewService(
	tagRepo TagRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tagRepo:         tagRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает метку
func (s *Service) Create(ctx context.Context, name, color string) (*domain.Tag, error) {
	tag, err := newTag("", name, color)
	if err != nil {
		s.logger.Warn("CreateTag: validation failed: %v", err)
		return nil, err
	}

	created, err := s.tagRepo.Create(ctx, tag)
	if err != nil {
		s.logger.Error("CreateTag: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTag: created tag id=%s", created.ID)
	return created, nil
}

// Update изменяет название и цвет метки
func (s *Service) Update(ctx context.Context, id, name, color string) (*domain.Tag, error) {
	tag, err := newTag(id, name, color)
	if err != nil {
		s.logger.Warn("UpdateTag: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.tagRepo.Update(ctx, tag)
	if err != nil {
		if errors.Is(err, tagRepo.ErrTagNotFound) {
			return nil, ErrTagNotFound
		}
		s.logger.Error("UpdateTag: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return updated, nil
}

// Delete удаляет метку и открепляет ее от всех записей в одной транзакции
func (s *Service) Delete(ctx context.Context, id string) error {
	var detached int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.appointmentRepo.RemoveTag(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - detach tag: %v", ErrInternal, err)
		}
		detached = n

		if err := s.tagRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, tagRepo.ErrTagNotFound) {
				return ErrTagNotFound
			}
			return fmt.Errorf("%w: Delete - delete tag: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTagNotFound) {
			s.logger.Warn("DeleteTag: tag id=%s not found", id)
			return ErrTagNotFound
		}
		s.logger.Error("DeleteTag: failed for id=%s: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTag: deleted tag id=%s, detached from %d appointments", id, detached)
	return nil
}

// Get возвращает метку по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tagRepo.ErrTagNotFound) {
			return nil, ErrTagNotFound
		}
		s.logger.Error("GetTag: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return tag, nil
}

// List возвращает все метки
func (s *Service) List(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListTags: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return tags, nil
}

func newTag(id, name, color string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxTagNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, maxTagNameLength)
	}
	return &domain.Tag{ID: id, Name: name, Color: strings.TrimSpace(color)}, nil
}
