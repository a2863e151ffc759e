package tag

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий меток
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меток
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает метку
func (r *Repository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("tags").
		Columns("id", "name", "color").
		Values(tag.ID, tag.Name, tag.Color).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return tag, nil
}

// Update изменяет название и цвет метки
func (r *Repository) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tags").
		Set("name", tag.Name).
		Set("color", tag.Color).
		Where(squirrel.Eq{"id": tag.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.execAffecting(ctx, executor, query, args); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}

	return tag, nil
}

// Delete удаляет метку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tags").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if err := r.execAffecting(ctx, executor, query, args); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	return nil
}

// GetByID получает метку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "color").
		From("tags").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tag domain.Tag
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tag.ID, &tag.Name, &tag.Color)
	if err == sql.ErrNoRows {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tag: %v", ErrScanRow, err)
	}

	return &tag, nil
}

// List возвращает все метки по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Tag, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "color").
		From("tags").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
			return nil, fmt.Errorf("%w: List - scan tag: %v", ErrScanRow, err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return tags, nil
}

// execAffecting выполняет запрос и возвращает ErrTagNotFound, если ни одна строка не затронута
func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, query string, args []any) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}
