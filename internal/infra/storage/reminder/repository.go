package reminder

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository хранит маркеры отправленных напоминаний.
// Маркер создается один раз и никогда не изменяется
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маркеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListKeys возвращает множество ключей существующих маркеров
func (r *Repository) ListKeys(ctx context.Context) (map[string]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("sent_reminders").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListKeys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListKeys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: ListKeys - scan key: %v", ErrScanRow, err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListKeys - rows iteration: %v", ErrScanRow, err)
	}

	return keys, nil
}

// Claim атомарно создает маркер, если его еще нет.
// Возвращает false, если маркер уже создан другим запуском
func (r *Repository) Claim(ctx context.Context, marker *domain.SentReminder) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := claimQuery(marker).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Claim - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - rows affected: %v", ErrExecQuery, err)
	}

	return affected == 1, nil
}

// Release удаляет маркер, захваченный Claim, если отправка не удалась
func (r *Repository) Release(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sent_reminders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func claimQuery(marker *domain.SentReminder) squirrel.InsertBuilder {
	return psqlbuilder.Insert("sent_reminders").
		Columns("id", "appointment_id", "client_id", "reminder_type", "sent_at").
		Values(marker.ID, marker.AppointmentID, marker.ClientID, string(marker.Preference), marker.SentAt).
		Suffix("ON CONFLICT (id) DO NOTHING")
}
