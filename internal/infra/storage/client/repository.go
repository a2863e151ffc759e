package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

var clientColumns = []string{
	"c.id",
	"c.name",
	"c.surname",
	"c.phone",
	"c.whatsapp_reminder",
	"c.notes",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий клиентов
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	return &Repository{db: db, loc: loc}
}

// Create создает клиента. ID генерируется, если не задан
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "name", "surname", "phone", "whatsapp_reminder", "notes").
		Values(client.ID, client.Name, client.Surname, client.Phone, string(client.WhatsappReminder), client.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	client.CreatedAt = createdAt.Time.In(r.loc)
	client.UpdatedAt = updatedAt.Time.In(r.loc)

	return client, nil
}

// Update полностью заменяет поля клиента
func (r *Repository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("name", client.Name).
		Set("surname", client.Surname).
		Set("phone", client.Phone).
		Set("whatsapp_reminder", string(client.WhatsappReminder)).
		Set("notes", client.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	client.CreatedAt = createdAt.Time.In(r.loc)
	client.UpdatedAt = updatedAt.Time.In(r.loc)

	return client, nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	client, err := r.scanClient(executor.QueryRowContext(ctx, query, args...), false)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return client, nil
}

// List возвращает клиентов с количеством записей, по убыванию визитов.
// search ищет без учета регистра по имени и фамилии и подстрокой по телефону
func (r *Repository) List(ctx context.Context, search string) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(search).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := r.scanClient(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return clients, nil
}

// ListReminderEligible возвращает клиентов с телефоном и выбранным напоминанием
func (r *Repository) ListReminderEligible(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients c").
		Where(squirrel.NotEq{"c.phone": ""}).
		Where(squirrel.NotEq{"c.whatsapp_reminder": ""}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReminderEligible - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReminderEligible - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := r.scanClient(rows, false)
		if err != nil {
			return nil, fmt.Errorf("%w: ListReminderEligible - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReminderEligible - rows iteration: %v", ErrScanRow, err)
	}

	return clients, nil
}

func listQuery(search string) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(append(append([]string{}, clientColumns...), "COUNT(a.id) AS visits")...).
		From("clients c").
		LeftJoin("appointments a ON a.client_id = c.id").
		GroupBy("c.id").
		OrderBy("visits DESC", "c.name ASC")

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.surname": pattern},
			squirrel.Like{"c.phone": pattern},
		})
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanClient сканирует колонки clientColumns, при withVisits дополнительно visits
func (r *Repository) scanClient(row rowScanner, withVisits bool) (*domain.Client, error) {
	var client domain.Client
	var surname, notes sql.NullString
	var reminder string
	var createdAt, updatedAt sql.NullTime

	dest := []any{
		&client.ID,
		&client.Name,
		&surname,
		&client.Phone,
		&reminder,
		&notes,
		&createdAt,
		&updatedAt,
	}
	if withVisits {
		dest = append(dest, &client.Visits)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if surname.Valid {
		client.Surname = &surname.String
	}
	if notes.Valid {
		client.Notes = &notes.String
	}
	client.WhatsappReminder = domain.ReminderPreference(reminder)
	client.CreatedAt = createdAt.Time.In(r.loc)
	client.UpdatedAt = updatedAt.Time.In(r.loc)

	return &client, nil
}
