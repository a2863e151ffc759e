package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"client_id",
	"start_at",
	"duration_minutes",
	"cost",
	"tag_ids",
	"recurrence",
	"recurrence_months",
	"series_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей
// Время записей возвращается в таймзоне бизнеса
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	return &Repository{db: db, loc: loc}
}

// Create создает запись. ID генерируется, если не задан
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_id",
			"start_at",
			"duration_minutes",
			"cost",
			"tag_ids",
			"recurrence",
			"recurrence_months",
			"series_id",
		).
		Values(
			appointment.ID,
			appointment.ClientID,
			appointment.StartAt,
			appointment.DurationMinutes,
			appointment.Cost,
			pq.Array(tagIDs(appointment)),
			recurrenceValue(appointment.Recurrence),
			appointment.RecurrenceMonths,
			appointment.SeriesID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time.In(r.loc)
	appointment.UpdatedAt = updatedAt.Time.In(r.loc)

	return appointment, nil
}

// Update заменяет изменяемые поля записи. Метаданные серии не меняются
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("client_id", appointment.ClientID).
		Set("start_at", appointment.StartAt).
		Set("duration_minutes", appointment.DurationMinutes).
		Set("cost", appointment.Cost).
		Set("tag_ids", pq.Array(tagIDs(appointment))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time.In(r.loc)
	appointment.UpdatedAt = updatedAt.Time.In(r.loc)

	return appointment, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
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
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteByClientID удаляет все записи клиента, возвращает количество удаленных
func (r *Repository) DeleteByClientID(ctx context.Context, clientID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByClientID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByClientID - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByClientID - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// RemoveTag убирает метку из всех записей, возвращает количество измененных
func (r *Repository) RemoveTag(ctx context.Context, tagID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := removeTagQuery(tagID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveTag - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveTag - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveTag - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List возвращает записи по фильтру, отсортированные по времени начала
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return r.list(ctx, "List", listQuery(filter))
}

// ListAfter возвращает записи, начинающиеся строго после момента after
func (r *Repository) ListAfter(ctx context.Context, after time.Time) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Gt{"start_at": after}).
		OrderBy("start_at ASC")

	return r.list(ctx, "ListAfter", builder)
}

// ListBySeries возвращает все вхождения серии
func (r *Repository) ListBySeries(ctx context.Context, seriesID string) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListBySeries", listQuery(domain.AppointmentsFilter{SeriesID: &seriesID}))
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

func listQuery(filter domain.AppointmentsFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("start_at ASC")

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_at": *filter.To})
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.SeriesID != nil {
		builder = builder.Where(squirrel.Eq{"series_id": *filter.SeriesID})
	}

	return builder
}

func removeTagQuery(tagID string) squirrel.UpdateBuilder {
	return psqlbuilder.Update("appointments").
		Set("tag_ids", squirrel.Expr("array_remove(tag_ids, ?)", tagID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("? = ANY(tag_ids)", tagID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var startAt time.Time
	var cost sql.NullFloat64
	var tags []string
	var recurrence, seriesID sql.NullString
	var recurrenceMonths sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientID,
		&startAt,
		&appointment.DurationMinutes,
		&cost,
		pq.Array(&tags),
		&recurrence,
		&recurrenceMonths,
		&seriesID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.StartAt = startAt.In(r.loc)
	appointment.TagIDs = tags
	if cost.Valid {
		appointment.Cost = &cost.Float64
	}
	if recurrence.Valid {
		freq := domain.Recurrence(recurrence.String)
		appointment.Recurrence = &freq
	}
	if recurrenceMonths.Valid {
		months := int(recurrenceMonths.Int64)
		appointment.RecurrenceMonths = &months
	}
	if seriesID.Valid {
		appointment.SeriesID = &seriesID.String
	}
	appointment.CreatedAt = createdAt.Time.In(r.loc)
	appointment.UpdatedAt = updatedAt.Time.In(r.loc)

	return &appointment, nil
}

// tagIDs пустой массив вместо NULL для колонки NOT NULL
func tagIDs(appointment *domain.Appointment) []string {
	if appointment.TagIDs == nil {
		return []string{}
	}
	return appointment.TagIDs
}

func recurrenceValue(r *domain.Recurrence) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}
