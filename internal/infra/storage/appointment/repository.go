package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями локального календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var appointmentColumns = []string{
	"event_id",
	"customer_name",
	"customer_phone",
	"appointment_type",
	"notes",
	"start_time",
	"end_time",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает новую запись.
// Идентификатор события генерируется на стороне сервиса (uuid), чтобы
// контракт совпадал с провайдером Google, где id присваивает календарь.
//
// Если в контексте передана активная транзакция (через context.Value),
// использует её. При создании с проверкой занятости слота вызов обязан
// идти внутри serializable-транзакции вместе с BusyIntervals.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	appt.EventID = uuid.New().String()
	if appt.Status == "" {
		appt.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"event_id",
			"customer_name",
			"customer_phone",
			"appointment_type",
			"notes",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			appt.EventID,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.Type,
			appt.Notes,
			appt.Interval.Start,
			appt.Interval.End,
			appt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по идентификатору события
func (r *Repository) GetByID(ctx context.Context, eventID string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// BusyIntervals возвращает занятые интервалы активных записей,
// пересекающие период [from, to), в порядке возрастания начала.
// Пересечение полуоткрытых интервалов: end_time > from AND start_time < to.
//
// Если вызов идет внутри транзакции, строки блокируются FOR UPDATE -
// это защита от двойного бронирования при конкурентном создании записей.
func (r *Repository) BusyIntervals(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("start_time", "end_time").
		From("appointments").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BusyIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BusyIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.TimeInterval, 0)
	for rows.Next() {
		var iv domain.TimeInterval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("%w: BusyIntervals - scan interval: %v", ErrScanRow, err)
		}
		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BusyIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// FetchBusyIntervals алиас BusyIntervals под контракт источника занятости
func (r *Repository) FetchBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.TimeInterval, error) {
	return r.BusyIntervals(ctx, from, to)
}

// Reschedule переносит запись на новый интервал
func (r *Repository) Reschedule(ctx context.Context, eventID string, interval domain.TimeInterval) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("start_time", interval.Start).
		Set("end_time", interval.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"event_id": eventID}).
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, eventID string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// ListRange возвращает активные записи с началом в периоде [from, to),
// в хронологическом порядке
func (r *Repository) ListRange(ctx context.Context, from, to time.Time, limit int) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		OrderBy("start_time ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRange - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRange - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.EventID,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.Type,
		&appt.Notes,
		&appt.Interval.Start,
		&appt.Interval.End,
		&appt.Status,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func columnList() string {
	list := appointmentColumns[0]
	for _, col := range appointmentColumns[1:] {
		list += ", " + col
	}
	return list
}
