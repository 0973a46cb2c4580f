package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonCalendar/pkg/psqlbuilder"
)

// Время хранится в колонках TIME, читаем его текстом: драйвер не разбирает "24:00:00"
var appointmentColumns = []string{
	"id",
	"client_id",
	"client_name",
	"staff_id",
	"appointment_date",
	"start_time::text",
	"end_time::text",
	"notes",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"payment_ref",
	"created_at",
	"updated_at",
}

var serviceColumns = []string{
	"aps.id",
	"aps.appointment_id",
	"aps.catalog_service_id",
	"aps.position",
	"aps.name",
	"aps.duration",
	"aps.price",
	"aps.category",
	"aps.staff_id",
	"COALESCE(st.name, '')",
	"aps.start_time::text",
	"aps.tip",
	"aps.completed",
	"aps.payment_ref",
}

// Repository репозиторий для работы с записями и их услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись вместе с услугами
// Вызывать внутри транзакции: запись и услуги должны появиться атомарно.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !appointment.Status.IsValid() {
		return nil, fmt.Errorf("%w: Create - status %q", ErrInvalidStatus, appointment.Status)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"client_name",
			"staff_id",
			"appointment_date",
			"start_time",
			"end_time",
			"notes",
			"status",
		).
		Values(
			appointment.ClientID,
			appointment.ClientName,
			appointment.StaffID,
			appointment.Date,
			appointment.StartTime,
			appointment.EndTime,
			appointment.Notes,
			appointment.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	if err := r.insertServices(ctx, executor, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// GetByID получает запись по ID вместе с услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку до конца изменения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	if err := r.attachServices(ctx, executor, []*domain.Appointment{appointment}); err != nil {
		return nil, err
	}

	return appointment, nil
}

// listQuery строит выборку записей по фильтру
// Фильтр по мастеру смотрит на мастеров услуг: запись попадает в выборку,
// если хотя бы одна ее услуга у этого мастера. Запись без услуг - по своему staff_id.
func listQuery(filter domain.AppointmentsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Expr("EXISTS (SELECT 1 FROM appointment_services s WHERE s.appointment_id = appointments.id AND s.staff_id = ?)", *filter.StaffID),
			squirrel.And{
				squirrel.Eq{"appointments.staff_id": *filter.StaffID},
				squirrel.Expr("NOT EXISTS (SELECT 1 FROM appointment_services s WHERE s.appointment_id = appointments.id)"),
			},
		})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	return selectBuilder.OrderBy("appointment_date ASC", "start_time ASC", "id ASC")
}

// List получает записи по фильтру вместе с услугами
// Без IncludeInactive отмененные и no-show записи не возвращаются.
// Для одной даты внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := listQuery(filter)

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	if err := r.attachServices(ctx, executor, appointments); err != nil {
		return nil, err
	}

	return appointments, nil
}

// Update сохраняет изменения записи и полностью заменяет список услуг
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("client_id", appointment.ClientID).
		Set("client_name", appointment.ClientName).
		Set("staff_id", appointment.StaffID).
		Set("appointment_date", appointment.Date).
		Set("start_time", appointment.StartTime).
		Set("end_time", appointment.EndTime).
		Set("notes", appointment.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID, "status": domain.StatusBooked}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrStatusConflict
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("appointment_services").
		Where(squirrel.Eq{"appointment_id": appointment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build delete services query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete services: %v", ErrExecQuery, err)
	}

	return r.insertServices(ctx, executor, appointment)
}

// Cancel переводит запись в статус cancelled или no_show
// Отменить можно только запись в статусе booked.
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if status != domain.StatusCancelled && status != domain.StatusNoShow {
		return fmt.Errorf("%w: Cancel - status %q", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// MarkCompleted помечает запись и все ее услуги оплаченными
func (r *Repository) MarkCompleted(ctx context.Context, id int64, paymentRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("payment_ref", paymentRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStatusConflict
	}

	servicesQuery, servicesArgs, err := psqlbuilder.Update("appointment_services").
		Set("completed", true).
		Set("payment_ref", paymentRef).
		Where(squirrel.Eq{"appointment_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build services update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, servicesQuery, servicesArgs...); err != nil {
		return fmt.Errorf("%w: MarkCompleted - execute services update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) insertServices(ctx context.Context, executor DBExecutor, appointment *domain.Appointment) error {
	if len(appointment.Services) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("appointment_services").
		Columns(
			"id",
			"appointment_id",
			"catalog_service_id",
			"position",
			"name",
			"duration",
			"price",
			"category",
			"staff_id",
			"start_time",
			"tip",
			"completed",
			"payment_ref",
		)

	for i, s := range appointment.Services {
		s.AppointmentID = appointment.ID
		s.Position = i
		insertBuilder = insertBuilder.Values(
			s.ID,
			s.AppointmentID,
			s.CatalogServiceID,
			s.Position,
			s.Name,
			s.Duration,
			s.Price,
			s.Category,
			s.StaffID,
			s.StartTime,
			s.Tip,
			s.Completed,
			s.PaymentRef,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// attachServices загружает услуги одним запросом для всех записей
func (r *Repository) attachServices(ctx context.Context, executor DBExecutor, appointments []*domain.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Appointment, len(appointments))
	ids := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		a.Services = make([]*domain.AppointmentService, 0)
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("appointment_services aps").
		LeftJoin("staff st ON st.id = aps.staff_id").
		Where(squirrel.Eq{"aps.appointment_id": ids}).
		OrderBy("aps.appointment_id ASC", "aps.position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.AppointmentService
		err := rows.Scan(
			&s.ID,
			&s.AppointmentID,
			&s.CatalogServiceID,
			&s.Position,
			&s.Name,
			&s.Duration,
			&s.Price,
			&s.Category,
			&s.StaffID,
			&s.StaffName,
			&s.StartTime,
			&s.Tip,
			&s.Completed,
			&s.PaymentRef,
		)
		if err != nil {
			return fmt.Errorf("%w: attachServices - scan service: %v", ErrScanRow, err)
		}

		if a, ok := byID[s.AppointmentID]; ok {
			a.Services = append(a.Services, &s)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachServices - iterate rows: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientID,
		&appointment.ClientName,
		&appointment.StaffID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CancellationReason,
		&appointment.CancelledAt,
		&appointment.PaymentRef,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}
