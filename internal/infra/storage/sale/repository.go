package sale

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonCalendar/pkg/psqlbuilder"
)

var salesLogColumns = []string{
	"id",
	"sale_date",
	"service_id",
	"location",
	"type",
	"item",
	"category",
	"client",
	"team_member",
	"channel",
	"gross_sales",
	"item_discounts",
	"cart_discounts",
	"total_discounts",
	"refunds",
	"net_sales",
	"taxes",
	"total_sales",
	"payment_type",
	"tip",
	"payment_ref",
}

// searchableColumns текстовые колонки журнала, по которым работает поиск
var searchableColumns = []string{
	"sale_date::text",
	"service_id",
	"location",
	"type",
	"item",
	"category",
	"client",
	"team_member",
	"channel",
	"payment_type",
	"payment_ref",
}

// Repository репозиторий продаж и журнала продаж
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextSerial возвращает следующий номер чека из последовательности sale_serial_seq
func (r *Repository) NextSerial(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var serial int64
	if err := executor.QueryRowContext(ctx, "SELECT nextval('sale_serial_seq')").Scan(&serial); err != nil {
		return 0, fmt.Errorf("%w: NextSerial - execute nextval: %v", ErrExecQuery, err)
	}
	return serial, nil
}

// Create сохраняет продажу вместе со строками
func (r *Repository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sales").
		Columns(
			"payment_ref",
			"payment_method",
			"appointment_id",
			"client_id",
			"subtotal",
			"tax",
			"total",
			"tips",
			"discount",
		).
		Values(
			sale.PaymentRef,
			sale.PaymentMethod,
			sale.AppointmentID,
			sale.ClientID,
			sale.Subtotal,
			sale.Tax,
			sale.Total,
			sale.Tips,
			sale.Discount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(sale.Lines) == 0 {
		return sale, nil
	}

	linesBuilder := psqlbuilder.Insert("sales_services").
		Columns(
			"sale_id",
			"service_id",
			"catalog_service_id",
			"name",
			"staff_id",
			"staff_name",
			"client_name",
			"price",
			"tip",
		).
		Suffix("RETURNING id")

	for _, line := range sale.Lines {
		line.SaleID = sale.ID
		linesBuilder = linesBuilder.Values(
			line.SaleID,
			line.ServiceID,
			line.CatalogServiceID,
			line.Name,
			line.StaffID,
			line.StaffName,
			line.ClientName,
			line.Price,
			line.Tip,
		)
	}

	linesQuery, linesArgs, err := linesBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build lines insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, linesQuery, linesArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute lines insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING отдает строки в порядке VALUES
	for i := 0; rows.Next(); i++ {
		if i >= len(sale.Lines) {
			break
		}
		if err := rows.Scan(&sale.Lines[i].ID); err != nil {
			return nil, fmt.Errorf("%w: Create - scan line id: %v", ErrScanRow, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - iterate line ids: %v", ErrScanRow, err)
	}

	return sale, nil
}

// GetByPaymentRef получает продажу по номеру чека
func (r *Repository) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"payment_ref",
		"payment_method",
		"appointment_id",
		"client_id",
		"subtotal",
		"tax",
		"total",
		"tips",
		"discount",
		"created_at",
	).
		From("sales").
		Where(squirrel.Eq{"payment_ref": paymentRef}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - build select query: %v", ErrBuildQuery, err)
	}

	var sale domain.Sale
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sale.ID,
		&sale.PaymentRef,
		&sale.PaymentMethod,
		&sale.AppointmentID,
		&sale.ClientID,
		&sale.Subtotal,
		&sale.Tax,
		&sale.Total,
		&sale.Tips,
		&sale.Discount,
		&sale.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - scan sale: %v", ErrScanRow, err)
	}

	linesQuery, linesArgs, err := psqlbuilder.Select(
		"id",
		"sale_id",
		"service_id",
		"catalog_service_id",
		"name",
		"staff_id",
		"staff_name",
		"client_name",
		"price",
		"tip",
	).
		From("sales_services").
		Where(squirrel.Eq{"sale_id": sale.ID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - build lines query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, linesQuery, linesArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - execute lines query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sale.Lines = make([]*domain.SaleLine, 0)
	for rows.Next() {
		var line domain.SaleLine
		err := rows.Scan(
			&line.ID,
			&line.SaleID,
			&line.ServiceID,
			&line.CatalogServiceID,
			&line.Name,
			&line.StaffID,
			&line.StaffName,
			&line.ClientName,
			&line.Price,
			&line.Tip,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPaymentRef - scan line: %v", ErrScanRow, err)
		}
		sale.Lines = append(sale.Lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentRef - iterate lines: %v", ErrScanRow, err)
	}

	return &sale, nil
}

// InsertSalesLog добавляет строки в журнал продаж
func (r *Repository) InsertSalesLog(ctx context.Context, entries []*domain.SalesLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("sales_log").Columns(salesLogColumns[1:]...)
	for _, e := range entries {
		insertBuilder = insertBuilder.Values(
			e.SaleDate,
			e.ServiceID,
			e.Location,
			e.Type,
			e.Item,
			e.Category,
			e.Client,
			e.TeamMember,
			e.Channel,
			e.GrossSales,
			e.ItemDiscounts,
			e.CartDiscounts,
			e.TotalDiscounts,
			e.Refunds,
			e.NetSales,
			e.Taxes,
			e.TotalSales,
			e.PaymentType,
			e.Tip,
			e.PaymentRef,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertSalesLog - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertSalesLog - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListSalesLog возвращает строки журнала продаж, новые сначала
// Search ищет подстроку без учета регистра по всем текстовым колонкам.
func (r *Repository) ListSalesLog(ctx context.Context, filter domain.SalesLogFilter) ([]*domain.SalesLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salesLogColumns...).
		From("sales_log").
		OrderBy("sale_date DESC", "id DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		or := make(squirrel.Or, 0, len(searchableColumns))
		for _, col := range searchableColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		selectBuilder = selectBuilder.Where(or)
	}
	if filter.TeamMember != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"team_member": filter.TeamMember})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"sale_date": *filter.From})
	}
	if filter.To != nil {
		// To включительно: до начала следующего дня
		selectBuilder = selectBuilder.Where(squirrel.Lt{"sale_date": filter.To.AddDate(0, 0, 1)})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSalesLog - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSalesLog - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.SalesLogEntry, 0)
	for rows.Next() {
		var e domain.SalesLogEntry
		err := rows.Scan(
			&e.ID,
			&e.SaleDate,
			&e.ServiceID,
			&e.Location,
			&e.Type,
			&e.Item,
			&e.Category,
			&e.Client,
			&e.TeamMember,
			&e.Channel,
			&e.GrossSales,
			&e.ItemDiscounts,
			&e.CartDiscounts,
			&e.TotalDiscounts,
			&e.Refunds,
			&e.NetSales,
			&e.Taxes,
			&e.TotalSales,
			&e.PaymentType,
			&e.Tip,
			&e.PaymentRef,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSalesLog - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSalesLog - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}
