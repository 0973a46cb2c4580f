package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonCalendar/pkg/psqlbuilder"
)

// Repository репозиторий меню услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает услуги меню, опционально фильтруя по подстроке названия
func (r *Repository) List(ctx context.Context, search string) ([]*domain.CatalogService, error) {
	selectBuilder := psqlbuilder.Select("id", "name", "duration", "price", "category").
		From("services").
		OrderBy("category ASC", "name ASC", "id ASC")

	if search != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + search + "%"})
	}

	return r.query(ctx, "List", selectBuilder)
}

// GetByIDs возвращает услуги меню по списку ID
// Отсутствующие ID не считаются ошибкой, проверку делает вызывающий.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.CatalogService, error) {
	result := make(map[int64]*domain.CatalogService, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	selectBuilder := psqlbuilder.Select("id", "name", "duration", "price", "category").
		From("services").
		Where(squirrel.Eq{"id": ids})

	services, err := r.query(ctx, "GetByIDs", selectBuilder)
	if err != nil {
		return nil, err
	}

	for _, s := range services {
		result[s.ID] = s
	}
	return result, nil
}

func (r *Repository) query(ctx context.Context, method string, selectBuilder squirrel.SelectBuilder) ([]*domain.CatalogService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	services := make([]*domain.CatalogService, 0)
	for rows.Next() {
		var s domain.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.Duration, &s.Price, &s.Category); err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, method, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, method, err)
	}

	return services, nil
}
