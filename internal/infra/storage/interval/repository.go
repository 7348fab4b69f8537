package interval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	"github.com/carhive/FleetTimeline-Service/pkg/dbmetrics"
	"github.com/carhive/FleetTimeline-Service/pkg/psqlbuilder"
)

// pqExclusionViolation код PostgreSQL для нарушения exclusion constraint
const pqExclusionViolation = "23P01"

var intervalColumns = []string{
	"id",
	"vehicle_id",
	"kind",
	"start_date",
	"end_date",
	"customer_name",
	"pickup_location",
	"return_location",
	"total_cost",
	"mechanic_name",
	"issue",
	"cost",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий интервалов занятости (Timeline Store)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новый интервал и возвращает его с заполненным ID
//
// Проверка пересечений выполняется вызывающей стороной внутри
// сериализуемой транзакции (ListByVehicle с FOR UPDATE + domain.FirstOverlap).
// Exclusion constraint таблицы остаётся последней линией защиты:
// его нарушение транслируется в ErrIntervalOverlap
func (r *Repository) Create(ctx context.Context, ival *domain.Interval) (*domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_intervals").
		Columns(
			"vehicle_id",
			"kind",
			"start_date",
			"end_date",
			"customer_name",
			"pickup_location",
			"return_location",
			"total_cost",
			"mechanic_name",
			"issue",
			"cost",
			"reason",
		).
		Values(
			ival.VehicleID,
			ival.Kind,
			ival.StartDate,
			ival.EndDate,
			ival.CustomerName,
			ival.PickupLocation,
			ival.ReturnLocation,
			ival.TotalCost,
			ival.MechanicName,
			ival.Issue,
			ival.Cost,
			ival.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ival.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
			return nil, ErrIntervalOverlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	ival.CreatedAt = createdAt.Time
	ival.UpdatedAt = updatedAt.Time

	return ival, nil
}

// GetByID получает интервал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(intervalColumns...).
		From("vehicle_intervals").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - GetByID используется
	// usecase переноса дат перед удалением
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ival, err := scanInterval(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrIntervalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan interval: %w", ErrScanRow, err)
	}

	return ival, nil
}

// ListByVehicle возвращает все интервалы автомобиля,
// отсортированные по дате начала по возрастанию
//
// Внутри транзакции добавляется FOR UPDATE: строки таймлайна автомобиля
// блокируются на время validate-then-commit, что сериализует конкурентные
// вставки для одного автомобиля, не задерживая вставки для других
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(intervalColumns...).
		From("vehicle_intervals").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// ListByVehicles возвращает интервалы группы автомобилей одним запросом,
// сгруппированные по vehicle_id и отсортированные по дате начала.
// Используется батчевыми запросами доступности автопарка
func (r *Repository) ListByVehicles(ctx context.Context, vehicleIDs []int64) (map[int64][]*domain.Interval, error) {
	result := make(map[int64][]*domain.Interval, len(vehicleIDs))
	if len(vehicleIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("vehicle_intervals").
		Where(squirrel.Eq{"vehicle_id": vehicleIDs}).
		OrderBy("vehicle_id ASC, start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicles - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals, err := scanIntervals(rows)
	if err != nil {
		return nil, err
	}

	for _, ival := range intervals {
		result[ival.VehicleID] = append(result[ival.VehicleID], ival)
	}

	return result, nil
}

// ListWithFilter возвращает интервалы по фильтру,
// отсортированные по дате начала по возрастанию
//
// Примеры использования:
//
//  1. Активные ручные блокировки (страница Availability):
//     kind := domain.KindManualBlock
//     today := domain.Today()
//     filter := domain.IntervalFilter{Kind: &kind, EndsAfter: &today}
//
//  2. История обслуживания автомобиля:
//     kind := domain.KindMaintenance
//     filter := domain.IntervalFilter{VehicleID: &id, Kind: &kind}
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.IntervalFilter) ([]*domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(intervalColumns...).
		From("vehicle_intervals").
		OrderBy("start_date ASC")

	if filter.VehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.EndsAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_date": *filter.EndsAfter})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// Delete удаляет интервал (отмена бронирования, завершение обслуживания,
// снятие блокировки). Возвращает ErrIntervalNotFound, если строки уже нет
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicle_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}

	return nil
}

// DeleteByVehicleAndKind удаляет все интервалы автомобиля указанного типа
// Используется операцией "снять все блокировки с автомобиля"
func (r *Repository) DeleteByVehicleAndKind(ctx context.Context, vehicleID int64, kind domain.IntervalKind) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicle_intervals").
		Where(squirrel.Eq{"vehicle_id": vehicleID, "kind": kind}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVehicleAndKind - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVehicleAndKind - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByVehicleAndKind - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanInterval сканирует одну строку в domain.Interval
func scanInterval(row rowScanner) (*domain.Interval, error) {
	var ival domain.Interval
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&ival.ID,
		&ival.VehicleID,
		&ival.Kind,
		&ival.StartDate,
		&ival.EndDate,
		&ival.CustomerName,
		&ival.PickupLocation,
		&ival.ReturnLocation,
		&ival.TotalCost,
		&ival.MechanicName,
		&ival.Issue,
		&ival.Cost,
		&ival.Reason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	ival.CreatedAt = createdAt.Time
	ival.UpdatedAt = updatedAt.Time

	return &ival, nil
}

// scanIntervals сканирует результаты запроса в слайс интервалов
func scanIntervals(rows *sql.Rows) ([]*domain.Interval, error) {
	intervals := make([]*domain.Interval, 0)

	for rows.Next() {
		ival, err := scanInterval(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanIntervals - scan row: %w", ErrScanRow, err)
		}
		intervals = append(intervals, ival)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows error: %w", ErrScanRow, err)
	}

	return intervals, nil
}
