package vehicle

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

// pqUniqueViolation код PostgreSQL для нарушения unique constraint
const pqUniqueViolation = "23505"

var vehicleColumns = []string{
	"id",
	"make",
	"model",
	"year",
	"license_plate",
	"colour",
	"weekly_rate",
	"mileage_limit_per_day",
	"created_at",
	"updated_at",
}

// Repository репозиторий автомобилей автопарка
//
// У таблицы vehicles нет колонки status: статус автомобиля - производное
// значение, которое сервис доступности вычисляет из таймлайна интервалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет автомобиль в автопарк
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"make",
			"model",
			"year",
			"license_plate",
			"colour",
			"weekly_rate",
			"mileage_limit_per_day",
		).
		Values(
			v.Make,
			v.Model,
			v.Year,
			v.LicensePlate,
			v.Colour,
			v.WeeklyRate,
			v.MileageLimitPerDay,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicatePlate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %w", ErrScanRow, err)
	}

	return v, nil
}

// Exists возвращает true, если автомобиль существует
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %w", ErrScanRow, err)
	}

	return true, nil
}

// List возвращает все автомобили автопарка, отсортированные по ID
func (r *Repository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return vehicles, nil
}

// Update обновляет описательные атрибуты автомобиля
func (r *Repository) Update(ctx context.Context, v *domain.Vehicle) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("make", v.Make).
		Set("model", v.Model).
		Set("year", v.Year).
		Set("license_plate", v.LicensePlate).
		Set("colour", v.Colour).
		Set("weekly_rate", v.WeeklyRate).
		Set("mileage_limit_per_day", v.MileageLimitPerDay).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return ErrDuplicatePlate
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет автомобиль из автопарка
// Интервалы таймлайна удаляются каскадно (FOREIGN KEY ... ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
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
		return ErrVehicleNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVehicle сканирует одну строку в domain.Vehicle
func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.LicensePlate,
		&v.Colour,
		&v.WeeklyRate,
		&v.MileageLimitPerDay,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
