package incident

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
	"github.com/carhive/FleetTimeline-Service/pkg/dbmetrics"
	"github.com/carhive/FleetTimeline-Service/pkg/psqlbuilder"
)

var incidentColumns = []string{
	"id",
	"vehicle_id",
	"rental_id",
	"customer_id",
	"description",
	"incident_date",
	"status",
	"follow_up_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий инцидентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория инцидентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новый инцидент
func (r *Repository) Create(ctx context.Context, inc *domain.Incident) (*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("incidents").
		Columns(
			"vehicle_id",
			"rental_id",
			"customer_id",
			"description",
			"incident_date",
			"status",
		).
		Values(
			inc.VehicleID,
			inc.RentalID,
			inc.CustomerID,
			inc.Description,
			inc.IncidentDate,
			inc.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	inc.CreatedAt = createdAt.Time
	inc.UpdatedAt = updatedAt.Time

	return inc, nil
}

// GetByID получает инцидент по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(incidentColumns...).
		From("incidents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inc, err := scanIncident(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrIncidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan incident: %w", ErrScanRow, err)
	}

	return inc, nil
}

// ListByVehicle возвращает инциденты автомобиля, новые первыми
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(incidentColumns...).
		From("incidents").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		OrderBy("incident_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// AddFollowUp добавляет заметку о принятых мерах и закрывает инцидент
func (r *Repository) AddFollowUp(ctx context.Context, id int64, notes string, status domain.IncidentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("incidents").
		Set("follow_up_notes", notes).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddFollowUp - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddFollowUp - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddFollowUp - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIncidentNotFound
	}

	return nil
}

// Delete удаляет инцидент
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("incidents").
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
		return ErrIncidentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIncident(row rowScanner) (*domain.Incident, error) {
	var inc domain.Incident
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&inc.ID,
		&inc.VehicleID,
		&inc.RentalID,
		&inc.CustomerID,
		&inc.Description,
		&inc.IncidentDate,
		&inc.Status,
		&inc.FollowUpNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	inc.CreatedAt = createdAt.Time
	inc.UpdatedAt = updatedAt.Time

	return &inc, nil
}

func scanIncidents(rows *sql.Rows) ([]*domain.Incident, error) {
	incidents := make([]*domain.Incident, 0)

	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanIncidents - scan row: %w", ErrScanRow, err)
		}
		incidents = append(incidents, inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIncidents - rows error: %w", ErrScanRow, err)
	}

	return incidents, nil
}
