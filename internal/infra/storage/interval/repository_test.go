package interval

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func intervalRows(ivals ...*domain.Interval) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "vehicle_id", "kind", "start_date", "end_date",
		"customer_name", "pickup_location", "return_location", "total_cost",
		"mechanic_name", "issue", "cost", "reason",
		"created_at", "updated_at",
	})
	for _, ival := range ivals {
		rows.AddRow(
			ival.ID, ival.VehicleID, string(ival.Kind), ival.StartDate, ival.EndDate,
			ival.CustomerName, ival.PickupLocation, ival.ReturnLocation, ival.TotalCost,
			ival.MechanicName, ival.Issue, ival.Cost, ival.Reason,
			ival.CreatedAt, ival.UpdatedAt,
		)
	}
	return rows
}

func TestCreate(t *testing.T) {
	t.Run("успешная вставка возвращает ID и таймстемпы", func(t *testing.T) {
		repo, mock := newMock(t)

		customer := "Ivan Petrov"
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vehicle_intervals")).
			WithArgs(
				int64(7), string(domain.KindBooking), date(1), date(8),
				customer, nil, nil, nil, nil, nil, nil, nil,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(42), now, now))

		created, err := repo.Create(context.Background(), &domain.Interval{
			VehicleID:    7,
			Kind:         domain.KindBooking,
			StartDate:    date(1),
			EndDate:      date(8),
			CustomerName: &customer,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нарушение exclusion constraint - ErrIntervalOverlap", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO vehicle_intervals")).
			WillReturnError(&pq.Error{Code: "23P01"})

		_, err := repo.Create(context.Background(), &domain.Interval{
			VehicleID: 7,
			Kind:      domain.KindBooking,
			StartDate: date(1),
			EndDate:   date(8),
		})

		assert.ErrorIs(t, err, ErrIntervalOverlap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("интервал найден", func(t *testing.T) {
		repo, mock := newMock(t)

		ival := &domain.Interval{
			ID:        1,
			VehicleID: 7,
			Kind:      domain.KindMaintenance,
			StartDate: date(1),
			EndDate:   date(5),
		}
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, kind, start_date, end_date")).
			WithArgs(int64(1)).
			WillReturnRows(intervalRows(ival))

		got, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, domain.KindMaintenance, got.Kind)
		assert.Equal(t, date(1), got.StartDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустой результат - ErrIntervalNotFound", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, vehicle_id, kind, start_date, end_date")).
			WithArgs(int64(99)).
			WillReturnRows(intervalRows())

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrIntervalNotFound)
	})
}

func TestListByVehicle(t *testing.T) {
	repo, mock := newMock(t)

	timeline := []*domain.Interval{
		{ID: 1, VehicleID: 7, Kind: domain.KindBooking, StartDate: date(1), EndDate: date(5)},
		{ID: 2, VehicleID: 7, Kind: domain.KindManualBlock, StartDate: date(10), EndDate: date(15)},
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_intervals WHERE vehicle_id = $1 ORDER BY start_date ASC")).
		WithArgs(int64(7)).
		WillReturnRows(intervalRows(timeline...))

	got, err := repo.ListByVehicle(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.KindManualBlock, got[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByVehicle_DriverErrorKeptInChain(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_intervals WHERE vehicle_id = $1")).
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.ListByVehicle(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	// Менеджер транзакций распознаёт retryable коды через errors.As,
	// поэтому ошибка драйвера должна оставаться в цепочке
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestListWithFilter(t *testing.T) {
	repo, mock := newMock(t)

	kind := domain.KindManualBlock
	today := date(10)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE kind = $1 AND end_date > $2")).
		WithArgs(string(kind), today).
		WillReturnRows(intervalRows(
			&domain.Interval{ID: 3, VehicleID: 8, Kind: kind, StartDate: date(8), EndDate: date(20)},
		))

	got, err := repo.ListWithFilter(context.Background(), domain.IntervalFilter{
		Kind:      &kind,
		EndsAfter: &today,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicle_intervals WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ноль строк - ErrIntervalNotFound", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicle_intervals WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), ErrIntervalNotFound)
	})
}

func TestDeleteByVehicleAndKind(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicle_intervals")).
		WithArgs(string(domain.KindManualBlock), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteByVehicleAndKind(context.Background(), 7, domain.KindManualBlock)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
