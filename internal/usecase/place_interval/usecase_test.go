package place_interval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/FleetTimeline-Service/internal/domain"
)

// Фейки зависимостей

type fakeIntervalRepo struct {
	timeline  []*domain.Interval
	created   *domain.Interval
	createErr error
	listErr   error
}

func (f *fakeIntervalRepo) Create(_ context.Context, ival *domain.Interval) (*domain.Interval, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *ival
	created.ID = 100
	f.created = &created
	return &created, nil
}

func (f *fakeIntervalRepo) ListByVehicle(_ context.Context, _ int64) ([]*domain.Interval, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.timeline, nil
}

type fakeVehicleRepo struct {
	exists bool
	err    error
}

func (f *fakeVehicleRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return f.exists, f.err
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	name := "Anna Schmidt"
	return &Request{
		VehicleID:    7,
		Kind:         domain.KindBooking,
		StartDate:    day(1),
		EndDate:      day(8),
		CustomerName: &name,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeIntervalRepo{}
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, &fakeVehicleRepo{exists: true}, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.VehicleID)
	assert.Equal(t, domain.KindBooking, resp.Kind)
	assert.Equal(t, 1, tx.calls, "вставка идёт через транзакцию")
	require.NotNil(t, repo.created)
	assert.Equal(t, day(1), repo.created.StartDate)
}

func TestExecute_NormalizesDates(t *testing.T) {
	repo := &fakeIntervalRepo{}
	uc := NewUseCase(repo, &fakeVehicleRepo{exists: true}, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.StartDate = time.Date(2026, time.September, 1, 15, 45, 0, 0, time.UTC)
	req.EndDate = time.Date(2026, time.September, 8, 9, 5, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, day(1), repo.created.StartDate, "время обнуляется до календарной даты")
	assert.Equal(t, day(8), repo.created.EndDate)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeIntervalRepo{}, &fakeVehicleRepo{exists: true}, &fakeTxManager{}, nopLogger{})

	t.Run("отрицательный vehicleId", func(t *testing.T) {
		req := validRequest()
		req.VehicleID = -1
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("неизвестный тип интервала", func(t *testing.T) {
		req := validRequest()
		req.Kind = "rental"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("start равен end", func(t *testing.T) {
		req := validRequest()
		req.EndDate = req.StartDate
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("start после end", func(t *testing.T) {
		req := validRequest()
		req.StartDate = day(10)
		req.EndDate = day(5)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("слишком длинный интервал", func(t *testing.T) {
		req := validRequest()
		req.EndDate = req.StartDate.AddDate(2, 0, 0)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := NewUseCase(&fakeIntervalRepo{}, &fakeVehicleRepo{exists: false}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_Conflict(t *testing.T) {
	existing := &domain.Interval{
		ID:        42,
		VehicleID: 7,
		Kind:      domain.KindMaintenance,
		StartDate: day(5),
		EndDate:   day(12),
	}
	repo := &fakeIntervalRepo{timeline: []*domain.Interval{existing}}
	uc := NewUseCase(repo, &fakeVehicleRepo{exists: true}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntervalConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(42), conflict.Existing.ID, "в ошибке даты мешающего интервала")
	assert.Nil(t, repo.created, "при конфликте вставки нет")
}

func TestExecute_BackToBack(t *testing.T) {
	// Существующее бронирование [8, 15): новое [1, 8) встык допустимо
	existing := &domain.Interval{ID: 1, VehicleID: 7, Kind: domain.KindBooking, StartDate: day(8), EndDate: day(15)}
	repo := &fakeIntervalRepo{timeline: []*domain.Interval{existing}}
	uc := NewUseCase(repo, &fakeVehicleRepo{exists: true}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeIntervalRepo{listErr: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeVehicleRepo{exists: true}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
